package views

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/models"
	"github.com/erikamanning/poker-planning/scoring"
)

// Action IDs routed back to the handlers.
const (
	ActionReveal     = "reveal_results"
	ActionNextTicket = "next_ticket"
	ActionEndSession = "end_session"
)

// VoteActionID builds the action id for one vote button, e.g.
// "vote_uncertainty_S".
func VoteActionID(dimension models.Dimension, size models.Size) string {
	return fmt.Sprintf("vote_%s_%s", dimension, size)
}

// VotingBlocks renders the voting view for the current ticket. userVote is
// the requesting user's own (possibly partial) vote and may be nil; vote
// selections are only ever shown to their owner.
func VotingBlocks(sessionID string, ticket models.Ticket, index, total int, userVote *models.Vote) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText(fmt.Sprintf("Ticket %d of %d: %s", index+1, total, ticket.Key))),
		slack.NewSectionBlock(markdown(ticket.Summary), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(markdown("*Vote below (points hidden until revealed):*"), nil, nil),
	}

	labels := map[models.Dimension]string{
		models.DimensionUncertainty: "Uncertainty",
		models.DimensionComplexity:  "Complexity",
		models.DimensionEffort:      "Effort",
	}

	for _, dim := range models.Dimensions {
		var selected models.Size
		if userVote != nil {
			selected = userVote.Get(dim)
		}

		line := fmt.Sprintf("*%s:*", labels[dim])
		if selected != models.SizeUnset {
			line += fmt.Sprintf(" _%s_", scoring.SizeLabel(selected))
		}
		blocks = append(blocks,
			slack.NewSectionBlock(markdown(line), nil, nil),
			voteButtonRow(sessionID, dim, selected),
		)
	}

	blocks = append(blocks, slack.NewDividerBlock())

	voteCount := len(ticket.Votes)
	plural := "s"
	if voteCount == 1 {
		plural = ""
	}
	blocks = append(blocks, slack.NewContextBlock("",
		markdown(fmt.Sprintf("%d vote%s submitted", voteCount, plural)),
	))

	reveal := slack.NewButtonBlockElement(ActionReveal, sessionID, plainText("Reveal Results"))
	reveal.Style = slack.StylePrimary
	blocks = append(blocks, slack.NewActionBlock("", reveal))

	return blocks
}

// voteButtonRow renders the S/M/L buttons for one dimension, marking the
// caller's current selection.
func voteButtonRow(sessionID string, dimension models.Dimension, selected models.Size) *slack.ActionBlock {
	sizes := []models.Size{models.SizeSmall, models.SizeMedium, models.SizeLarge}

	elements := make([]slack.BlockElement, 0, len(sizes))
	for _, size := range sizes {
		label := scoring.SizeLabel(size)
		if selected == size {
			label += " ✓"
		}
		button := slack.NewButtonBlockElement(VoteActionID(dimension, size), sessionID, plainText(label))
		if selected == size {
			button.Style = slack.StylePrimary
		}
		elements = append(elements, button)
	}

	return slack.NewActionBlock("", elements...)
}

// ResultsBlocks renders the revealed ticket: every vote with its points,
// the final estimate if one exists, and the navigation buttons.
func ResultsBlocks(sessionID string, ticket models.Ticket, isLast bool) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText("Results: " + ticket.Key)),
		slack.NewSectionBlock(markdown(ticket.Summary), nil, nil),
		slack.NewDividerBlock(),
	}

	if len(ticket.Votes) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(markdown("_No votes were submitted_"), nil, nil))
	} else {
		voteText := "*Votes:*\n"
		for _, uv := range sortedVotes(ticket.Votes) {
			points := "-"
			if uv.Points != nil {
				points = fmt.Sprintf("%d", *uv.Points)
			}
			voteText += fmt.Sprintf("• <@%s>: U:%s C:%s E:%s → *%s pts*\n",
				uv.UserID, sizeOrDash(uv.Vote.Uncertainty), sizeOrDash(uv.Vote.Complexity), sizeOrDash(uv.Vote.Effort), points)
		}
		blocks = append(blocks, slack.NewSectionBlock(markdown(voteText), nil, nil))
	}

	if ticket.FinalPoints != nil {
		blocks = append(blocks, slack.NewSectionBlock(markdown(fmt.Sprintf("*Final Points: %d*", *ticket.FinalPoints)), nil, nil))
	}

	blocks = append(blocks, slack.NewDividerBlock())

	var elements []slack.BlockElement
	if !isLast {
		next := slack.NewButtonBlockElement(ActionNextTicket, sessionID, plainText("Next Ticket"))
		next.Style = slack.StylePrimary
		elements = append(elements, next)
	}

	endLabel := "End Session Early"
	if isLast {
		endLabel = "End Session"
	}
	end := slack.NewButtonBlockElement(ActionEndSession, sessionID, plainText(endLabel))
	if isLast {
		end.Style = slack.StylePrimary
	}
	elements = append(elements, end)

	blocks = append(blocks, slack.NewActionBlock("", elements...))

	return blocks
}

// SummaryBlocks renders the end-of-session recap: every ticket with its
// final estimate (or "No votes") and the grand total.
func SummaryBlocks(sess *models.Session, summary models.SessionSummary) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText("Planning Session Complete!")),
		slack.NewDividerBlock(),
	}

	ticketList := "*Ticket Summary:*\n"
	for _, t := range summary.Tickets {
		points := "No votes"
		if t.FinalPoints != nil {
			points = fmt.Sprintf("%d pts", *t.FinalPoints)
		}
		ticketList += fmt.Sprintf("• *%s*: %s\n  _%s_\n", t.Key, points, truncate(t.Summary, 50))
	}

	blocks = append(blocks,
		slack.NewSectionBlock(markdown(ticketList), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(markdown(fmt.Sprintf("*Total Story Points: %d*", summary.TotalPoints)), nil, nil),
		slack.NewContextBlock("",
			markdown(fmt.Sprintf("Session facilitated by <@%s> · started %s", sess.FacilitatorID, humanize.Time(sess.CreatedAt))),
		),
	)

	return blocks
}

// sortedVotes returns the vote entries ordered by display name for stable
// rendering; the vote map itself has no meaningful order.
func sortedVotes(votes map[string]*models.UserVote) []*models.UserVote {
	out := make([]*models.UserVote, 0, len(votes))
	for _, uv := range votes {
		out = append(out, uv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserName != out[j].UserName {
			return out[i].UserName < out[j].UserName
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

func sizeOrDash(s models.Size) string {
	if s == models.SizeUnset {
		return "-"
	}
	return string(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}
