package handlers

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/models"
	"github.com/erikamanning/poker-planning/views"
)

// ParseVoteAction splits a vote button's action id ("vote_effort_M") into
// its dimension and size.
func ParseVoteAction(actionID string) (models.Dimension, models.Size, bool) {
	parts := strings.Split(actionID, "_")
	if len(parts) != 3 || parts[0] != "vote" {
		return "", "", false
	}

	dimension := models.Dimension(parts[1])
	size := models.Size(parts[2])
	if !models.ValidDimension(dimension) || !models.ValidSize(size) {
		return "", "", false
	}
	return dimension, size, true
}

// HandleVoteAction records one dimension of a participant's vote on the
// current ticket, privately echoes the derived points once the vote is
// complete, and refreshes the voting message's vote counter.
func (h *Handler) HandleVoteAction(cb slack.InteractionCallback, action *slack.BlockAction) {
	dimension, size, ok := ParseVoteAction(action.ActionID)
	if !ok {
		slog.Error("unrecognized vote action", "action_id", action.ActionID)
		return
	}

	sessionID := action.Value
	if sessionID == "" {
		slog.Error("no session id in vote action", "action_id", action.ActionID)
		return
	}

	userID := cb.User.ID
	userName := cb.User.Name
	if userName == "" {
		userName = userID
	}

	userVote, err := h.store.RecordVote(sessionID, userID, userName, dimension, size)
	if err != nil {
		slog.Error("failed to record vote", "error", err, "session", sessionID, "user", userID)
		return
	}

	snap, found := h.store.GetSession(sessionID)
	if !found {
		return
	}

	if userVote.Points != nil {
		h.notify(snap.ChannelID, userID, fmt.Sprintf("Your vote: U:%s C:%s E:%s = *%d points*",
			userVote.Vote.Uncertainty, userVote.Vote.Complexity, userVote.Vote.Effort, *userVote.Points))
	}

	ticket := snap.CurrentTicket()
	if ticket == nil || snap.MessageTS == "" {
		return
	}

	blocks := views.VotingBlocks(snap.ID, *ticket, snap.CurrentTicketIndex, len(snap.Tickets), &userVote.Vote)
	_, _, _, err = h.client.UpdateMessage(snap.ChannelID, snap.MessageTS,
		slack.MsgOptionText("Voting on: "+ticket.Key, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		slog.Error("failed to update voting message", "error", err, "session", sessionID)
	}
}
