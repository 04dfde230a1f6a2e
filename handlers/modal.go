package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/csvparse"
	"github.com/erikamanning/poker-planning/session"
	"github.com/erikamanning/poker-planning/views"
)

// HandleCSVSubmission processes the session-start modal. A non-nil return
// value is the submission ack payload, used to render validation errors
// inside the modal; nil means a plain ack.
func (h *Handler) HandleCSVSubmission(cb slack.InteractionCallback) *slack.ViewSubmissionResponse {
	if cb.View.State == nil {
		slog.Error("view submission without state")
		return nil
	}

	pasted := cb.View.State.Values[views.BlockCSVInput][views.ActionCSVContent].Value
	files := cb.View.State.Values[views.BlockCSVFile][views.ActionCSVFile].Files
	fromFile := len(files) > 0

	var content string
	switch {
	case fromFile:
		fetched, err := h.fetchFileContent(files[0].ID)
		if err != nil {
			return slack.NewErrorsViewSubmissionResponse(map[string]string{
				views.BlockCSVFile: "Failed to read uploaded file: " + err.Error(),
			})
		}
		content = fetched
	case pasted != "":
		content = pasted
	default:
		return slack.NewErrorsViewSubmissionResponse(map[string]string{
			views.BlockCSVInput: "Please upload a CSV file or paste CSV content",
		})
	}

	if err := csvparse.Validate(content); err != nil {
		block := views.BlockCSVInput
		if fromFile {
			block = views.BlockCSVFile
		}
		return slack.NewErrorsViewSubmissionResponse(map[string]string{block: err.Error()})
	}

	tickets, err := csvparse.ParseTickets(content)
	if err != nil {
		return slack.NewErrorsViewSubmissionResponse(map[string]string{views.BlockCSVInput: err.Error()})
	}

	channelID := cb.View.PrivateMetadata
	if channelID == "" {
		slog.Error("no channel id in modal submission")
		return nil
	}

	sess, err := h.store.CreateSession(channelID, cb.User.ID, tickets)
	if err != nil {
		if errors.Is(err, session.ErrChannelBusy) {
			// Raced another facilitator between modal open and submit.
			return slack.NewErrorsViewSubmissionResponse(map[string]string{
				views.BlockCSVInput: "This channel already has an active planning session.",
			})
		}
		slog.Error("failed to create session", "error", err, "channel", channelID)
		return nil
	}

	ticket := sess.CurrentTicket()
	blocks := views.VotingBlocks(sess.ID, *ticket, sess.CurrentTicketIndex, len(sess.Tickets), nil)
	_, ts, err := h.client.PostMessage(channelID,
		slack.MsgOptionText("Planning session started! Voting on: "+ticket.Key, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		slog.Error("failed to post voting message", "error", err, "channel", channelID)
		return nil
	}

	if err := h.store.SetMessageTS(sess.ID, ts); err != nil {
		slog.Error("failed to record message timestamp", "error", err, "session", sess.ID)
	}

	slog.Info("planning session started",
		"session", sess.ID,
		"channel", channelID,
		"tickets", len(sess.Tickets),
	)

	return nil
}

// fetchFileContent downloads an uploaded CSV through the Web API.
func (h *Handler) fetchFileContent(fileID string) (string, error) {
	file, _, _, err := h.client.GetFileInfo(fileID, 0, 0)
	if err != nil {
		return "", fmt.Errorf("file info lookup failed: %w", err)
	}
	if file.URLPrivateDownload == "" {
		return "", errors.New("file has no download URL")
	}

	var buf bytes.Buffer
	if err := h.client.GetFile(file.URLPrivateDownload, &buf); err != nil {
		return "", fmt.Errorf("file download failed: %w", err)
	}
	return buf.String(), nil
}
