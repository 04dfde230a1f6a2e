package handlers

import (
	"errors"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/session"
	"github.com/erikamanning/poker-planning/views"
)

// HandleReveal reveals the current ticket and swaps the voting message for
// the results view. Facilitator only.
func (h *Handler) HandleReveal(cb slack.InteractionCallback, action *slack.BlockAction) {
	sessionID := action.Value

	snap, found := h.store.GetSession(sessionID)
	if !found {
		slog.Error("session not found for reveal", "session", sessionID)
		return
	}

	ticket, err := h.store.RevealCurrentTicket(sessionID, cb.User.ID)
	if errors.Is(err, session.ErrNotFacilitator) {
		h.notify(snap.ChannelID, cb.User.ID, "Only the facilitator can reveal results.")
		return
	}
	if err != nil {
		slog.Error("failed to reveal ticket", "error", err, "session", sessionID)
		return
	}

	if snap.MessageTS == "" {
		return
	}
	blocks := views.ResultsBlocks(sessionID, ticket, snap.IsLastTicket())
	_, _, _, err = h.client.UpdateMessage(snap.ChannelID, snap.MessageTS,
		slack.MsgOptionText("Results for: "+ticket.Key, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		slog.Error("failed to update message with results", "error", err, "session", sessionID)
	}
}

// HandleNextTicket advances the session and posts a fresh voting message
// for the new current ticket. Facilitator only.
func (h *Handler) HandleNextTicket(cb slack.InteractionCallback, action *slack.BlockAction) {
	sessionID := action.Value

	snap, found := h.store.GetSession(sessionID)
	if !found {
		slog.Error("session not found for advance", "session", sessionID)
		return
	}

	ticket, index, err := h.store.AdvanceToNextTicket(sessionID, cb.User.ID)
	if errors.Is(err, session.ErrNotFacilitator) {
		h.notify(snap.ChannelID, cb.User.ID, "Only the facilitator can advance to the next ticket.")
		return
	}
	if errors.Is(err, session.ErrLastTicket) {
		// The results view stops offering Next on the last ticket, so this
		// is a stale click. Nothing to do.
		return
	}
	if err != nil {
		slog.Error("failed to advance", "error", err, "session", sessionID)
		return
	}

	blocks := views.VotingBlocks(sessionID, ticket, index, len(snap.Tickets), nil)
	_, ts, err := h.client.PostMessage(snap.ChannelID,
		slack.MsgOptionText("Voting on: "+ticket.Key, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		slog.Error("failed to post next ticket message", "error", err, "session", sessionID)
		return
	}

	if err := h.store.SetMessageTS(sessionID, ts); err != nil {
		slog.Error("failed to record message timestamp", "error", err, "session", sessionID)
	}
}

// HandleEndSession ends the session and posts the summary. Facilitator only.
func (h *Handler) HandleEndSession(cb slack.InteractionCallback, action *slack.BlockAction) {
	sessionID := action.Value

	snap, found := h.store.GetSession(sessionID)
	if !found {
		slog.Error("session not found for end", "session", sessionID)
		return
	}

	final, err := h.store.EndSession(sessionID, cb.User.ID)
	if errors.Is(err, session.ErrNotFacilitator) {
		h.notify(snap.ChannelID, cb.User.ID, "Only the facilitator can end the session.")
		return
	}
	if err != nil {
		slog.Error("failed to end session", "error", err, "session", sessionID)
		return
	}

	summary := final.Summary()
	blocks := views.SummaryBlocks(final, summary)
	if _, _, err := h.client.PostMessage(final.ChannelID,
		slack.MsgOptionText("Planning Session Complete!", false),
		slack.MsgOptionBlocks(blocks...),
	); err != nil {
		slog.Error("failed to post session summary", "error", err, "session", sessionID)
	}

	slog.Info("planning session ended",
		"session", sessionID,
		"channel", final.ChannelID,
		"total_points", summary.TotalPoints,
	)
}
