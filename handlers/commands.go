package handlers

import (
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/views"
)

// HandlePlanningCommand handles the /planning slash command by opening the
// session-start modal, unless the channel already has an active session.
func (h *Handler) HandlePlanningCommand(cmd slack.SlashCommand) {
	if _, exists := h.store.GetSessionByChannel(cmd.ChannelID); exists {
		h.notify(cmd.ChannelID, cmd.UserID,
			"There is already an active planning session in this channel. Please end it before starting a new one.")
		return
	}

	if _, err := h.client.OpenView(cmd.TriggerID, views.CSVInputModal(cmd.ChannelID)); err != nil {
		slog.Error("failed to open session modal", "error", err, "channel", cmd.ChannelID)
	}
}
