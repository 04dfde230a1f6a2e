package handlers

import (
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/session"
)

// Handler dispatches user intents to the session store and renders the
// resulting state back into the channel.
type Handler struct {
	store  *session.Store
	client SlackClient
}

// New creates a handler over the shared session store.
func New(store *session.Store, client SlackClient) *Handler {
	return &Handler{store: store, client: client}
}

// notify sends a private notice visible only to one user.
func (h *Handler) notify(channelID, userID, text string) {
	if _, err := h.client.PostEphemeral(channelID, userID, slack.MsgOptionText(text, false)); err != nil {
		slog.Error("failed to send ephemeral notice", "error", err, "channel", channelID, "user", userID)
	}
}
