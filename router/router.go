package router

import (
	"log/slog"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/erikamanning/poker-planning/handlers"
	"github.com/erikamanning/poker-planning/views"
)

// Router consumes socket-mode envelopes, acknowledges them, and dispatches
// the decoded payloads to the handlers.
type Router struct {
	client  *socketmode.Client
	handler *handlers.Handler
}

// New creates a router over a socket-mode client.
func New(client *socketmode.Client, handler *handlers.Handler) *Router {
	return &Router{client: client, handler: handler}
}

// Run processes events until the socket-mode client shuts down. It is
// meant to run on its own goroutine alongside the client's connection
// loop.
func (r *Router) Run() {
	for evt := range r.client.Events {
		r.route(evt)
	}
}

func (r *Router) route(evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		slog.Info("connecting to Slack")
	case socketmode.EventTypeConnectionError:
		slog.Error("Slack connection failed, retrying", "error", evt.Data)
	case socketmode.EventTypeConnected:
		slog.Info("connected to Slack")

	case socketmode.EventTypeSlashCommand:
		cmd, ok := evt.Data.(slack.SlashCommand)
		if !ok {
			return
		}
		r.client.Ack(*evt.Request)
		if cmd.Command == "/planning" {
			r.handler.HandlePlanningCommand(cmd)
		}

	case socketmode.EventTypeInteractive:
		cb, ok := evt.Data.(slack.InteractionCallback)
		if !ok {
			return
		}
		r.routeInteraction(evt, cb)
	}
}

func (r *Router) routeInteraction(evt socketmode.Event, cb slack.InteractionCallback) {
	switch cb.Type {
	case slack.InteractionTypeViewSubmission:
		if cb.View.CallbackID != views.CallbackCSVSubmit {
			r.client.Ack(*evt.Request)
			return
		}
		// The submission ack carries validation errors back into the modal.
		if resp := r.handler.HandleCSVSubmission(cb); resp != nil {
			r.client.Ack(*evt.Request, resp)
		} else {
			r.client.Ack(*evt.Request)
		}

	case slack.InteractionTypeBlockActions:
		r.client.Ack(*evt.Request)
		if len(cb.ActionCallback.BlockActions) == 0 {
			return
		}
		action := cb.ActionCallback.BlockActions[0]
		switch {
		case strings.HasPrefix(action.ActionID, "vote_"):
			r.handler.HandleVoteAction(cb, action)
		case action.ActionID == views.ActionReveal:
			r.handler.HandleReveal(cb, action)
		case action.ActionID == views.ActionNextTicket:
			r.handler.HandleNextTicket(cb, action)
		case action.ActionID == views.ActionEndSession:
			r.handler.HandleEndSession(cb, action)
		default:
			slog.Debug("unhandled block action", "action_id", action.ActionID)
		}

	default:
		r.client.Ack(*evt.Request)
	}
}
