/*
Package handlers contains the Slack-facing handlers of the bot.

# Handler

All handlers hang off a single Handler created with the shared session
store and a Slack Web API client:

	h := handlers.New(store, api)

The client dependency is the SlackClient interface, so tests substitute a
fake without any network.

# Intents

  - HandlePlanningCommand: /planning slash command → session-start modal
    (or a private conflict notice if the channel already has a session)
  - HandleCSVSubmission: modal submit → parse CSV, create the session,
    post the first voting message; validation failures are returned as a
    view submission response so they render inside the modal
  - HandleVoteAction: vote_{dimension}_{size} button → record the vote,
    privately echo the points once complete, refresh the voting message
  - HandleReveal: reveal_results button → reveal and show results
  - HandleNextTicket: next_ticket button → advance and post a new voting
    message
  - HandleEndSession: end_session button → end and post the summary

# Gating

Reveal, advance, and end are facilitator-only; the store enforces this and
the handlers translate the forbidden outcome into an ephemeral notice.
Voting is open to every participant, including the facilitator.
*/
package handlers
