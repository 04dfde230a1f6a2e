/*
Package router binds socket-mode events to the bot's handlers.

# Event Loop

Run consumes the socket-mode event channel on its own goroutine while the
socket-mode client maintains the connection:

	r := router.New(smClient, h)
	go r.Run()
	smClient.RunContext(ctx)

# Dispatch

Every envelope is acknowledged. Payloads are routed by type:

	slash command /planning        → HandlePlanningCommand
	view submission csv_submit     → HandleCSVSubmission
	block action vote_{dim}_{size} → HandleVoteAction
	block action reveal_results    → HandleReveal
	block action next_ticket       → HandleNextTicket
	block action end_session       → HandleEndSession

View submissions are acknowledged with the handler's response payload when
one is returned, which is how CSV validation errors render inside the
modal. Block actions are acknowledged before handling; their feedback goes
through posted or updated messages instead.
*/
package router
