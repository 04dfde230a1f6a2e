/*
Package views builds the Block Kit surfaces of the bot.

# Views

  - VotingBlocks: current ticket with S/M/L buttons per dimension, the
    requesting user's own selections marked, a vote counter, and the
    facilitator's Reveal Results button
  - ResultsBlocks: every vote with its derived points, the final estimate
    if any vote was complete, and Next Ticket / End Session navigation
  - SummaryBlocks: the end-of-session recap with per-ticket estimates and
    the grand total
  - CSVInputModal: the session-start modal (file upload or pasted CSV)

# Action Routing

Buttons carry the session id as their value and are routed by action id:

	vote_{dimension}_{size}   cast one dimension (any participant)
	reveal_results            reveal the current ticket (facilitator)
	next_ticket               advance to the next ticket (facilitator)
	end_session               end the session and post the summary (facilitator)

All builders are pure: they render the snapshots handed to them and never
touch session state.
*/
package views
