/*
Package main provides the entry point for the planning poker Slack bot.

The bot runs collaborative estimation sessions in a channel: a facilitator
loads a Jira CSV export of work items, participants vote uncertainty,
complexity, and effort per item on a Small/Medium/Large scale, and
completed votes are converted into story points and rolled up into a
session total.

# Starting the Bot

The bot requires two Slack credentials, via environment variables (a .env
file is honored) or CLI flags:

	SLACK_BOT_TOKEN=xoxb-... SLACK_APP_TOKEN=xapp-... go run .

Or with flags:

	go run . -bot-token xoxb-... -app-token xapp-...

The app-level token must have the connections:write scope; events are
delivered over socket mode, so no public HTTP endpoint is needed.

# Usage

	/planning            open the session-start modal in the channel

Voting, reveal, advance, and end all happen through message buttons.
Reveal, advance, and end are restricted to the facilitator who started
the session.

# Architecture

One in-memory store owns all session state; everything else is stateless:

  - scoring: vote → story point table and final estimate rounding
  - session: session store and voting/reveal/advance/end state machine
  - csvparse: Jira CSV export → ticket list
  - views: Block Kit rendering (voting, results, summary, modal)
  - handlers: Slack intents → store operations → rendered messages
  - router: socket-mode event loop and dispatch
  - cliparse: configuration parsing
  - models: shared domain types

Sessions live only for the process lifetime; there is no persistence.

See package documentation for each component.
*/
package main
