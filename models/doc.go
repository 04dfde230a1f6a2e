/*
Package models defines the shared domain types for planning sessions.

# Scale

Votes use a three-value scale per dimension:

	SizeSmall  = "S"
	SizeMedium = "M"
	SizeLarge  = "L"

with SizeUnset ("") marking a dimension that has not been voted yet. The
three dimensions are:

	DimensionUncertainty = "uncertainty"
	DimensionComplexity  = "complexity"
	DimensionEffort      = "effort"

# Domain Types

  - Vote: one participant's partial or complete three-dimension vote
  - UserVote: identity + vote + derived points (set once complete)
  - Ticket: work item with vote map, revealed flag, and final estimate
  - Session: channel-bound ordered ticket list with a current index
  - ParsedTicket: (key, summary) pair from CSV ingestion
  - TicketSummary / SessionSummary: read-only projections for rendering

# Ownership

A Session owns its Tickets; a Ticket owns its UserVotes, keyed by user id.
Mutation always goes through the session store, which serializes on the
Session mutex. Snapshot copies handed to callers are produced with the
Clone methods so rendering never touches live state.
*/
package models
