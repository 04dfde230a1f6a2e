/*
Package session owns the lifecycle of planning sessions.

# Store

The Store is the single authoritative in-memory table of active sessions,
indexed by session id and by channel. One instance is created at process
start and shared by all handlers:

	store := session.NewStore()

# Lifecycle

A session is created from a parsed ticket list and lives until explicitly
ended:

	created → voting/reveal/advance on the current ticket → ended (removed)

Per ticket, the only transition is Open → Revealed; it is one-way and
facilitator-gated. Advancing moves the current index forward one step and
does not require the previous ticket to have been revealed. Ending removes
the session from both indexes and frees the channel.

# Concurrency

Votes, reveals, advances, and ends arrive concurrently from independent
users. The store serializes map access with its own RWMutex and serializes
all mutation of one session's state on that session's mutex, so
read-modify-write sequences like "get or create the vote entry, set one
dimension, recompute points" are indivisible. Operations return deep-copied
snapshots; callers never touch live state.

# Errors

Expected outcomes are sentinel errors checked with errors.Is:

  - ErrSessionNotFound: unknown or already-ended session
  - ErrChannelBusy: channel already has an active session
  - ErrNotFacilitator: gated action attempted by a non-facilitator
  - ErrLastTicket: advance requested on the final ticket (normal boundary)
  - ErrNoTickets: creation attempted with an empty ticket list

None of these leaves shared state modified.
*/
package session
