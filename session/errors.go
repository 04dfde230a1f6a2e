package session

import "errors"

// Common errors. All are recoverable outcomes for the caller to surface;
// none indicates corrupted state.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrChannelBusy      = errors.New("channel already has an active planning session")
	ErrNoTickets        = errors.New("session requires at least one ticket")
	ErrNotFacilitator   = errors.New("only the facilitator can perform this action")
	ErrLastTicket       = errors.New("no further ticket")
	ErrInvalidDimension = errors.New("invalid vote dimension")
	ErrInvalidSize      = errors.New("invalid vote size")
)
