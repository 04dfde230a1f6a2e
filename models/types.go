package models

import (
	"sync"
	"time"
)

// Size is one value of the three-point estimation scale.
type Size string

// Available sizes. SizeUnset marks a dimension that has not been voted yet.
const (
	SizeUnset  Size = ""
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Dimension names a vote axis.
type Dimension string

// The three vote dimensions.
const (
	DimensionUncertainty Dimension = "uncertainty"
	DimensionComplexity  Dimension = "complexity"
	DimensionEffort      Dimension = "effort"
)

// Dimensions lists all vote dimensions in display order.
var Dimensions = []Dimension{DimensionUncertainty, DimensionComplexity, DimensionEffort}

// ValidSize reports whether s is one of the three votable sizes.
func ValidSize(s Size) bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// ValidDimension reports whether d names a known vote axis.
func ValidDimension(d Dimension) bool {
	return d == DimensionUncertainty || d == DimensionComplexity || d == DimensionEffort
}

// Vote holds one participant's (possibly partial) three-dimension vote.
// A dimension left at SizeUnset has not been cast yet.
type Vote struct {
	Uncertainty Size `json:"uncertainty,omitempty"`
	Complexity  Size `json:"complexity,omitempty"`
	Effort      Size `json:"effort,omitempty"`
}

// Get returns the size recorded for a dimension.
func (v Vote) Get(d Dimension) Size {
	switch d {
	case DimensionUncertainty:
		return v.Uncertainty
	case DimensionComplexity:
		return v.Complexity
	case DimensionEffort:
		return v.Effort
	}
	return SizeUnset
}

// Set records a size for a dimension, overwriting any prior value.
func (v *Vote) Set(d Dimension, s Size) {
	switch d {
	case DimensionUncertainty:
		v.Uncertainty = s
	case DimensionComplexity:
		v.Complexity = s
	case DimensionEffort:
		v.Effort = s
	}
}

// UserVote ties a participant's identity to their vote on one ticket.
// Points is set only once the vote covers all three dimensions.
type UserVote struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Vote     Vote   `json:"vote"`
	Points   *int   `json:"points,omitempty"`
}

// Clone returns an independent copy of the user vote.
func (uv UserVote) Clone() UserVote {
	out := uv
	if uv.Points != nil {
		p := *uv.Points
		out.Points = &p
	}
	return out
}

// Ticket is a single work item under estimation.
type Ticket struct {
	Key         string               `json:"key"`
	Summary     string               `json:"summary"`
	Votes       map[string]*UserVote `json:"votes"`
	Revealed    bool                 `json:"revealed"`
	FinalPoints *int                 `json:"final_points,omitempty"`
}

// Clone returns a deep copy of the ticket, including its vote map.
func (t Ticket) Clone() Ticket {
	out := t
	if t.FinalPoints != nil {
		p := *t.FinalPoints
		out.FinalPoints = &p
	}
	out.Votes = make(map[string]*UserVote, len(t.Votes))
	for id, uv := range t.Votes {
		c := uv.Clone()
		out.Votes[id] = &c
	}
	return out
}

// ParsedTicket is one (key, summary) pair produced by CSV ingestion.
type ParsedTicket struct {
	Key     string `json:"key"`
	Summary string `json:"summary"`
}

// Session is one planning session bound to a channel. Tickets are fixed at
// creation; CurrentTicketIndex only ever moves forward.
//
// The mutex serializes mutations of session state (votes, reveal, advance,
// message timestamp). All access goes through the session store.
type Session struct {
	ID                 string    `json:"id"`
	ChannelID          string    `json:"channel_id"`
	FacilitatorID      string    `json:"facilitator_id"`
	Tickets            []*Ticket `json:"tickets"`
	CurrentTicketIndex int       `json:"current_ticket_index"`
	MessageTS          string    `json:"message_ts,omitempty"`
	CreatedAt          time.Time `json:"created_at"`

	Mutex sync.Mutex `json:"-"`
}

// CurrentTicket returns the ticket at the current index, or nil if the
// ticket list is empty. The caller is responsible for holding the session
// mutex when s is live store state; snapshots need no locking.
func (s *Session) CurrentTicket() *Ticket {
	if len(s.Tickets) == 0 {
		return nil
	}
	return s.Tickets[s.CurrentTicketIndex]
}

// IsLastTicket reports whether the session is on its final ticket.
func (s *Session) IsLastTicket() bool {
	return s.CurrentTicketIndex >= len(s.Tickets)-1
}

// Summary projects the session into per-ticket results and a grand total.
// Tickets without a final estimate appear with FinalPoints nil and add
// nothing to the total. VoteCount counts everyone who cast at least one
// dimension, complete or not.
func (s *Session) Summary() SessionSummary {
	summary := SessionSummary{Tickets: make([]TicketSummary, len(s.Tickets))}
	for i, t := range s.Tickets {
		ts := TicketSummary{
			Key:       t.Key,
			Summary:   t.Summary,
			VoteCount: len(t.Votes),
		}
		if t.FinalPoints != nil {
			p := *t.FinalPoints
			ts.FinalPoints = &p
			summary.TotalPoints += p
		}
		summary.Tickets[i] = ts
	}
	return summary
}

// TicketSummary is the per-ticket line of a session summary. FinalPoints is
// nil for tickets that were never revealed or had no completed votes.
type TicketSummary struct {
	Key         string `json:"key"`
	Summary     string `json:"summary"`
	FinalPoints *int   `json:"final_points,omitempty"`
	VoteCount   int    `json:"vote_count"`
}

// SessionSummary aggregates final estimates across all tickets. Tickets
// without a final estimate contribute zero to TotalPoints.
type SessionSummary struct {
	Tickets     []TicketSummary `json:"tickets"`
	TotalPoints int             `json:"total_points"`
}
