package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erikamanning/poker-planning/models"
	"github.com/erikamanning/poker-planning/scoring"
)

// Store is the in-memory home of all active planning sessions. Sessions are
// indexed by id and by channel; a channel holds at most one active session.
type Store struct {
	mutex     sync.RWMutex
	sessions  map[string]*models.Session
	byChannel map[string]string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions:  make(map[string]*models.Session),
		byChannel: make(map[string]string),
	}
}

// CreateSession starts a session for a channel from an ordered ticket list.
// It returns ErrChannelBusy if the channel already has an active session and
// ErrNoTickets for an empty list. The parsed input is never mutated.
func (s *Store) CreateSession(channelID, facilitatorID string, parsed []models.ParsedTicket) (*models.Session, error) {
	if len(parsed) == 0 {
		return nil, ErrNoTickets
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byChannel[channelID]; exists {
		return nil, ErrChannelBusy
	}

	tickets := make([]*models.Ticket, len(parsed))
	for i, pt := range parsed {
		tickets[i] = &models.Ticket{
			Key:     pt.Key,
			Summary: pt.Summary,
			Votes:   make(map[string]*models.UserVote),
		}
	}

	sess := &models.Session{
		ID:            uuid.New().String(),
		ChannelID:     channelID,
		FacilitatorID: facilitatorID,
		Tickets:       tickets,
		CreatedAt:     time.Now(),
	}

	s.sessions[sess.ID] = sess
	s.byChannel[channelID] = sess.ID

	return snapshot(sess), nil
}

// GetSession returns a snapshot of the session with the given id.
// Absence is a normal outcome, not an error.
func (s *Store) GetSession(sessionID string) (*models.Session, bool) {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return nil, false
	}

	sess.Mutex.Lock()
	defer sess.Mutex.Unlock()
	return snapshot(sess), true
}

// GetSessionByChannel returns a snapshot of the channel's active session.
func (s *Store) GetSessionByChannel(channelID string) (*models.Session, bool) {
	s.mutex.RLock()
	sessionID, ok := s.byChannel[channelID]
	s.mutex.RUnlock()
	if !ok {
		return nil, false
	}
	return s.GetSession(sessionID)
}

// SetMessageTS records the timestamp of the last rendered message so the
// presentation layer can update it in place.
func (s *Store) SetMessageTS(sessionID, ts string) error {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return ErrSessionNotFound
	}

	sess.Mutex.Lock()
	defer sess.Mutex.Unlock()
	sess.MessageTS = ts
	return nil
}

// RecordVote applies one dimension of a participant's vote to whichever
// ticket is current at the moment of the call, creating the participant's
// vote entry on first contact. Re-voting a dimension overwrites the prior
// value. The derived point value is recomputed whenever the vote is
// complete. Returns a copy of the updated vote.
func (s *Store) RecordVote(sessionID, userID, userName string, dimension models.Dimension, size models.Size) (models.UserVote, error) {
	if !models.ValidDimension(dimension) {
		return models.UserVote{}, ErrInvalidDimension
	}
	if !models.ValidSize(size) {
		return models.UserVote{}, ErrInvalidSize
	}

	sess, ok := s.lookup(sessionID)
	if !ok {
		return models.UserVote{}, ErrSessionNotFound
	}

	sess.Mutex.Lock()
	defer sess.Mutex.Unlock()

	ticket := sess.CurrentTicket()
	if ticket == nil {
		return models.UserVote{}, ErrSessionNotFound
	}

	userVote, exists := ticket.Votes[userID]
	if !exists {
		userVote = &models.UserVote{UserID: userID, UserName: userName}
		ticket.Votes[userID] = userVote
	}

	userVote.Vote.Set(dimension, size)

	if points, complete := scoring.CalculatePoints(userVote.Vote); complete {
		userVote.Points = &points
	}

	return userVote.Clone(), nil
}

// RevealCurrentTicket marks the current ticket revealed and, if at least one
// vote is complete, stores the rounded mean of the completed votes as the
// final estimate. Incomplete votes are excluded from the mean, not counted
// as zero. Only the facilitator may reveal.
func (s *Store) RevealCurrentTicket(sessionID, actorID string) (models.Ticket, error) {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return models.Ticket{}, ErrSessionNotFound
	}

	sess.Mutex.Lock()
	defer sess.Mutex.Unlock()

	if actorID != sess.FacilitatorID {
		return models.Ticket{}, ErrNotFacilitator
	}

	ticket := sess.CurrentTicket()
	if ticket == nil {
		return models.Ticket{}, ErrSessionNotFound
	}

	ticket.Revealed = true

	sum, count := 0, 0
	for _, uv := range ticket.Votes {
		if uv.Points != nil {
			sum += *uv.Points
			count++
		}
	}
	if count > 0 {
		final := scoring.RoundToFinalEstimate(float64(sum) / float64(count))
		ticket.FinalPoints = &final
	}

	return ticket.Clone(), nil
}

// AdvanceToNextTicket moves the session to the next ticket and returns it
// with its index. On the last ticket it returns ErrLastTicket and leaves
// the index unchanged; that is the expected terminal condition, signaling
// the caller to end the session instead. Advancing does not require the
// current ticket to have been revealed. Only the facilitator may advance.
func (s *Store) AdvanceToNextTicket(sessionID, actorID string) (models.Ticket, int, error) {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return models.Ticket{}, 0, ErrSessionNotFound
	}

	sess.Mutex.Lock()
	defer sess.Mutex.Unlock()

	if actorID != sess.FacilitatorID {
		return models.Ticket{}, 0, ErrNotFacilitator
	}

	if sess.CurrentTicketIndex >= len(sess.Tickets)-1 {
		return models.Ticket{}, sess.CurrentTicketIndex, ErrLastTicket
	}

	sess.CurrentTicketIndex++
	return sess.Tickets[sess.CurrentTicketIndex].Clone(), sess.CurrentTicketIndex, nil
}

// EndSession removes the session from the store and frees its channel for a
// new one. It returns the final snapshot for summary rendering. Ending is
// terminal: later callbacks referencing the id see "not found". Only the
// facilitator may end a session.
func (s *Store) EndSession(sessionID, actorID string) (*models.Session, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Mutex.Lock()
	defer sess.Mutex.Unlock()

	if actorID != sess.FacilitatorID {
		return nil, ErrNotFacilitator
	}

	delete(s.sessions, sessionID)
	delete(s.byChannel, sess.ChannelID)

	return snapshot(sess), nil
}

// lookup resolves a live session under the store read lock.
func (s *Store) lookup(sessionID string) (*models.Session, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sess, ok := s.sessions[sessionID]
	return sess, ok
}

// snapshot deep-copies a session for callers outside the store. The caller
// must hold the session mutex (or sole ownership at creation time).
func snapshot(sess *models.Session) *models.Session {
	out := &models.Session{
		ID:                 sess.ID,
		ChannelID:          sess.ChannelID,
		FacilitatorID:      sess.FacilitatorID,
		CurrentTicketIndex: sess.CurrentTicketIndex,
		MessageTS:          sess.MessageTS,
		CreatedAt:          sess.CreatedAt,
		Tickets:            make([]*models.Ticket, len(sess.Tickets)),
	}
	for i, t := range sess.Tickets {
		c := t.Clone()
		out.Tickets[i] = &c
	}
	return out
}
