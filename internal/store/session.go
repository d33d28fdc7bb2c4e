package store

import (
	"sync"
	"time"

	"github.com/alfieapp/quarterly/internal/service"
)

// Session bundles one user's entity stores, all scoped to the same selected
// quarter, plus the pending delete confirmations for the destructive rows.
type Session struct {
	UserID string

	Goals    *GoalsStore
	Meetings *MeetingStore
	Deals    *DealStore

	MeetingDeletes *DeleteConfirm
	DealDeletes    *DeleteConfirm

	mu        sync.Mutex
	quarterID string
}

// SelectQuarter rescopes every store to the given quarter and disarms any
// pending deletes. Each store discards its cache before fetching, so a
// partial failure leaves no stale rows from the previous quarter.
func (s *Session) SelectQuarter(quarterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quarterID = quarterID
	s.MeetingDeletes.Clear()
	s.DealDeletes.Clear()

	var firstErr error
	for _, set := range []func(string) error{
		s.Goals.SetQuarter,
		s.Meetings.SetQuarter,
		s.Deals.SetQuarter,
	} {
		if err := set(quarterID); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// QuarterID returns the quarter the session is currently scoped to.
func (s *Session) QuarterID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quarterID
}

// Manager hands out one Session per authenticated user, creating it on first
// use and dropping it at logout.
type Manager struct {
	goals    *service.GoalsService
	meetings *service.MeetingService
	deals    *service.DealService
	window   time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(goals *service.GoalsService, meetings *service.MeetingService, deals *service.DealService, confirmWindow time.Duration) *Manager {
	return &Manager{
		goals:    goals,
		meetings: meetings,
		deals:    deals,
		window:   confirmWindow,
		sessions: map[string]*Session{},
	}
}

// Session returns the user's session, creating it if absent.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[userID]; ok {
		return sess
	}

	sess := &Session{
		UserID:         userID,
		Goals:          NewGoalsStore(m.goals, userID),
		Meetings:       NewMeetingStore(m.meetings, userID),
		Deals:          NewDealStore(m.deals, userID),
		MeetingDeletes: NewDeleteConfirm(m.window),
		DealDeletes:    NewDeleteConfirm(m.window),
	}
	m.sessions[userID] = sess
	return sess
}

// Drop discards the user's session and its caches.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
