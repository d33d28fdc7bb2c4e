package store

import (
	"log/slog"
	"sync"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/validation"
)

// MeetingStore caches the selected quarter's meetings. Operations are
// serialized with a mutex, so completions apply in call order instead of the
// last-write-wins race a concurrent cache would allow.
type MeetingStore struct {
	svc    *service.MeetingService
	userID string

	mu        sync.Mutex
	quarterID string
	status    Status
	cache     []*model.Meeting
	lastErr   error
}

func NewMeetingStore(svc *service.MeetingService, userID string) *MeetingStore {
	return &MeetingStore{svc: svc, userID: userID}
}

// SetQuarter rescopes the store. The cache is discarded before the fetch, so
// rows from the previous quarter never leak into the new one. An empty
// quarter ID clears the store without loading.
func (s *MeetingStore) SetQuarter(quarterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quarterID = quarterID
	s.cache = nil
	s.lastErr = nil

	if quarterID == "" {
		s.status = StatusUninitialized
		return nil
	}

	return s.reload()
}

// Refresh re-fetches the full list for the current scope, replacing the
// whole cache on success. On failure the cache keeps its last good value.
func (s *MeetingStore) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quarterID == "" {
		return nil
	}

	return s.reload()
}

// reload is called with the lock held.
func (s *MeetingStore) reload() error {
	if s.userID == "" {
		s.fail(ErrNoSession)
		s.status = StatusErrored
		return ErrNoSession
	}

	s.status = StatusLoading
	meetings, err := s.svc.Meetings(s.userID, s.quarterID)
	if err != nil {
		s.fail(classify(err))
		s.status = StatusErrored
		return s.lastErr
	}

	s.cache = meetings
	s.status = StatusReady
	return nil
}

// Add validates the fields locally, creates the meeting remotely and, only
// once the write succeeded, prepends the returned row to the cache.
func (s *MeetingStore) Add(in service.MeetingInput) (*model.Meeting, error) {
	err := validation.ValidateMeeting(in.ContactName, in.CompanyName, in.MeetingDate, in.Outcome)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		s.fail(ErrNoSession)
		return nil, ErrNoSession
	}
	if s.quarterID == "" {
		return nil, nil
	}

	meeting, err := s.svc.Create(s.userID, s.quarterID, in)
	if err != nil {
		s.fail(classify(err))
		return nil, s.lastErr
	}

	s.cache = append([]*model.Meeting{meeting}, s.cache...)
	return meeting, nil
}

// UpdateOutcome edits one row's outcome and replaces the matching cached row
// by identifier. An identifier missing from the cache is a no-op there.
func (s *MeetingStore) UpdateOutcome(meetingID, outcome string) (*model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		s.fail(ErrNoSession)
		return nil, ErrNoSession
	}
	if s.quarterID == "" {
		return nil, nil
	}

	meeting, err := s.svc.UpdateOutcome(s.userID, s.quarterID, meetingID, outcome)
	if err != nil {
		s.fail(classify(err))
		return nil, s.lastErr
	}

	for i, cached := range s.cache {
		if cached.ID == meetingID {
			s.cache[i] = meeting
			break
		}
	}
	return meeting, nil
}

// Remove deletes one row remotely and drops it from the cache. Removing an
// identifier that is not cached leaves the cache unchanged.
func (s *MeetingStore) Remove(meetingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		s.fail(ErrNoSession)
		return ErrNoSession
	}
	if s.quarterID == "" {
		return nil
	}

	err := s.svc.Delete(s.userID, s.quarterID, meetingID)
	if err != nil {
		s.fail(classify(err))
		return s.lastErr
	}

	kept := s.cache[:0]
	for _, cached := range s.cache {
		if cached.ID != meetingID {
			kept = append(kept, cached)
		}
	}
	s.cache = kept
	return nil
}

// Meetings returns a snapshot of the cached rows.
func (s *MeetingStore) Meetings() []*model.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*model.Meeting, len(s.cache))
	copy(snapshot, s.cache)
	return snapshot
}

func (s *MeetingStore) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// LastErr returns the recorded error; it is never cleared automatically.
func (s *MeetingStore) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// fail records the error without touching the cache; only list failures
// move the state machine to Errored. Nothing clears lastErr automatically.
func (s *MeetingStore) fail(err error) {
	s.lastErr = err
	slog.Error("meeting store operation failed", "error", err, "user_id", s.userID, "quarter_id", s.quarterID)
}
