package store

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/repository"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/validation"
)

// GoalsStore caches the selected quarter's single goals row. A quarter
// without goals is a valid Ready state with a nil row (targets unset), not
// an error.
type GoalsStore struct {
	svc    *service.GoalsService
	userID string

	mu        sync.Mutex
	quarterID string
	status    Status
	cache     *model.Goals
	lastErr   error
}

func NewGoalsStore(svc *service.GoalsService, userID string) *GoalsStore {
	return &GoalsStore{svc: svc, userID: userID}
}

// SetQuarter rescopes the store, discarding the cached row before the fetch.
func (s *GoalsStore) SetQuarter(quarterID string) error {
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

func (s *GoalsStore) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quarterID == "" {
		return nil
	}

	return s.reload()
}

// reload is called with the lock held.
func (s *GoalsStore) reload() error {
	if s.userID == "" {
		s.fail(ErrNoSession)
		s.status = StatusErrored
		return ErrNoSession
	}

	s.status = StatusLoading
	goals, err := s.svc.ByQuarter(s.userID, s.quarterID)
	if err != nil && !errors.Is(err, repository.ErrGoalsNotFound) {
		s.fail(classify(err))
		s.status = StatusErrored
		return s.lastErr
	}

	s.cache = goals // nil when the quarter has no goals yet
	s.status = StatusReady
	return nil
}

// Set upserts both targets for the current quarter and replaces the cached
// row once the write succeeded.
func (s *GoalsStore) Set(meetingGoal int, mmrGoal float64) (*model.Goals, error) {
	err := validation.ValidateGoals(meetingGoal, mmrGoal)
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

	goals, err := s.svc.Upsert(s.userID, s.quarterID, meetingGoal, mmrGoal)
	if err != nil {
		s.fail(classify(err))
		return nil, s.lastErr
	}

	s.cache = goals
	return goals, nil
}

// Goals returns the cached row, nil when the quarter has no goals.
func (s *GoalsStore) Goals() *model.Goals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache
}

func (s *GoalsStore) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *GoalsStore) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// fail records the error without touching the cache; only list failures
// move the state machine to Errored.
func (s *GoalsStore) fail(err error) {
	s.lastErr = err
	slog.Error("goals store operation failed", "error", err, "user_id", s.userID, "quarter_id", s.quarterID)
}
