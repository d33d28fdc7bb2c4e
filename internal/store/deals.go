package store

import (
	"log/slog"
	"sync"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/validation"
)

// DealStore caches the selected quarter's deals, newest first.
type DealStore struct {
	svc    *service.DealService
	userID string

	mu        sync.Mutex
	quarterID string
	status    Status
	cache     []*model.Deal
	lastErr   error
}

func NewDealStore(svc *service.DealService, userID string) *DealStore {
	return &DealStore{svc: svc, userID: userID}
}

// SetQuarter rescopes the store, discarding the cache before the fetch. An
// empty quarter ID clears the store without loading.
func (s *DealStore) SetQuarter(quarterID string) error {
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

func (s *DealStore) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quarterID == "" {
		return nil
	}

	return s.reload()
}

// reload is called with the lock held.
func (s *DealStore) reload() error {
	if s.userID == "" {
		s.fail(ErrNoSession)
		s.status = StatusErrored
		return ErrNoSession
	}

	s.status = StatusLoading
	deals, err := s.svc.Deals(s.userID, s.quarterID)
	if err != nil {
		s.fail(classify(err))
		s.status = StatusErrored
		return s.lastErr
	}

	s.cache = deals
	s.status = StatusReady
	return nil
}

// Add validates locally, creates the deal remotely and prepends the returned
// row to the cache once the write succeeded.
func (s *DealStore) Add(name string, value float64) (*model.Deal, error) {
	err := validation.ValidateDeal(name, value)
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

	deal, err := s.svc.Create(s.userID, s.quarterID, name, value)
	if err != nil {
		s.fail(classify(err))
		return nil, s.lastErr
	}

	s.cache = append([]*model.Deal{deal}, s.cache...)
	return deal, nil
}

// UpdateValue edits one deal's value in place and replaces the matching
// cached row by identifier.
func (s *DealStore) UpdateValue(dealID string, value float64) (*model.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		s.fail(ErrNoSession)
		return nil, ErrNoSession
	}
	if s.quarterID == "" {
		return nil, nil
	}

	deal, err := s.svc.UpdateValue(s.userID, s.quarterID, dealID, value)
	if err != nil {
		s.fail(classify(err))
		return nil, s.lastErr
	}

	for i, cached := range s.cache {
		if cached.ID == dealID {
			s.cache[i] = deal
			break
		}
	}
	return deal, nil
}

// Remove deletes one deal remotely and drops it from the cache. Removing an
// identifier that is not cached leaves the cache unchanged.
func (s *DealStore) Remove(dealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		s.fail(ErrNoSession)
		return ErrNoSession
	}
	if s.quarterID == "" {
		return nil
	}

	err := s.svc.Delete(s.userID, s.quarterID, dealID)
	if err != nil {
		s.fail(classify(err))
		return s.lastErr
	}

	kept := s.cache[:0]
	for _, cached := range s.cache {
		if cached.ID != dealID {
			kept = append(kept, cached)
		}
	}
	s.cache = kept
	return nil
}

// Deals returns a snapshot of the cached rows.
func (s *DealStore) Deals() []*model.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*model.Deal, len(s.cache))
	copy(snapshot, s.cache)
	return snapshot
}

func (s *DealStore) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *DealStore) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// fail records the error without touching the cache; only list failures
// move the state machine to Errored.
func (s *DealStore) fail(err error) {
	s.lastErr = err
	slog.Error("deal store operation failed", "error", err, "user_id", s.userID, "quarter_id", s.quarterID)
}
