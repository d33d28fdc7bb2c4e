// Package store holds the per-session view state: one cache per entity type
// scoped to the selected quarter, mirroring every mutation to the database
// and reconciling the cache only after the write succeeds.
package store

import (
	"errors"
	"fmt"

	"github.com/alfieapp/quarterly/internal/repository"
)

// Status describes a store's synchronization state machine:
// Uninitialized -> Loading -> Ready | Errored. A store with no scoping
// quarter holds an empty cache and stays Uninitialized.
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoading
	StatusReady
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusErrored:
		return "errored"
	default:
		return "uninitialized"
	}
}

var (
	// ErrNoSession aborts an operation before it reaches the database.
	ErrNoSession = errors.New("no authenticated user")
	// ErrRejected marks an ownership or row-level failure from the database.
	ErrRejected = errors.New("gateway rejected the operation")
)

// classify maps a failure into the store error taxonomy: row-level
// not-found errors become ErrRejected (the row exists outside the caller's
// (user, quarter) scope, or not at all); anything else passes through as
// unknown.
func classify(err error) error {
	switch {
	case errors.Is(err, repository.ErrMeetingNotFound),
		errors.Is(err, repository.ErrDealNotFound),
		errors.Is(err, repository.ErrQuarterNotFound):
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		return err
	}
}
