package store

import (
	"sync"
	"time"
)

// DeleteConfirm implements two-step deletion: the first request for an
// identifier arms a pending confirmation, the second within the window
// confirms it. There is a single shared slot, so arming a second identifier
// replaces the first.
type DeleteConfirm struct {
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	pending string
	armedAt time.Time
}

func NewDeleteConfirm(window time.Duration) *DeleteConfirm {
	return &DeleteConfirm{window: window, now: time.Now}
}

// Confirm reports whether the identifier is a confirmed delete. The first
// call for an identifier arms it and returns false; a second call for the
// same identifier within the window clears the slot and returns true. An
// expired or mismatched pending identifier re-arms with the new one.
func (c *DeleteConfirm) Confirm(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.pending == id && now.Sub(c.armedAt) <= c.window {
		c.pending = ""
		return true
	}

	c.pending = id
	c.armedAt = now
	return false
}

// Pending returns the armed identifier, or "" when nothing is armed or the
// window has expired.
func (c *DeleteConfirm) Pending() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == "" || c.now().Sub(c.armedAt) > c.window {
		return ""
	}
	return c.pending
}

// Clear disarms any pending confirmation.
func (c *DeleteConfirm) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = ""
}
