package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestConfirm(window time.Duration) (*DeleteConfirm, *time.Time) {
	c := NewDeleteConfirm(window)
	now := time.Now()
	c.now = func() time.Time { return now }
	return c, &now
}

func TestDeleteConfirm_TwoStep(t *testing.T) {
	c, _ := newTestConfirm(3 * time.Second)

	require.False(t, c.Confirm("m1"), "first request arms")
	require.Equal(t, "m1", c.Pending())
	require.True(t, c.Confirm("m1"), "second request confirms")
	require.Empty(t, c.Pending())
}

func TestDeleteConfirm_WindowExpires(t *testing.T) {
	c, now := newTestConfirm(3 * time.Second)

	require.False(t, c.Confirm("m1"))
	*now = now.Add(4 * time.Second)

	require.Empty(t, c.Pending(), "expired arm is not pending")
	require.False(t, c.Confirm("m1"), "expired arm re-arms instead of confirming")
	require.True(t, c.Confirm("m1"))
}

func TestDeleteConfirm_SingleSlot(t *testing.T) {
	c, _ := newTestConfirm(3 * time.Second)

	require.False(t, c.Confirm("m1"))
	require.False(t, c.Confirm("m2"), "arming a second identifier replaces the first")
	require.Equal(t, "m2", c.Pending())
	require.False(t, c.Confirm("m1"), "the first identifier is no longer armed")
	require.True(t, c.Confirm("m1"))
}

func TestDeleteConfirm_BoundaryInclusive(t *testing.T) {
	c, now := newTestConfirm(3 * time.Second)

	require.False(t, c.Confirm("m1"))
	*now = now.Add(3 * time.Second)
	require.True(t, c.Confirm("m1"), "exactly at the window boundary still confirms")
}

func TestDeleteConfirm_Clear(t *testing.T) {
	c, _ := newTestConfirm(3 * time.Second)

	require.False(t, c.Confirm("m1"))
	c.Clear()
	require.Empty(t, c.Pending())
	require.False(t, c.Confirm("m1"))
}
