package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestManager(env *testEnv) *Manager {
	return NewManager(env.goals, env.meetings, env.deals, 3*time.Second)
}

func TestManager_SessionPerUser(t *testing.T) {
	env := newTestEnv(t)
	m := newTestManager(env)

	sess := m.Session(env.userID)
	require.Same(t, sess, m.Session(env.userID), "one session per user")
	require.NotSame(t, sess, m.Session("someone-else"))
}

func TestManager_DropDiscardsSession(t *testing.T) {
	env := newTestEnv(t)
	m := newTestManager(env)

	sess := m.Session(env.userID)
	m.Drop(env.userID)
	require.NotSame(t, sess, m.Session(env.userID))
}

func TestSession_SelectQuarterScopesAllStores(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")
	m := newTestManager(env)

	sess := m.Session(env.userID)
	require.NoError(t, sess.SelectQuarter(quarter.ID))
	require.Equal(t, quarter.ID, sess.QuarterID())

	require.Equal(t, StatusReady, sess.Goals.Status())
	require.Equal(t, StatusReady, sess.Meetings.Status())
	require.Equal(t, StatusReady, sess.Deals.Status())
}

func TestSession_SelectQuarterClearsPendingDeletes(t *testing.T) {
	env := newTestEnv(t)
	q1 := env.newQuarter(t, "Q1 2026")
	q2 := env.newQuarter(t, "Q2 2026")
	m := newTestManager(env)

	sess := m.Session(env.userID)
	require.NoError(t, sess.SelectQuarter(q1.ID))

	require.False(t, sess.MeetingDeletes.Confirm("m1"))
	require.False(t, sess.DealDeletes.Confirm("d1"))

	require.NoError(t, sess.SelectQuarter(q2.ID))
	require.Empty(t, sess.MeetingDeletes.Pending())
	require.Empty(t, sess.DealDeletes.Pending())
}

func TestSession_SummarizeFromCaches(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")
	m := newTestManager(env)

	sess := m.Session(env.userID)
	require.NoError(t, sess.SelectQuarter(quarter.ID))

	_, err := sess.Goals.Set(4, 1000)
	require.NoError(t, err)
	_, err = sess.Meetings.Add(meetingInput("Jamie"))
	require.NoError(t, err)
	_, err = sess.Deals.Add("Acme expansion", 250)
	require.NoError(t, err)

	sum := sess.Summarize()
	require.Equal(t, 1, sum.MeetingCount)
	require.Equal(t, float64(25), sum.MeetingProgress)
	require.Equal(t, float64(250), sum.MMRTotal)
	require.Equal(t, float64(25), sum.MMRProgress)
}
