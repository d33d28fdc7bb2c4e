package store

import (
	"testing"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/stretchr/testify/require"
)

func TestMeetingStore_StartsUninitialized(t *testing.T) {
	env := newTestEnv(t)
	s := NewMeetingStore(env.meetings, env.userID)

	require.Equal(t, StatusUninitialized, s.Status())
	require.Empty(t, s.Meetings())
	require.NoError(t, s.LastErr())
}

func TestMeetingStore_SetQuarterLoads(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	_, err := env.meetings.Create(env.userID, quarter.ID, meetingInput("Jamie"))
	require.NoError(t, err)

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	require.Equal(t, StatusReady, s.Status())
	require.Len(t, s.Meetings(), 1)
}

func TestMeetingStore_EmptyQuarterClears(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	_, err := s.Add(meetingInput("Jamie"))
	require.NoError(t, err)
	require.Len(t, s.Meetings(), 1)

	require.NoError(t, s.SetQuarter(""))
	require.Equal(t, StatusUninitialized, s.Status())
	require.Empty(t, s.Meetings())
}

func TestMeetingStore_AddCachesAfterWrite(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	meeting, err := s.Add(meetingInput("Jamie"))
	require.NoError(t, err)
	require.NotNil(t, meeting)

	// Cached row matches what the database holds
	cached := s.Meetings()
	require.Len(t, cached, 1)
	require.Equal(t, meeting.ID, cached[0].ID)

	persisted, err := env.meetings.Meetings(env.userID, quarter.ID)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	require.Equal(t, meeting.ID, persisted[0].ID)
}

func TestMeetingStore_AddPrependsNewest(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	_, err := s.Add(meetingInput("First"))
	require.NoError(t, err)
	second, err := s.Add(meetingInput("Second"))
	require.NoError(t, err)

	cached := s.Meetings()
	require.Len(t, cached, 2)
	require.Equal(t, second.ID, cached[0].ID)
}

func TestMeetingStore_AddValidationNotRecorded(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	in := meetingInput("Jamie")
	in.Outcome = "Maybe"
	_, err := s.Add(in)
	require.Error(t, err)

	// Local validation failures never touch the cache or the error record
	require.Empty(t, s.Meetings())
	require.NoError(t, s.LastErr())
	require.Equal(t, StatusReady, s.Status())
}

func TestMeetingStore_AddWithoutQuarterIsNoop(t *testing.T) {
	env := newTestEnv(t)
	s := NewMeetingStore(env.meetings, env.userID)

	meeting, err := s.Add(meetingInput("Jamie"))
	require.NoError(t, err)
	require.Nil(t, meeting)
	require.Empty(t, s.Meetings())
}

func TestMeetingStore_NoSession(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, "")
	err := s.SetQuarter(quarter.ID)
	require.ErrorIs(t, err, ErrNoSession)
	require.Equal(t, StatusErrored, s.Status())
	require.ErrorIs(t, s.LastErr(), ErrNoSession)
}

func TestMeetingStore_UpdateOutcomeReplacesRow(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	meeting, err := s.Add(meetingInput("Jamie"))
	require.NoError(t, err)

	updated, err := s.UpdateOutcome(meeting.ID, model.OutcomeCompleted)
	require.NoError(t, err)
	require.Equal(t, model.OutcomeCompleted, updated.Outcome)

	cached := s.Meetings()
	require.Len(t, cached, 1)
	require.Equal(t, model.OutcomeCompleted, cached[0].Outcome)
}

func TestMeetingStore_UpdateUnknownRecordsRejection(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	_, err := s.UpdateOutcome("missing", model.OutcomeCompleted)
	require.ErrorIs(t, err, ErrRejected)
	require.ErrorIs(t, s.LastErr(), ErrRejected)

	// A failed mutation does not move the state machine
	require.Equal(t, StatusReady, s.Status())
}

func TestMeetingStore_RemoveDropsFromCache(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	keep, err := s.Add(meetingInput("Keep"))
	require.NoError(t, err)
	drop, err := s.Add(meetingInput("Drop"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(drop.ID))

	cached := s.Meetings()
	require.Len(t, cached, 1)
	require.Equal(t, keep.ID, cached[0].ID)

	persisted, err := env.meetings.Meetings(env.userID, quarter.ID)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
}

func TestMeetingStore_RemoveUnknownRejected(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	err := s.Remove("missing")
	require.ErrorIs(t, err, ErrRejected)
}

func TestMeetingStore_QuarterSwitchDiscardsRows(t *testing.T) {
	env := newTestEnv(t)
	q1 := env.newQuarter(t, "Q1 2026")
	q2 := env.newQuarter(t, "Q2 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(q1.ID))

	_, err := s.Add(meetingInput("Jamie"))
	require.NoError(t, err)

	require.NoError(t, s.SetQuarter(q2.ID))
	require.Empty(t, s.Meetings(), "rows from the previous quarter must not leak")

	require.NoError(t, s.SetQuarter(q1.ID))
	require.Len(t, s.Meetings(), 1)
}

func TestMeetingStore_RefreshReplacesWholeCache(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	// Another session writes directly
	_, err := env.meetings.Create(env.userID, quarter.ID, service.MeetingInput{
		ContactName: "Elsewhere",
		CompanyName: "Acme",
		MeetingDate: time.Now(),
		Outcome:     model.OutcomeScheduled,
	})
	require.NoError(t, err)

	require.Empty(t, s.Meetings())
	require.NoError(t, s.Refresh())
	require.Len(t, s.Meetings(), 1)
}

func TestMeetingStore_SnapshotIsCopy(t *testing.T) {
	env := newTestEnv(t)
	quarter := env.newQuarter(t, "Q1 2026")

	s := NewMeetingStore(env.meetings, env.userID)
	require.NoError(t, s.SetQuarter(quarter.ID))

	_, err := s.Add(meetingInput("Jamie"))
	require.NoError(t, err)

	snapshot := s.Meetings()
	snapshot[0] = nil
	require.NotNil(t, s.Meetings()[0])
}
