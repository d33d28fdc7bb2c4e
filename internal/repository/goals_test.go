package repository

import (
	"testing"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGoalsRepository_ByQuarterNotFound(t *testing.T) {
	database := newTestDB(t)
	repo := NewGoalsRepository(database)
	user := createTestUser(t, database)
	quarter := createTestQuarter(t, database, user.ID, "Q1 2026")

	_, err := repo.ByQuarter(user.ID, quarter.ID)
	require.ErrorIs(t, err, ErrGoalsNotFound)
}

func TestGoalsRepository_UpsertInsertsThenUpdates(t *testing.T) {
	database := newTestDB(t)
	repo := NewGoalsRepository(database)
	user := createTestUser(t, database)
	quarter := createTestQuarter(t, database, user.ID, "Q1 2026")

	now := time.Now()
	goals := &model.Goals{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		QuarterID:   quarter.ID,
		MeetingGoal: 10,
		MMRGoal:     5000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Upsert(goals))

	got, err := repo.ByQuarter(user.ID, quarter.ID)
	require.NoError(t, err)
	require.Equal(t, 10, got.MeetingGoal)

	// Second upsert for the same (user, quarter) replaces both targets in place
	updated := &model.Goals{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		QuarterID:   quarter.ID,
		MeetingGoal: 20,
		MMRGoal:     8000,
		CreatedAt:   now,
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Upsert(updated))

	got, err = repo.ByQuarter(user.ID, quarter.ID)
	require.NoError(t, err)
	require.Equal(t, 20, got.MeetingGoal)
	require.Equal(t, float64(8000), got.MMRGoal)
	require.Equal(t, goals.ID, got.ID, "original row keeps its identifier")

	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM goals WHERE user_id = $1 AND quarter_id = $2`, user.ID, quarter.ID))
	require.Equal(t, 1, count)
}
