package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuarterService_ResolveOnboardingRequired(t *testing.T) {
	svc, database := newTestQuarterService(t)
	userID := registerTestUser(t, database)

	_, err := svc.Resolve(userID)
	require.ErrorIs(t, err, ErrOnboardingRequired)
}

func TestQuarterService_ResolveActiveQuarter(t *testing.T) {
	svc, database := newTestQuarterService(t)
	userID := registerTestUser(t, database)

	first, err := svc.Create(userID, "Q1 2026")
	require.NoError(t, err)
	second, err := svc.Create(userID, "Q2 2026")
	require.NoError(t, err)

	resolved, err := svc.Resolve(userID)
	require.NoError(t, err)
	require.Equal(t, second.ID, resolved.ID)
	require.NotEqual(t, first.ID, resolved.ID)
}

func TestQuarterService_ResolvePromotesMostRecent(t *testing.T) {
	svc, database := newTestQuarterService(t)
	userID := registerTestUser(t, database)

	_, err := svc.Create(userID, "Q1 2026")
	require.NoError(t, err)
	second, err := svc.Create(userID, "Q2 2026")
	require.NoError(t, err)

	// Force the inconsistent no-active-quarter state
	_, err = database.Exec(`UPDATE quarters SET is_active = FALSE WHERE user_id = $1`, userID)
	require.NoError(t, err)

	resolved, err := svc.Resolve(userID)
	require.NoError(t, err)
	require.Equal(t, second.ID, resolved.ID)
	require.True(t, resolved.IsActive)

	// The promotion is persisted, not just in memory
	quarters, err := svc.Quarters(userID)
	require.NoError(t, err)
	for _, q := range quarters {
		require.Equal(t, q.ID == second.ID, q.IsActive)
	}
}

func TestQuarterService_CreateValidatesName(t *testing.T) {
	svc, database := newTestQuarterService(t)
	userID := registerTestUser(t, database)

	_, err := svc.Create(userID, "   ")
	require.Error(t, err)

	quarters, err := svc.Quarters(userID)
	require.NoError(t, err)
	require.Empty(t, quarters)
}

func TestQuarterService_CreateWithGoals(t *testing.T) {
	svc, database := newTestQuarterService(t)
	userID := registerTestUser(t, database)

	quarter, err := svc.CreateWithGoals(userID, "Q1 2024", 10, 5000)
	require.NoError(t, err)
	require.True(t, quarter.IsActive)

	goalsSvc := newTestGoalsService(database)
	goals, err := goalsSvc.ByQuarter(userID, quarter.ID)
	require.NoError(t, err)
	require.Equal(t, 10, goals.MeetingGoal)
	require.Equal(t, float64(5000), goals.MMRGoal)
}

func TestQuarterService_CreateWithGoalsRejectsNonPositive(t *testing.T) {
	svc, database := newTestQuarterService(t)
	userID := registerTestUser(t, database)

	_, err := svc.CreateWithGoals(userID, "Q1 2026", 0, 5000)
	require.Error(t, err)

	_, err = svc.CreateWithGoals(userID, "Q1 2026", 10, 0)
	require.Error(t, err)

	quarters, err := svc.Quarters(userID)
	require.NoError(t, err)
	require.Empty(t, quarters)
}

func TestQuarterService_Select(t *testing.T) {
	svc, database := newTestQuarterService(t)
	userID := registerTestUser(t, database)

	first, err := svc.Create(userID, "Q1 2026")
	require.NoError(t, err)
	_, err = svc.Create(userID, "Q2 2026")
	require.NoError(t, err)

	require.NoError(t, svc.Select(userID, first.ID))

	resolved, err := svc.Resolve(userID)
	require.NoError(t, err)
	require.Equal(t, first.ID, resolved.ID)
}
