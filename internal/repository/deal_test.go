package repository

import (
	"testing"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestDeal(t *testing.T, repo DealRepository, userID, quarterID string, value float64) *model.Deal {
	t.Helper()

	now := time.Now()
	deal := &model.Deal{
		ID:        uuid.New().String(),
		UserID:    userID,
		QuarterID: quarterID,
		Name:      "Acme expansion",
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(deal))
	return deal
}

func TestDealRepository_CreateAndList(t *testing.T) {
	database := newTestDB(t)
	repo := NewDealRepository(database)
	user := createTestUser(t, database)
	quarter := createTestQuarter(t, database, user.ID, "Q1 2026")

	deal := createTestDeal(t, repo, user.ID, quarter.ID, 1200)

	deals, err := repo.ByQuarter(user.ID, quarter.ID)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	require.Equal(t, deal.ID, deals[0].ID)
	require.Equal(t, float64(1200), deals[0].Value)
}

func TestDealRepository_UpdateValue(t *testing.T) {
	database := newTestDB(t)
	repo := NewDealRepository(database)
	user := createTestUser(t, database)
	quarter := createTestQuarter(t, database, user.ID, "Q1 2026")

	deal := createTestDeal(t, repo, user.ID, quarter.ID, 1200)
	require.NoError(t, repo.UpdateValue(user.ID, quarter.ID, deal.ID, 1800))

	got, err := repo.ByID(user.ID, quarter.ID, deal.ID)
	require.NoError(t, err)
	require.Equal(t, float64(1800), got.Value)
}

func TestDealRepository_UpdateValueWrongQuarter(t *testing.T) {
	database := newTestDB(t)
	repo := NewDealRepository(database)
	user := createTestUser(t, database)
	q1 := createTestQuarter(t, database, user.ID, "Q1 2026")
	q2 := createTestQuarter(t, database, user.ID, "Q2 2026")

	deal := createTestDeal(t, repo, user.ID, q1.ID, 1200)

	err := repo.UpdateValue(user.ID, q2.ID, deal.ID, 1800)
	require.ErrorIs(t, err, ErrDealNotFound)
}

func TestDealRepository_Delete(t *testing.T) {
	database := newTestDB(t)
	repo := NewDealRepository(database)
	user := createTestUser(t, database)
	quarter := createTestQuarter(t, database, user.ID, "Q1 2026")

	deal := createTestDeal(t, repo, user.ID, quarter.ID, 1200)

	require.NoError(t, repo.Delete(user.ID, quarter.ID, deal.ID))
	err := repo.Delete(user.ID, quarter.ID, deal.ID)
	require.ErrorIs(t, err, ErrDealNotFound)
}
