package repository

import (
	"testing"
	"time"

	"github.com/alfieapp/quarterly/internal/db"
	"github.com/alfieapp/quarterly/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestDB creates a migrated in-memory SQLite database. A single
// connection is forced so every query sees the same memory database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", ":memory:")
	require.NoError(t, err, "failed to create test database")
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func createTestUser(t *testing.T, database *sqlx.DB) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	err := NewUserRepository(database).Create(user)
	require.NoError(t, err)
	return user
}

func createTestQuarter(t *testing.T, database *sqlx.DB, userID, name string) *model.Quarter {
	t.Helper()

	quarter := &model.Quarter{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	err := NewQuarterRepository(database).CreateActive(quarter)
	require.NoError(t, err)
	return quarter
}
