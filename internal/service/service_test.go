package service

import (
	"testing"
	"time"

	"github.com/alfieapp/quarterly/internal/db"
	"github.com/alfieapp/quarterly/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

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

func newTestQuarterService(t *testing.T) (*QuarterService, *sqlx.DB) {
	t.Helper()

	database := newTestDB(t)
	return NewQuarterService(repository.NewQuarterRepository(database)), database
}

func newTestGoalsService(database *sqlx.DB) *GoalsService {
	return NewGoalsService(repository.NewGoalsRepository(database))
}

func newTestAuthService(database *sqlx.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(database),
		NewEmailService("", "noreply@example.com", "http://localhost", "Quarterly", true),
		"test-secret",
		false,
		time.Hour,
	)
}

func registerTestUser(t *testing.T, database *sqlx.DB) string {
	t.Helper()

	user, err := newTestAuthService(database).Register("tester@example.com", "a-long-secure-passphrase")
	require.NoError(t, err)
	return user.ID
}
