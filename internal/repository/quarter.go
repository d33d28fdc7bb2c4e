package repository

import (
	"errors"
	"fmt"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrQuarterNotFound = errors.New("quarter not found")
)

type QuarterRepository interface {
	ByUser(userID string) ([]*model.Quarter, error)
	CreateActive(quarter *model.Quarter) error
	CreateActiveWithGoals(quarter *model.Quarter, goals *model.Goals) error
	ActivateExclusive(userID, quarterID string) error
}

type quarterRepository struct {
	db *sqlx.DB
}

func NewQuarterRepository(db *sqlx.DB) QuarterRepository {
	return &quarterRepository{db: db}
}

// ByUser lists all quarters owned by the user, most recently created first.
func (r *quarterRepository) ByUser(userID string) ([]*model.Quarter, error) {
	var quarters []*model.Quarter
	query := `SELECT * FROM quarters WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&quarters, query, userID)
	if err != nil {
		return nil, err
	}

	return quarters, nil
}

// CreateActive inserts the quarter with the active flag set, deactivating the
// user's other quarters in the same transaction so the flag stays exclusive.
func (r *quarterRepository) CreateActive(quarter *model.Quarter) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = insertActiveQuarter(tx, quarter)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CreateActiveWithGoals inserts the quarter and its goals row atomically.
// A partial write (quarter without goals) is never visible.
func (r *quarterRepository) CreateActiveWithGoals(quarter *model.Quarter, goals *model.Goals) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = insertActiveQuarter(tx, quarter)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO goals (id, user_id, quarter_id, meeting_goal, mmr_goal, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		goals.ID,
		goals.UserID,
		goals.QuarterID,
		goals.MeetingGoal,
		goals.MMRGoal,
		goals.CreatedAt,
		goals.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ActivateExclusive flips the active flag to the given quarter, clearing it
// on every other quarter owned by the user in one transaction.
func (r *quarterRepository) ActivateExclusive(userID, quarterID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE quarters SET is_active = FALSE WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`UPDATE quarters SET is_active = TRUE WHERE id = $1 AND user_id = $2`, quarterID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrQuarterNotFound
	}

	return tx.Commit()
}

func insertActiveQuarter(tx *sqlx.Tx, quarter *model.Quarter) error {
	_, err := tx.Exec(`UPDATE quarters SET is_active = FALSE WHERE user_id = $1`, quarter.UserID)
	if err != nil {
		return err
	}

	quarter.IsActive = true
	_, err = tx.Exec(
		`INSERT INTO quarters (id, user_id, name, is_active, created_at) VALUES ($1, $2, $3, $4, $5)`,
		quarter.ID,
		quarter.UserID,
		quarter.Name,
		quarter.IsActive,
		quarter.CreatedAt,
	)
	return err
}
