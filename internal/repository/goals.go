package repository

import (
	"database/sql"
	"errors"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrGoalsNotFound = errors.New("goals not found")
)

type GoalsRepository interface {
	ByQuarter(userID, quarterID string) (*model.Goals, error)
	Upsert(goals *model.Goals) error
}

type goalsRepository struct {
	db *sqlx.DB
}

func NewGoalsRepository(db *sqlx.DB) GoalsRepository {
	return &goalsRepository{db: db}
}

// ByQuarter fetches the single goals row for (user, quarter).
// Returns ErrGoalsNotFound when the quarter has no goals yet.
func (r *goalsRepository) ByQuarter(userID, quarterID string) (*model.Goals, error) {
	goals := &model.Goals{}
	query := `SELECT * FROM goals WHERE user_id = $1 AND quarter_id = $2`

	err := r.db.Get(goals, query, userID, quarterID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalsNotFound
	}

	return goals, err
}

// Upsert inserts the goals row or, when one exists for (user, quarter),
// replaces both targets in place. Both targets are always written together.
func (r *goalsRepository) Upsert(goals *model.Goals) error {
	query := `INSERT INTO goals (id, user_id, quarter_id, meeting_goal, mmr_goal, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (user_id, quarter_id)
	          DO UPDATE SET meeting_goal = excluded.meeting_goal,
	                        mmr_goal = excluded.mmr_goal,
	                        updated_at = excluded.updated_at`

	_, err := r.db.Exec(query,
		goals.ID,
		goals.UserID,
		goals.QuarterID,
		goals.MeetingGoal,
		goals.MMRGoal,
		goals.CreatedAt,
		goals.UpdatedAt,
	)

	return err
}
