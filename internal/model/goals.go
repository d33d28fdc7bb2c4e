package model

import (
	"time"
)

// Goals holds the two quarterly targets. One row per (user, quarter);
// both targets are always written together.
type Goals struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	QuarterID   string    `db:"quarter_id"`
	MeetingGoal int       `db:"meeting_goal"`
	MMRGoal     float64   `db:"mmr_goal"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
