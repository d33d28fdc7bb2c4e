package model

import (
	"time"
)

type Deal struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	QuarterID string    `db:"quarter_id"`
	Name      string    `db:"name"`
	Value     float64   `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
