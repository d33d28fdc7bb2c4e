package model

import (
	"time"
)

// Quarter is a user-defined time period that scopes meetings, deals and
// goals. At most one quarter per user carries the active flag.
type Quarter struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}
