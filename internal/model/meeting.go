package model

import (
	"time"
)

// Meeting outcomes. Closed set; no rule ties outcome to date, a Scheduled
// meeting may carry a past date.
const (
	OutcomeScheduled   = "Scheduled"
	OutcomeCompleted   = "Completed"
	OutcomeNoShow      = "No show"
	OutcomeRescheduled = "Rescheduled"
	OutcomeUnqualified = "Unqualified"
)

// Outcomes lists all valid meeting outcomes in display order.
var Outcomes = []string{
	OutcomeScheduled,
	OutcomeCompleted,
	OutcomeNoShow,
	OutcomeRescheduled,
	OutcomeUnqualified,
}

func ValidOutcome(outcome string) bool {
	for _, o := range Outcomes {
		if o == outcome {
			return true
		}
	}
	return false
}

type Meeting struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	QuarterID   string    `db:"quarter_id"`
	ContactName string    `db:"contact_name"`
	CompanyName string    `db:"company_name"`
	MeetingDate time.Time `db:"meeting_date"`
	Outcome     string    `db:"outcome"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CountsTowardGoal reports whether the meeting counts toward the quarterly
// meeting goal (completed or still on the calendar).
func (m *Meeting) CountsTowardGoal() bool {
	return m.Outcome == OutcomeCompleted || m.Outcome == OutcomeScheduled
}
