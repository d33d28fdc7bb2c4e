package validation

import (
	"errors"
)

// ValidateGoals validates the pair of quarterly targets.
// Both are written together and both must be positive.
func ValidateGoals(meetingGoal int, mmrGoal float64) error {
	if meetingGoal <= 0 {
		return errors.New("meeting goal must be a positive number")
	}

	if mmrGoal <= 0 {
		return errors.New("MMR goal must be a positive number")
	}

	return nil
}
