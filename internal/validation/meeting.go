package validation

import (
	"errors"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
)

// ValidateMeeting checks the required meeting fields before any network call
func ValidateMeeting(contactName, companyName string, meetingDate time.Time, outcome string) error {
	if contactName == "" {
		return errors.New("contact name is required")
	}

	if companyName == "" {
		return errors.New("company name is required")
	}

	if meetingDate.IsZero() {
		return errors.New("meeting date is required")
	}

	if !model.ValidOutcome(outcome) {
		return errors.New("invalid meeting outcome")
	}

	return nil
}
