package validation

import (
	"errors"
)

// ValidateDeal checks the required deal fields
func ValidateDeal(name string, value float64) error {
	if name == "" {
		return errors.New("deal name is required")
	}

	if value < 0 {
		return errors.New("deal value must not be negative")
	}

	return nil
}
