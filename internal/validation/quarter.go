package validation

import (
	"errors"
	"strings"
)

// ValidateQuarterName validates a quarter's display name
func ValidateQuarterName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("quarter name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("quarter name is too long (max 100 characters)")
	}

	return nil
}
