package validation

import (
	"errors"
	"time"
)

// ValidateProgressValue validates a progress observation: zero or positive.
func ValidateProgressValue(value float64) error {
	if value < 0 {
		return errors.New("progress value must not be negative")
	}

	return nil
}

// ValidateProgressDate validates a progress entry date: must not be in the
// future.
func ValidateProgressDate(date, now time.Time) error {
	if date.IsZero() {
		return errors.New("date is required")
	}

	if date.After(now) {
		return errors.New("date must not be in the future")
	}

	return nil
}
