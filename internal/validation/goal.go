package validation

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// ValidateGoalTitle validates a goal title: at least 3 characters, letters,
// digits and spaces only.
func ValidateGoalTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if len(trimmed) < 3 {
		return errors.New("title must be at least 3 characters")
	}

	if len(trimmed) > 200 {
		return errors.New("title is too long (max 200 characters)")
	}

	for _, r := range trimmed {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
			return errors.New("title may only contain letters, numbers, and spaces")
		}
	}

	return nil
}

// ValidateGoalDescription validates a goal description: at least 10 characters.
func ValidateGoalDescription(description string) error {
	if len(strings.TrimSpace(description)) < 10 {
		return errors.New("description must be at least 10 characters")
	}

	return nil
}

// ValidateGoalTarget validates a goal target: strictly positive.
func ValidateGoalTarget(target float64) error {
	if target <= 0 {
		return errors.New("target must be greater than zero")
	}

	return nil
}

// ValidateGoalDeadline validates a goal deadline: must lie in the future.
func ValidateGoalDeadline(deadline, now time.Time) error {
	if deadline.IsZero() {
		return errors.New("deadline is required")
	}

	if !deadline.After(now) {
		return errors.New("deadline must be in the future")
	}

	return nil
}
