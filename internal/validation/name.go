package validation

import (
	"errors"
	"strings"
	"unicode"
)

// ValidateName validates a display name: at least 3 characters, letters and
// spaces only.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if len(trimmed) < 3 {
		return errors.New("name must be at least 3 characters")
	}

	if len(trimmed) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	for _, r := range trimmed {
		if !unicode.IsLetter(r) && r != ' ' {
			return errors.New("name may only contain letters and spaces")
		}
	}

	return nil
}
