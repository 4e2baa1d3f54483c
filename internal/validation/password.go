package validation

import (
	"errors"
	"unicode"
)

// ValidatePassword enforces the signup password policy: at least 8 characters
// with one uppercase letter, one lowercase letter, and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	// bcrypt silently truncates input beyond 72 bytes, so reject it instead
	if len(password) > 72 {
		return errors.New("password must not exceed 72 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must contain an uppercase letter, a lowercase letter, and a number")
	}

	return nil
}
