package validation

import (
	"regexp"

	"cardlink/internal/errors"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

var specialCharRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

// HasSpecialChar checks if a string contains at least one special character
func HasSpecialChar(s string) bool {
	return specialCharRegex.MatchString(s)
}

// ValidatePassword enforces the registration password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.Validation("password", "must be at least 8 characters")
	}
	if len(password) > MaxPasswordLength {
		return errors.Validation("password", "must be at most 72 characters")
	}
	if !HasSpecialChar(password) {
		return errors.Validation("password", "must contain a special character")
	}
	return nil
}
