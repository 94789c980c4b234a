package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	maxFullNameLength = 100
	minUsernameLength = 3
	maxUsernameLength = 50
)

// passwordSymbols is the punctuation set at least one character of a
// password must come from.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>[]\/_+=-~` + "`"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidationError describes a rejected input field. It is surfaced to the
// client as a 400 with the field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// passwordRules is the ordered list of predicates a password must satisfy.
// Each entry pairs a check with the failure message for that rule; the
// first failing rule wins.
var passwordRules = []struct {
	ok      func(string) bool
	message string
}{
	{
		ok:      func(p string) bool { return len(p) >= minPasswordLength },
		message: fmt.Sprintf("password must be at least %d characters long", minPasswordLength),
	},
	{
		ok:      func(p string) bool { return strings.IndexFunc(p, unicode.IsUpper) >= 0 },
		message: "password must contain at least one uppercase letter",
	},
	{
		ok:      func(p string) bool { return strings.IndexFunc(p, unicode.IsLower) >= 0 },
		message: "password must contain at least one lowercase letter",
	},
	{
		ok:      func(p string) bool { return strings.IndexFunc(p, unicode.IsDigit) >= 0 },
		message: "password must contain at least one number",
	},
	{
		ok:      func(p string) bool { return strings.ContainsAny(p, passwordSymbols) },
		message: "password must contain at least one special character",
	},
	{
		ok:      func(p string) bool { return len(p) <= maxPasswordLength },
		message: fmt.Sprintf("password must be less than %d characters", maxPasswordLength+1),
	},
}

// validatePassword applies the password strength rules in order and returns
// the first failure.
func validatePassword(password string) error {
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			return &ValidationError{Field: "password", Message: rule.message}
		}
	}
	return nil
}

// validateFullName checks that the display name is non-empty and bounded.
func validateFullName(fullName string) error {
	if len(fullName) < 1 {
		return &ValidationError{Field: "full_name", Message: "full name cannot be empty"}
	}
	if len(fullName) > maxFullNameLength {
		return &ValidationError{Field: "full_name", Message: fmt.Sprintf("full name must be less than %d characters", maxFullNameLength+1)}
	}
	return nil
}

// validateUsername checks length and character set. It is only applied to a
// caller-provided username, not to one derived from the email local-part.
func validateUsername(username string) error {
	if len(username) < minUsernameLength {
		return &ValidationError{Field: "username", Message: fmt.Sprintf("username must be at least %d characters long", minUsernameLength)}
	}
	if len(username) > maxUsernameLength {
		return &ValidationError{Field: "username", Message: fmt.Sprintf("username must be less than %d characters", maxUsernameLength+1)}
	}
	if !usernamePattern.MatchString(username) {
		return &ValidationError{Field: "username", Message: "username can only contain letters, numbers, underscores, and hyphens"}
	}
	return nil
}
