package validation

import (
	"regexp"
	"unicode"
)

// Validation rule patterns
var (
	// Username: letters, digits and common symbols. The symbol set matches
	// what signup accepts, so names like "amy1!" register.
	UsernamePattern = `^[a-zA-Z0-9._!@#$%^&*-]{3,30}$`

	// Phone numbers in loose international format
	PhonePattern = `^\+?[0-9 \-()]{7,20}$`

	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username *regexp.Regexp
	Phone    *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
	Phone:    regexp.MustCompile(PhonePattern),
}

// ValidUsername reports whether a username matches the accepted pattern
func ValidUsername(username string) bool {
	return CompiledPatterns.Username.MatchString(username)
}

// ValidPhoneNumber reports whether a phone number matches the accepted pattern
func ValidPhoneNumber(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// StrongPassword requires the minimum length plus at least one letter
// and one digit.
func StrongPassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}
