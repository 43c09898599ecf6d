package services

import (
	"unicode"
	"unicode/utf8"

	"github.com/avasiljevs/accountkeeper/internal/common"
)

// minPasswordLength is the floor of the complexity policy enforced before
// any network call.
const minPasswordLength = 8

// ValidatePassword checks the client-side complexity policy: at least 8
// characters with at least one uppercase letter, one digit, and one symbol.
// Violations surface as common.ErrPasswordPolicy so callers can tell "fix
// your input" apart from server failures.
func ValidatePassword(password string) error {
	// Counted in runes so multibyte characters are not worth extra length.
	if utf8.RuneCountInString(password) < minPasswordLength {
		return common.ErrPasswordPolicy
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasUpper || !hasDigit || !hasSymbol {
		return common.ErrPasswordPolicy
	}
	return nil
}
