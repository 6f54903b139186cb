package validators

import "strings"

// Length bounds for the free-text fields of a user record.
const (
	NameMinLength    = 2
	NameMaxLength    = 100
	AddressMinLength = 1
	AddressMaxLength = 200
)

// ValidateNonBlank reports whether the trimmed form of s is at least
// minLength characters long.
func ValidateNonBlank(s string, minLength int) bool {
	return len(strings.TrimSpace(s)) >= minLength
}

func validTextField(s string, minLength, maxLength int) bool {
	trimmed := strings.TrimSpace(s)
	return len(trimmed) >= minLength && len(trimmed) <= maxLength
}
