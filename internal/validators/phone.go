package validators

import "strings"

// phonePrefix is the mandatory leading digit pair of an Israeli mobile number.
const phonePrefix = "05"

// phoneDigits is the exact digit count of a canonical Israeli mobile number.
const phoneDigits = 10

// ValidateIsraeliPhone reports whether s is a valid Israeli mobile number.
//
// Every non-digit character is stripped first, so common formatting such as
// "050-123-4567", "050 123 4567" or "050.123.4567" is accepted regardless of
// separator placement. After stripping, the digit string must be exactly
// 10 characters long and start with "05". International forms ("+972...")
// fail the length or prefix check and are rejected.
func ValidateIsraeliPhone(s string) bool {
	digits := CanonicalPhone(s)
	return len(digits) == phoneDigits && strings.HasPrefix(digits, phonePrefix)
}

// CanonicalPhone strips every non-digit character from s and returns the
// digits-only string. This is the form persisted for valid numbers.
func CanonicalPhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
