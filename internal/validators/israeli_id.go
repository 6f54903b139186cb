package validators

import "strings"

// ValidateIsraeliID reports whether s is a valid Israeli national ID.
//
// Rules, applied in order:
//   - leading/trailing whitespace is ignored;
//   - the remainder must consist of ASCII digits only;
//   - length must be 8 or 9; an 8-digit ID is padded with a leading zero;
//   - the 9th digit must equal the check digit computed from the first 8
//     with the official weighted-sum algorithm (weights alternate 1 and 2,
//     two-digit products are reduced by subtracting 9);
//   - a canonical form consisting of a single repeated digit is rejected.
//
// Malformed input never panics; it simply yields false.
func ValidateIsraeliID(s string) bool {
	_, ok := CanonicalIsraeliID(s)
	return ok
}

// CanonicalIsraeliID validates s and returns its canonical 9-digit
// zero-padded form. ok is false when s fails any of the rules listed on
// [ValidateIsraeliID], in which case the returned string is empty.
func CanonicalIsraeliID(s string) (canonical string, ok bool) {
	s = strings.TrimSpace(s)

	if len(s) < 8 || len(s) > 9 {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	if len(s) == 8 {
		s = "0" + s
	}

	if allSameDigit(s) {
		// An all-zero ID satisfies the checksum (sum 0, check digit 0) but is
		// not a real ID; the degenerate repeated-digit forms are rejected
		// outright.
		return "", false
	}

	sum := 0
	for i := 0; i < 8; i++ {
		digit := int(s[i] - '0')
		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	expected := (10 - sum%10) % 10
	if int(s[8]-'0') != expected {
		return "", false
	}

	return s, true
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
