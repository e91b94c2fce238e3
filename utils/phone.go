package utils

import "strings"

// NormalizePhone reduces a contact number to its canonical form: digits
// plus an optional leading "+". Spaces, dashes and dots are dropped. The
// normalized string is the canonical client identifier on searches.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether a normalized number carries at least 8 digits.
func ValidPhone(phone string) bool {
	digits := strings.TrimPrefix(phone, "+")
	return len(digits) >= 8
}
