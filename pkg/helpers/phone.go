package helpers

import "strings"

// NormalizePhone strips every non-digit rune from a phone number, so
// "(555) 123-4567" and "5551234567" map to the same stored value.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether a normalized phone has an acceptable length:
// 10 digits, or 11 with a leading country code.
func ValidPhone(normalized string) bool {
	n := len(normalized)
	return n == 10 || n == 11
}
