// Package phone canonicalizes Ghanaian phone numbers to +233XXXXXXXXX.
package phone

import "strings"

const CountryCode = "233"

// Normalize strips every non-digit and classifies what is left. ok is false
// when the digits do not form a Ghanaian number; callers keyed on the phone
// must drop such records.
func Normalize(raw string) (canonical string, ok bool) {
	digits := Digits(raw)

	switch {
	case len(digits) == 9 && digits[0] == '2':
		return "+" + CountryCode + digits, true
	case len(digits) == 10 && digits[0] == '0':
		return "+" + CountryCode + digits[1:], true
	case len(digits) == 12 && strings.HasPrefix(digits, CountryCode):
		return "+" + digits, true
	}
	return "", false
}

// Digits keeps the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
