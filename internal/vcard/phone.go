package vcard

import (
	"fmt"
	"strings"
)

// Digits strips every non-digit character from s. The result is the phone
// fingerprint used for duplicate comparison: two phone fields refer to the
// same number iff their digits are byte-equal.
func Digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatPhone maps a raw phone string to a canonical display form.
//
// US numbers (10 digits, or 11 starting with 1) -> +1 (XXX) XXX-XXXX
// International numbers -> + followed by digits grouped in runs of 4
// Anything else -> returned as-is (trimmed)
//
// Grouping for international numbers deliberately starts from digit index 0
// in runs of 4 rather than attempting country-code-aware formatting.
func FormatPhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	hasPlus := strings.HasPrefix(trimmed, "+")
	digits := Digits(raw)

	if digits == "" {
		return raw // nothing to work with
	}

	if len(digits) == 10 {
		return fmt.Sprintf("+1 (%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	}
	if len(digits) == 11 && digits[0] == '1' {
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	}

	if hasPlus || len(digits) > 11 {
		var b strings.Builder
		b.WriteByte('+')
		for i := 0; i < len(digits); i++ {
			if i > 0 && i%4 == 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(digits[i])
		}
		return b.String()
	}

	// Ambiguous short number: leave it alone.
	return trimmed
}
