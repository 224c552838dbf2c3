package model

import (
	"math"
	"strings"
)

// ParseID coerces raw to a ticket id the way the web views did: leading
// whitespace and an optional sign, then the leading run of decimal digits.
// Trailing garbage is ignored ("12abc" is 12); no digits means no id.
func ParseID(raw string) (int64, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		d := int64(s[digits] - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, false
		}
		n = n*10 + d
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
