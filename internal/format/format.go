package format

import (
	"fmt"
	"strings"
)

// Placeholder is rendered wherever a value is absent from a record.
const Placeholder = "—"

// Year derives the 4-character year from an ISO date string.
// Example: Year("2013-09-17") => "2013"
func Year(released string) string {
	released = strings.TrimSpace(released)
	if len(released) < 4 {
		return Placeholder
	}
	year := released[:4]
	for _, c := range year {
		if c < '0' || c > '9' {
			return Placeholder
		}
	}
	return year
}

// Score formats a rating to one decimal place. Zero and absent scores are
// display-equivalent to "no rating" and never render as "0.0".
func Score(value float64, valid bool) string {
	if !valid || value <= 0 {
		return Placeholder
	}
	return fmt.Sprintf("%.1f", value)
}

// Count renders a non-negative integer with thousands separators.
// Example: Count(12345) => "12,345"
func Count(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}
