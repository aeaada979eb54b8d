package routing

import (
	"strconv"
	"strings"
)

// parseLength parses a declared cable length string: an optional "m"
// suffix, comma-or-dot decimal separator, and an empty string meaning "no
// ceiling" (returns 0, false).
func parseLength(s string) (metres float64, hasCeiling bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "m"), "M")
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}

	return v, true
}
