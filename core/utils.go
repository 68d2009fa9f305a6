package core

import (
	"math"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

var NowFunc = time.Now // mockable

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// IsBlank reports whether s is null or only whitespace.
func IsBlank(s null.String) bool {
	return !s.Valid || strings.TrimSpace(s.String) == ""
}

// FirstString returns the first non-blank value, trimmed, or "" if there is none.
func FirstString(vals ...null.String) string {
	for _, v := range vals {
		if !IsBlank(v) {
			return strings.TrimSpace(v.String)
		}
	}
	return ""
}

// StringOr returns s trimmed, or def when s is blank.
func StringOr(s null.String, def string) string {
	if IsBlank(s) {
		return def
	}
	return strings.TrimSpace(s.String)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999", // LocalDateTime, no offset
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses the ISO-8601 shapes the backend emits.
// The returned time keeps the offset it was written with.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Percent rounds p to a whole percentage within [0, 100].
func Percent(p float64) int {
	if math.IsNaN(p) || p <= 0 {
		return 0
	}
	if p >= 100 {
		return 100
	}
	return int(math.Round(p))
}
