package course

import (
	"strconv"
	"time"

	"github.com/masomo-lms/portal/core"
)

// DetermineCurrentTerm returns the term of core.NowFunc(), e.g. "Spring-2025".
func DetermineCurrentTerm() string {
	return TermAt(core.NowFunc())
}

func TermAt(t time.Time) string {
	return core.Season(t.Month()) + "-" + strconv.Itoa(t.Year())
}
