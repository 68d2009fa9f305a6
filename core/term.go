package core

import "time"

// Academic seasons
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
)

// Season maps a calendar month to its academic season:
// January–May is Spring, June–August is Summer, September–December is Fall.
func Season(m time.Month) string {
	switch {
	case m <= time.May:
		return SeasonSpring
	case m <= time.August:
		return SeasonSummer
	default:
		return SeasonFall
	}
}
