package schedule

import "time"

type LifecycleStatus string

const (
	StatusNowShowing LifecycleStatus = "now_showing"
	StatusComingSoon LifecycleStatus = "coming_soon"
)

// Classification is a movie's derived display state.
type Classification struct {
	Status           LifecycleStatus
	RuntimeDays      int
	IsAdvanceBooking bool
}

// Classify derives a movie's lifecycle state from its release metadata.
// A released movie is now_showing with a running-day count measured from
// its first show date when known, otherwise from its release date, and
// never below 1. An unreleased movie is coming_soon, flagged for advance
// booking when the movie allows it. A movie with no release date at all
// defaults to coming_soon with zero running days.
func Classify(movie MovieRelease, today time.Time) Classification {
	if movie.ReleaseDate == nil {
		return Classification{Status: StatusComingSoon}
	}

	day := truncateToDay(today)
	release := truncateToDay(*movie.ReleaseDate)

	if release.After(day) {
		return Classification{
			Status:           StatusComingSoon,
			IsAdvanceBooking: movie.AdvanceBookingEnabled,
		}
	}

	since := release
	if movie.FirstShowDate != nil {
		since = truncateToDay(*movie.FirstShowDate)
	}
	days := int(day.Sub(since).Hours() / 24)
	if days < 1 {
		days = 1
	}

	return Classification{
		Status:      StatusNowShowing,
		RuntimeDays: days,
	}
}
