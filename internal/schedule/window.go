package schedule

import "time"

// MovieRelease is the slice of movie metadata the window policy and the
// lifecycle classifier consume. Date pointers are nil when unset.
type MovieRelease struct {
	ReleaseDate           *time.Time
	FirstShowDate         *time.Time
	AdvanceBookingEnabled bool
}

// ClampAdvanceDays bounds an owner-supplied advance window to [0, cap].
func ClampAdvanceDays(days, cap int) int {
	if days < 0 {
		return 0
	}
	if days > cap {
		return cap
	}
	return days
}

// ValidateBookingDate checks a requested booking date against the
// inclusive window [today, today+maxAdvanceDays]. A date outside the
// window still passes when the movie has advance booking enabled and the
// date precedes its release date (pre-release advance sale); otherwise a
// window error is returned. Comparisons are calendar-day granular.
func ValidateBookingDate(date time.Time, maxAdvanceDays int, movie MovieRelease, today time.Time) error {
	day := truncateToDay(date)
	start := truncateToDay(today)
	end := start.AddDate(0, 0, maxAdvanceDays)

	if !day.Before(start) && !day.After(end) {
		return nil
	}

	if movie.AdvanceBookingEnabled && movie.ReleaseDate != nil &&
		day.Before(truncateToDay(*movie.ReleaseDate)) {
		return nil
	}

	return NewError(KindWindow,
		"booking date %s is outside the allowed window %s to %s",
		day.Format("2006-01-02"), start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
