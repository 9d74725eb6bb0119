package schedule

import (
	"github.com/google/uuid"
)

// ExistingShow is the slice of an already-scheduled show the detector
// needs: its identity, a display title, the raw runtime text of its movie
// and its raw showtime tokens.
type ExistingShow struct {
	ID        uuid.UUID
	Title     string
	Duration  string
	Showtimes []string
}

// DetectConflicts runs the three conflict checks in fixed order, each
// short-circuiting on the first violation: internal overlap, then overlap
// against every other show on the screen, then exact clock-time
// duplicates. excludeID removes the show currently being edited from the
// cross-show and duplicate checks; pass uuid.Nil when creating.
func DetectConflicts(tokens []string, durationMinutes int, existing []ExistingShow, excludeID uuid.UUID) error {
	planned := BuildIntervals(tokens, durationMinutes)

	if err := DetectInternalConflicts(planned, durationMinutes); err != nil {
		return err
	}
	if err := DetectCrossShowConflicts(planned, existing, excludeID); err != nil {
		return err
	}
	return DetectDuplicateShowtimes(tokens, existing, excludeID)
}

// DetectInternalConflicts validates a planned interval set on its own:
// every token must have parsed, no show may run past midnight, and no two
// showtimes of the plan may overlap each other.
func DetectInternalConflicts(planned []Interval, durationMinutes int) error {
	for _, iv := range planned {
		if iv.Start == InvalidMinutes {
			return NewError(KindFormat, "invalid showtime %q: use H:MM AM/PM or 24-hour H:MM", iv.Label)
		}
		if iv.End > MinutesPerDay {
			return NewError(KindDayOverflow,
				"showtime %q with a %d minute runtime runs past midnight", iv.Label, durationMinutes)
		}
	}

	// Sorted ascending, so only adjacent pairs can collide first.
	for i := 1; i < len(planned); i++ {
		prev, cur := planned[i-1], planned[i]
		if cur.Start < prev.End {
			return NewError(KindInternalOverlap,
				"showtimes %q and %q overlap within this plan", prev.Label, cur.Label)
		}
	}
	return nil
}

// DetectCrossShowConflicts tests every planned interval against the
// intervals of every other show on the screen. An existing show whose
// runtime cannot be resolved, or that has no showtimes, is skipped rather
// than treated as an error; only the plan being validated is held to the
// strict format rules.
func DetectCrossShowConflicts(planned []Interval, existing []ExistingShow, excludeID uuid.UUID) error {
	for _, show := range existing {
		if show.ID == excludeID {
			continue
		}
		minutes, ok := ParseDuration(show.Duration)
		if !ok || len(show.Showtimes) == 0 {
			continue
		}

		for _, token := range show.Showtimes {
			start := ParseTimeToMinutes(token)
			if start == InvalidMinutes {
				continue
			}
			occupied := Interval{
				Start:        start,
				End:          start + minutes,
				Label:        token,
				SourceShowID: show.ID,
			}
			for _, iv := range planned {
				if iv.Overlaps(occupied) {
					return NewError(KindCrossShowOverlap,
						"showtime %q overlaps %q (%s) already scheduled on this screen",
						iv.Label, occupied.Label, show.Title)
				}
			}
		}
	}
	return nil
}

// DetectDuplicateShowtimes rejects a planned token whose canonical label
// exactly equals the canonical label of any other show's showtime on the
// screen. The comparison is duration-independent and stricter than the
// overlap test: two shows may never claim the identical clock slot.
func DetectDuplicateShowtimes(tokens []string, existing []ExistingShow, excludeID uuid.UUID) error {
	taken := make(map[string]string) // canonical label -> show title
	for _, show := range existing {
		if show.ID == excludeID {
			continue
		}
		for _, token := range show.Showtimes {
			if canonical := NormalizeTimeLabel(token); canonical != "" {
				taken[canonical] = show.Title
			}
		}
	}

	for _, token := range tokens {
		canonical := NormalizeTimeLabel(token)
		if canonical == "" {
			continue
		}
		if title, dup := taken[canonical]; dup {
			return NewError(KindExactDuplicate,
				"showtime %s is already scheduled on this screen by %s", canonical, title)
		}
	}
	return nil
}
