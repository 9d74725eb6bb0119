package schedule

import (
	"sort"

	"github.com/google/uuid"
)

// Interval is a half-open [Start,End) span in minutes since midnight,
// derived from one showtime token and a runtime. SourceShowID is uuid.Nil
// for intervals belonging to the plan still under construction.
type Interval struct {
	Start        int
	End          int
	Label        string
	SourceShowID uuid.UUID
}

// Overlaps reports whether two half-open intervals share any minute.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// BuildIntervals derives one interval per token, sorted ascending by start
// minute. Building never fails on its own: a malformed token produces an
// interval with Start == InvalidMinutes and is carried through so the
// conflict detector can report it precisely.
func BuildIntervals(tokens []string, durationMinutes int) []Interval {
	intervals := make([]Interval, 0, len(tokens))
	for _, token := range tokens {
		start := ParseTimeToMinutes(token)
		end := start + durationMinutes
		if start == InvalidMinutes {
			end = InvalidMinutes
		}
		intervals = append(intervals, Interval{
			Start: start,
			End:   end,
			Label: token,
		})
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})
	return intervals
}
