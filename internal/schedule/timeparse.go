package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InvalidMinutes marks a token that matched neither the 12-hour nor the
// 24-hour pattern. Callers must treat it as a format error, never skip it.
const InvalidMinutes = -1

// MinutesPerDay bounds a single day's plan. No show may end past it.
const MinutesPerDay = 24 * 60

var (
	twelveHourPattern     = regexp.MustCompile(`^(\d{1,2}):([0-5]\d)\s*([AaPp][Mm])$`)
	twentyFourHourPattern = regexp.MustCompile(`^(\d{1,2}):([0-5]\d)$`)
)

// ParseTimeToMinutes converts a time-of-day token to minutes since
// midnight. Accepted shapes are strict 12-hour "H:MM AM|PM" (hour 1-12)
// and strict 24-hour "H:MM"/"HH:MM" (hour 0-23). Any other shape returns
// InvalidMinutes.
func ParseTimeToMinutes(token string) int {
	s := strings.TrimSpace(token)

	if m := twelveHourPattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if hour < 1 || hour > 12 {
			return InvalidMinutes
		}
		if hour == 12 {
			hour = 0
		}
		if strings.EqualFold(m[3], "PM") {
			hour += 12
		}
		return hour*60 + min
	}

	if m := twentyFourHourPattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if hour > 23 {
			return InvalidMinutes
		}
		return hour*60 + min
	}

	return InvalidMinutes
}

// NormalizeTimeLabel converts any accepted token to its canonical 12-hour
// form, e.g. both "13:00" and "1:00 PM" become "1:00 PM". The canonical
// label is used only for duplicate-equality comparisons, never for
// arithmetic. Returns "" for tokens ParseTimeToMinutes rejects.
func NormalizeTimeLabel(token string) string {
	minutes := ParseTimeToMinutes(token)
	if minutes == InvalidMinutes {
		return ""
	}
	return minutesToLabel(minutes)
}

func minutesToLabel(minutes int) string {
	hour := minutes / 60
	min := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, min, meridiem)
}

// ParseAndValidateShowtimes splits a comma-separated showtime list into
// trimmed tokens, requiring every token to match the 12-hour or 24-hour
// pattern. The batch is all-or-nothing: the first invalid token fails the
// whole list with an error naming it.
func ParseAndValidateShowtimes(rawCsv string) ([]string, error) {
	if strings.TrimSpace(rawCsv) == "" {
		return nil, NewError(KindFormat, "no showtimes provided")
	}

	parts := strings.Split(rawCsv, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return nil, NewError(KindFormat, "empty showtime token in %q", rawCsv)
		}
		if ParseTimeToMinutes(token) == InvalidMinutes {
			return nil, NewError(KindFormat, "invalid showtime %q: use H:MM AM/PM or 24-hour H:MM", token)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
