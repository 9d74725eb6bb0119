package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bareNumberPattern = regexp.MustCompile(`^\d+$`)
	hoursPattern      = regexp.MustCompile(`(\d+)\s*h(?:rs?|ours?)?`)
	minutesPattern    = regexp.MustCompile(`(\d+)\s*m(?:ins?|inutes?)?`)
	clockPattern      = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	anyNumberPattern  = regexp.MustCompile(`\d+`)
)

// ParseDuration resolves a movie's free-form runtime into whole minutes.
// Accepted shapes: bare integers (minutes), "150m"/"150 min"/"150 minutes",
// "2h"/"2hr"/"2 hours", combined "2h 30m", and clock-like "2:30" read as
// hours:minutes. Anything else falls back to the first embedded integer.
// ok is false when no number is recoverable at all; an unparseable runtime
// is a normal condition the caller handles, not an error.
func ParseDuration(raw string) (minutes int, ok bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	if bareNumberPattern.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		return h*60 + mm, true
	}

	total := 0
	found := false
	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
		found = true
		// Only look for a minutes part after the hours part, so the
		// "m" in "2h" style suffixes cannot be double-counted.
		s = s[strings.Index(s, m[0])+len(m[0]):]
	}
	if m := minutesPattern.FindStringSubmatch(s); m != nil {
		mm, _ := strconv.Atoi(m[1])
		total += mm
		found = true
	}
	if found {
		return total, true
	}

	// Last resort: treat the first embedded integer as minutes, so
	// values like "Runtime: 148" still resolve.
	if m := anyNumberPattern.FindString(s); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	return 0, false
}
