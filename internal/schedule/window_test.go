package schedule

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func datePtr(t time.Time) *time.Time { return &t }

func TestValidateBookingDate(t *testing.T) {
	today := day(0)

	tests := []struct {
		name    string
		date    time.Time
		maxDays int
		movie   MovieRelease
		wantErr bool
	}{
		{"today is always inside", day(0), 3, MovieRelease{}, false},
		{"last day of window", day(3), 3, MovieRelease{}, false},
		{"zero-day window only allows today", day(1), 0, MovieRelease{}, true},
		{"beyond window", day(5), 3, MovieRelease{}, true},
		{"before today", day(-1), 3, MovieRelease{}, true},
		{
			"beyond window but pre-release advance sale",
			day(5), 3,
			MovieRelease{AdvanceBookingEnabled: true, ReleaseDate: datePtr(day(6))},
			false,
		},
		{
			"beyond window, advance enabled but already released",
			day(5), 3,
			MovieRelease{AdvanceBookingEnabled: true, ReleaseDate: datePtr(day(4))},
			true,
		},
		{
			"beyond window, pre-release but advance disabled",
			day(5), 3,
			MovieRelease{AdvanceBookingEnabled: false, ReleaseDate: datePtr(day(6))},
			true,
		},
		{
			"advance enabled without release date has no exception",
			day(5), 3,
			MovieRelease{AdvanceBookingEnabled: true},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingDate(tt.date, tt.maxDays, tt.movie, today)
			if tt.wantErr {
				if KindOf(err) != KindWindow {
					t.Fatalf("kind = %q (%v), want %q", KindOf(err), err, KindWindow)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// The window comparison is calendar-day granular: a timestamp later the
// same day still counts as today.
func TestValidateBookingDateIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	date := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	if err := ValidateBookingDate(date, 0, MovieRelease{}, today); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClampAdvanceDays(t *testing.T) {
	tests := []struct {
		days, cap, want int
	}{
		{5, 14, 5},
		{20, 14, 14},
		{-3, 14, 0},
		{0, 14, 0},
		{3, 3, 3},
	}
	for _, tt := range tests {
		if got := ClampAdvanceDays(tt.days, tt.cap); got != tt.want {
			t.Errorf("ClampAdvanceDays(%d, %d) = %d, want %d", tt.days, tt.cap, got, tt.want)
		}
	}
}
