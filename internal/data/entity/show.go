package entity

import (
	"time"

	"github.com/google/uuid"

	"show-scheduler/internal/schedule"
)

// ShowAssignment is one movie's set of showtimes on one screen for one
// booking date. Showtimes keeps the owner's original display tokens in
// order; minutes are always re-derived from them, never stored.
type ShowAssignment struct {
	Base
	ScreenID       uuid.UUID `db:"screen_id"`
	MovieID        uuid.UUID `db:"movie_id"`
	Showtimes      []string  `db:"showtimes"`
	BookingDate    time.Time `db:"booking_date"`
	MaxAdvanceDays int       `db:"max_advance_days"`

	// Joined from movies so a screen's shows carry enough to resolve
	// their runtimes without extra lookups.
	MovieTitle    string `db:"movie_title"`
	MovieDuration string `db:"movie_duration"`
}

// Existing projects the show into the shape the conflict detector tests
// planned intervals against.
func (s *ShowAssignment) Existing() schedule.ExistingShow {
	return schedule.ExistingShow{
		ID:        s.ID,
		Title:     s.MovieTitle,
		Duration:  s.MovieDuration,
		Showtimes: s.Showtimes,
	}
}
