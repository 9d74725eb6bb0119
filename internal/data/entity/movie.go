package entity

import (
	"time"

	"github.com/google/uuid"

	"show-scheduler/internal/schedule"
)

// Movie is read-only to the scheduling engine. Duration is free-form
// runtime text ("2h 30m", "150", "148 minutes") resolved on demand by
// schedule.ParseDuration.
type Movie struct {
	Base
	OwnerID               uuid.UUID  `db:"owner_id"`
	Title                 string     `db:"title"`
	Duration              string     `db:"duration"`
	PosterURL             *string    `db:"poster_url"`
	ReleaseDate           *time.Time `db:"release_date"`
	FirstShowDate         *time.Time `db:"first_show_date"`
	AdvanceBookingEnabled bool       `db:"advance_booking_enabled"`
}

// Release projects the fields the window policy and lifecycle classifier
// consume.
func (m *Movie) Release() schedule.MovieRelease {
	return schedule.MovieRelease{
		ReleaseDate:           m.ReleaseDate,
		FirstShowDate:         m.FirstShowDate,
		AdvanceBookingEnabled: m.AdvanceBookingEnabled,
	}
}
