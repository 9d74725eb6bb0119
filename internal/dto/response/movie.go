package response

import (
	"show-scheduler/internal/data/entity"
	"show-scheduler/internal/schedule"
)

// MovieStatusResponse is an owner-catalog entry with its derived
// lifecycle state embedded, so the admin screens can render a "Now
// Showing — day N" or "Coming Soon / Advance Booking" badge directly.
type MovieStatusResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Duration         string  `json:"duration"`
	PosterURL        *string `json:"poster_url,omitempty"`
	ReleaseDate      *string `json:"release_date,omitempty"`
	Status           string  `json:"status"`
	RuntimeDays      int     `json:"runtime_days"`
	IsAdvanceBooking bool    `json:"is_advance_booking"`
}

func MovieToStatusResponse(movie *entity.Movie, class schedule.Classification) MovieStatusResponse {
	resp := MovieStatusResponse{
		ID:               movie.ID.String(),
		Title:            movie.Title,
		Duration:         movie.Duration,
		PosterURL:        movie.PosterURL,
		Status:           string(class.Status),
		RuntimeDays:      class.RuntimeDays,
		IsAdvanceBooking: class.IsAdvanceBooking,
	}
	if movie.ReleaseDate != nil {
		date := movie.ReleaseDate.Format("2006-01-02")
		resp.ReleaseDate = &date
	}
	return resp
}
