package request

// SaveShowsRequest carries one showtime plan for a screen. Showtimes is
// the owner's comma-separated list of display tokens, e.g.
// "10:00 AM, 1:00 PM, 16:30"; it is validated token by token by the
// engine, not by struct tags.
type SaveShowsRequest struct {
	ScreenID       string `json:"screen_id" validate:"required,uuid4"`
	MovieID        string `json:"movie_id" validate:"required,uuid4"`
	Showtimes      string `json:"showtimes" validate:"required"`
	BookingDate    string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	MaxAdvanceDays int    `json:"max_advance_days" validate:"min=0,max=14"`
}

// UpdateShowsRequest edits an existing show assignment. Screen and movie
// may both differ from the persisted record; the coordinator then moves
// the show with a delete-then-save.
type UpdateShowsRequest struct {
	ScreenID       string `json:"screen_id" validate:"required,uuid4"`
	MovieID        string `json:"movie_id" validate:"required,uuid4"`
	Showtimes      string `json:"showtimes" validate:"required"`
	BookingDate    string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	MaxAdvanceDays int    `json:"max_advance_days" validate:"min=0,max=14"`
}

type AdvanceBookingRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
