package response

import (
	"time"

	"show-scheduler/internal/data/entity"
)

type ShowResponse struct {
	ID             string    `json:"id"`
	ScreenID       string    `json:"screen_id"`
	MovieID        string    `json:"movie_id"`
	MovieTitle     string    `json:"movie_title"`
	Showtimes      []string  `json:"showtimes"`
	BookingDate    string    `json:"booking_date"`
	MaxAdvanceDays int       `json:"max_advance_days"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

type ScreenResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalSeats int    `json:"total_seats"`
}

func ShowToResponse(show *entity.ShowAssignment) ShowResponse {
	return ShowResponse{
		ID:             show.ID.String(),
		ScreenID:       show.ScreenID.String(),
		MovieID:        show.MovieID.String(),
		MovieTitle:     show.MovieTitle,
		Showtimes:      show.Showtimes,
		BookingDate:    show.BookingDate.Format("2006-01-02"),
		MaxAdvanceDays: show.MaxAdvanceDays,
		CreatedAt:      show.CreatedAt,
	}
}

func ScreenToResponse(screen *entity.Screen) ScreenResponse {
	return ScreenResponse{
		ID:         screen.ID.String(),
		Name:       screen.Name,
		TotalSeats: screen.TotalSeats,
	}
}
