package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"show-scheduler/internal/data/entity"
	"show-scheduler/internal/data/repository"
	"show-scheduler/internal/dto/request"
	"show-scheduler/internal/schedule"
)

func TestGetOwnerMovies(t *testing.T) {
	ownerID := uuid.New()
	today := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	released := today.AddDate(0, 0, -4)
	upcoming := today.AddDate(0, 0, 7)

	movies := &fakeMovieRepo{movies: map[uuid.UUID]*entity.Movie{}}
	add := func(title string, release *time.Time, advance bool) {
		id := uuid.New()
		movies.movies[id] = &entity.Movie{
			Base:                  entity.Base{ID: id},
			OwnerID:               ownerID,
			Title:                 title,
			Duration:              "120",
			ReleaseDate:           release,
			AdvanceBookingEnabled: advance,
		}
	}
	add("Running", &released, false)
	add("Upcoming", &upcoming, true)
	add("Undated", nil, true)

	svc := NewMovieService(&repository.Repository{Movie: movies}, zap.NewNop()).(*movieService)
	svc.now = func() time.Time { return today }

	resp, err := svc.GetOwnerMovies(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("got %d movies, want 3", len(resp))
	}

	byTitle := map[string]struct {
		status      string
		runtimeDays int
		advance     bool
	}{}
	for _, m := range resp {
		byTitle[m.Title] = struct {
			status      string
			runtimeDays int
			advance     bool
		}{m.Status, m.RuntimeDays, m.IsAdvanceBooking}
	}

	if got := byTitle["Running"]; got.status != string(schedule.StatusNowShowing) || got.runtimeDays != 4 {
		t.Errorf("Running = %+v, want now_showing on day 4", got)
	}
	if got := byTitle["Upcoming"]; got.status != string(schedule.StatusComingSoon) || !got.advance {
		t.Errorf("Upcoming = %+v, want coming_soon with advance booking", got)
	}
	if got := byTitle["Undated"]; got.status != string(schedule.StatusComingSoon) || got.advance {
		t.Errorf("Undated = %+v, want coming_soon without advance booking", got)
	}
}

func TestSetAdvanceBooking(t *testing.T) {
	id := uuid.New()
	movies := &fakeMovieRepo{movies: map[uuid.UUID]*entity.Movie{
		id: {Base: entity.Base{ID: id}, Title: "Dune", Duration: "155"},
	}}
	svc := NewMovieService(&repository.Repository{Movie: movies}, zap.NewNop())

	enabled := true
	if err := svc.SetAdvanceBooking(context.Background(), id.String(), &request.AdvanceBookingRequest{Enabled: &enabled}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !movies.movies[id].AdvanceBookingEnabled {
		t.Error("flag was not persisted")
	}

	t.Run("unknown movie", func(t *testing.T) {
		if err := svc.SetAdvanceBooking(context.Background(), uuid.New().String(), &request.AdvanceBookingRequest{Enabled: &enabled}); err == nil {
			t.Fatal("expected error")
		}
	})
}
