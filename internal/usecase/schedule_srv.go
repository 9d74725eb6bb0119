package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"show-scheduler/internal/data/entity"
	"show-scheduler/internal/data/repository"
	"show-scheduler/internal/dto/request"
	"show-scheduler/internal/dto/response"
	"show-scheduler/internal/schedule"
	"show-scheduler/pkg/utils"
)

// ScheduleService coordinates the validate-then-save workflows: every
// plan runs through duration resolution, showtime parsing, conflict
// detection against a freshly fetched screen and the booking-window
// policy before any persistence call is made.
type ScheduleService interface {
	GetOwnerScreens(ctx context.Context, ownerID uuid.UUID) ([]response.ScreenResponse, error)
	GetScreenShows(ctx context.Context, screenID string) ([]response.ShowResponse, error)
	SaveScreenShows(ctx context.Context, req *request.SaveShowsRequest) (*response.ShowResponse, error)
	UpdateScreenShows(ctx context.Context, showID string, req *request.UpdateShowsRequest) (*response.ShowResponse, error)
	DeleteScreenShow(ctx context.Context, screenID, showID string) error
}

type scheduleService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewScheduleService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) ScheduleService {
	return &scheduleService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "schedule")),
		now:    time.Now,
	}
}

func (s *scheduleService) GetOwnerScreens(ctx context.Context, ownerID uuid.UUID) ([]response.ScreenResponse, error) {
	screens, err := s.repo.Screen.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get owner screens: %w", err)
	}

	resp := make([]response.ScreenResponse, len(screens))
	for i, screen := range screens {
		resp[i] = response.ScreenToResponse(screen)
	}
	return resp, nil
}

func (s *scheduleService) GetScreenShows(ctx context.Context, screenID string) ([]response.ShowResponse, error) {
	id, err := uuid.Parse(screenID)
	if err != nil {
		return nil, fmt.Errorf("invalid screen id: %w", err)
	}

	shows, err := s.repo.Show.FindByScreenID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get screen shows: %w", err)
	}

	resp := make([]response.ShowResponse, len(shows))
	for i, show := range shows {
		resp[i] = response.ShowToResponse(show)
	}
	return resp, nil
}

// plan is an immutable snapshot of one validated showtime plan. It is
// produced by validatePlan and consumed whole by the save path; nothing
// mutates it after validation.
type plan struct {
	screenID       uuid.UUID
	movieID        uuid.UUID
	tokens         []string
	bookingDate    time.Time
	maxAdvanceDays int
	movieTitle     string
	movieDuration  string
}

// validatePlan runs the full validation pipeline for one plan:
// resolve the movie's runtime, parse the showtime batch, re-fetch the
// target screen's shows and detect conflicts, then check the booking
// window. It is fail-fast and returns the first violation only.
// excludeID removes the show being edited from the cross-show and
// duplicate checks; uuid.Nil means a create.
func (s *scheduleService) validatePlan(
	ctx context.Context,
	screenID, movieID uuid.UUID,
	showtimesCsv, bookingDate string,
	maxAdvanceDays int,
	excludeID uuid.UUID,
) (*plan, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID.String())
	}

	screen, err := s.repo.Screen.FindByID(ctx, screenID)
	if err != nil {
		return nil, fmt.Errorf("find screen: %w", err)
	}
	if screen == nil {
		return nil, fmt.Errorf("screen %s not found", screenID.String())
	}

	minutes, ok := schedule.ParseDuration(movie.Duration)
	if !ok {
		return nil, schedule.NewError(schedule.KindDurationUnavailable,
			"duration unavailable for movie %q", movie.Title)
	}

	tokens, err := schedule.ParseAndValidateShowtimes(showtimesCsv)
	if err != nil {
		return nil, err
	}

	// Always re-fetch the target screen's shows right before detection.
	// A cached list would widen the race window against concurrent edits
	// from other sessions; a fresh fetch narrows it, though only a
	// uniqueness constraint at the store can close it.
	existing, err := s.repo.Show.FindByScreenID(ctx, screenID)
	if err != nil {
		return nil, fmt.Errorf("fetch existing shows: %w", err)
	}
	occupied := make([]schedule.ExistingShow, len(existing))
	for i, show := range existing {
		occupied[i] = show.Existing()
	}

	if err := schedule.DetectConflicts(tokens, minutes, occupied, excludeID); err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(bookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date: %w", err)
	}
	days := schedule.ClampAdvanceDays(maxAdvanceDays, s.config.Schedule.MaxAdvanceDaysCap)
	if err := schedule.ValidateBookingDate(date, days, movie.Release(), s.now()); err != nil {
		return nil, err
	}

	return &plan{
		screenID:       screenID,
		movieID:        movieID,
		tokens:         tokens,
		bookingDate:    date,
		maxAdvanceDays: days,
		movieTitle:     movie.Title,
		movieDuration:  movie.Duration,
	}, nil
}

// SaveScreenShows is the create workflow: validate the whole plan, then
// persist. On any validation failure the save is never attempted.
func (s *scheduleService) SaveScreenShows(ctx context.Context, req *request.SaveShowsRequest) (*response.ShowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	screenID, err := uuid.Parse(req.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("invalid screen id: %w", err)
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	p, err := s.validatePlan(ctx, screenID, movieID, req.Showtimes, req.BookingDate, req.MaxAdvanceDays, uuid.Nil)
	if err != nil {
		s.log.Warn("Plan rejected",
			zap.String("screen_id", req.ScreenID),
			zap.String("movie_id", req.MovieID),
			zap.String("kind", string(schedule.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}

	show := s.showFromPlan(p, uuid.New())
	if err := s.repo.Show.Upsert(ctx, show); err != nil {
		return nil, fmt.Errorf("save screen shows: %w", err)
	}

	s.log.Info("Show plan saved",
		zap.String("show_id", show.ID.String()),
		zap.String("screen_id", req.ScreenID),
		zap.String("movie_id", req.MovieID),
		zap.Int("showtimes", len(p.tokens)),
	)

	resp := response.ShowToResponse(show)
	return &resp, nil
}

// UpdateScreenShows is the edit workflow. The show's own id is excluded
// from conflict checking, and when the plan moves the show to a
// different movie or screen the old record is deleted before the new one
// is saved so the (screen, movie) key cannot clash. The two steps are
// not atomic: a failed save after a successful delete surfaces as a
// partial-move error instead of being rolled back.
func (s *scheduleService) UpdateScreenShows(ctx context.Context, showID string, req *request.UpdateShowsRequest) (*response.ShowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, fmt.Errorf("invalid show id: %w", err)
	}
	screenID, err := uuid.Parse(req.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("invalid screen id: %w", err)
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	current, err := s.repo.Show.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find show: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("show %s not found", showID)
	}

	// validatePlan fetches the target screen, so a changed screen
	// selection is conflict-checked against its new neighbours.
	p, err := s.validatePlan(ctx, screenID, movieID, req.Showtimes, req.BookingDate, req.MaxAdvanceDays, current.ID)
	if err != nil {
		s.log.Warn("Plan update rejected",
			zap.String("show_id", showID),
			zap.String("kind", string(schedule.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}

	show := s.showFromPlan(p, current.ID)
	show.CreatedAt = current.CreatedAt

	moved := current.ScreenID != screenID || current.MovieID != movieID
	if moved {
		if err := s.repo.Show.Delete(ctx, current.ScreenID, current.ID); err != nil {
			return nil, fmt.Errorf("delete old show record: %w", err)
		}
		if err := s.repo.Show.Upsert(ctx, show); err != nil {
			s.log.Error("Old record deleted but replacement save failed",
				zap.String("show_id", showID),
				zap.Error(err),
			)
			return nil, schedule.NewError(schedule.KindPartialMove,
				"show %s was removed from its old slot but saving the new slot failed: %v", showID, err)
		}
	} else {
		if err := s.repo.Show.Upsert(ctx, show); err != nil {
			return nil, fmt.Errorf("update screen shows: %w", err)
		}
	}

	s.log.Info("Show plan updated",
		zap.String("show_id", showID),
		zap.Bool("moved", moved),
	)

	resp := response.ShowToResponse(show)
	return &resp, nil
}

func (s *scheduleService) DeleteScreenShow(ctx context.Context, screenID, showID string) error {
	sid, err := uuid.Parse(screenID)
	if err != nil {
		return fmt.Errorf("invalid screen id: %w", err)
	}
	shid, err := uuid.Parse(showID)
	if err != nil {
		return fmt.Errorf("invalid show id: %w", err)
	}

	if err := s.repo.Show.Delete(ctx, sid, shid); err != nil {
		return fmt.Errorf("delete screen show: %w", err)
	}
	return nil
}

func (s *scheduleService) showFromPlan(p *plan, id uuid.UUID) *entity.ShowAssignment {
	now := s.now()
	return &entity.ShowAssignment{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		ScreenID:       p.screenID,
		MovieID:        p.movieID,
		Showtimes:      p.tokens,
		BookingDate:    p.bookingDate,
		MaxAdvanceDays: p.maxAdvanceDays,
		MovieTitle:     p.movieTitle,
		MovieDuration:  p.movieDuration,
	}
}
