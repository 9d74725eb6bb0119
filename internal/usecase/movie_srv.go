package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"show-scheduler/internal/data/repository"
	"show-scheduler/internal/dto/request"
	"show-scheduler/internal/dto/response"
	"show-scheduler/internal/schedule"
	"show-scheduler/pkg/utils"
)

type MovieService interface {
	GetOwnerMovies(ctx context.Context, ownerID uuid.UUID) ([]response.MovieStatusResponse, error)
	SetAdvanceBooking(ctx context.Context, movieID string, req *request.AdvanceBookingRequest) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
		now:  time.Now,
	}
}

// GetOwnerMovies lists an owner's catalog with each movie's lifecycle
// state derived at read time, never stored.
func (s *movieService) GetOwnerMovies(ctx context.Context, ownerID uuid.UUID) ([]response.MovieStatusResponse, error) {
	movies, err := s.repo.Movie.FindByOwnerID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to get owner movies",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("get owner movies: %w", err)
	}

	today := s.now()
	resp := make([]response.MovieStatusResponse, len(movies))
	for i, movie := range movies {
		resp[i] = response.MovieToStatusResponse(movie, schedule.Classify(movie.Release(), today))
	}

	s.log.Info("Owner movies retrieved",
		zap.String("owner_id", ownerID.String()),
		zap.Int("count", len(movies)),
	)
	return resp, nil
}

// SetAdvanceBooking toggles a movie's advance-booking flag. The flag is
// independent of any scheduled show; the window policy and the lifecycle
// classifier pick it up on their next read.
func (s *movieService) SetAdvanceBooking(ctx context.Context, movieID string, req *request.AdvanceBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie id: %w", err)
	}

	if err := s.repo.Movie.SetAdvanceBooking(ctx, id, *req.Enabled); err != nil {
		return fmt.Errorf("set advance booking: %w", err)
	}

	s.log.Info("Advance booking flag updated",
		zap.String("movie_id", movieID),
		zap.Bool("enabled", *req.Enabled),
	)
	return nil
}
