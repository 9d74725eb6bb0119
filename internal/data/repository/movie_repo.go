package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"show-scheduler/internal/data/entity"
	"show-scheduler/pkg/database"
)

type MovieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Movie, error)
	SetAdvanceBooking(ctx context.Context, movieID uuid.UUID, enabled bool) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `
	id, owner_id, title, duration, poster_url, release_date,
	first_show_date, advance_booking_enabled, created_at, updated_at
`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.OwnerID,
		&movie.Title,
		&movie.Duration,
		&movie.PosterURL,
		&movie.ReleaseDate,
		&movie.FirstShowDate,
		&movie.AdvanceBookingEnabled,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return movie, nil
}

func (r *movieRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE owner_id = $1 ORDER BY title`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find movies by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find movies by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	return movies, rows.Err()
}

func (r *movieRepository) SetAdvanceBooking(ctx context.Context, movieID uuid.UUID, enabled bool) error {
	query := `UPDATE movies SET advance_booking_enabled = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, movieID, enabled, time.Now())
	if err != nil {
		r.log.Error("Failed to update advance booking flag",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.Bool("enabled", enabled),
		)
		return fmt.Errorf("set advance booking for movie %s: %w", movieID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", movieID.String())
	}

	return nil
}
