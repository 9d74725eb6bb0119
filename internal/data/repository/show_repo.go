package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"show-scheduler/internal/data/entity"
	"show-scheduler/pkg/database"
)

type ShowRepository interface {
	FindByScreenID(ctx context.Context, screenID uuid.UUID) ([]*entity.ShowAssignment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowAssignment, error)
	Upsert(ctx context.Context, show *entity.ShowAssignment) error
	Delete(ctx context.Context, screenID, showID uuid.UUID) error
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

const showColumns = `
	s.id, s.screen_id, s.movie_id, s.showtimes, s.booking_date,
	s.max_advance_days, s.created_at, s.updated_at, m.title, m.duration
`

func scanShow(row pgx.Row) (*entity.ShowAssignment, error) {
	var show entity.ShowAssignment
	err := row.Scan(
		&show.ID,
		&show.ScreenID,
		&show.MovieID,
		&show.Showtimes,
		&show.BookingDate,
		&show.MaxAdvanceDays,
		&show.CreatedAt,
		&show.UpdatedAt,
		&show.MovieTitle,
		&show.MovieDuration,
	)
	if err != nil {
		return nil, err
	}
	return &show, nil
}

// FindByScreenID returns every show currently assigned to a screen, each
// joined with its movie's title and raw runtime so the conflict detector
// can resolve durations without extra lookups.
func (r *showRepository) FindByScreenID(ctx context.Context, screenID uuid.UUID) ([]*entity.ShowAssignment, error) {
	query := `
		SELECT ` + showColumns + `
		FROM show_assignments s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.screen_id = $1
		ORDER BY s.created_at
	`

	rows, err := r.db.Query(ctx, query, screenID)
	if err != nil {
		r.log.Error("Failed to find shows by screen",
			zap.Error(err),
			zap.String("screen_id", screenID.String()),
		)
		return nil, fmt.Errorf("find shows by screen %s: %w", screenID.String(), err)
	}
	defer rows.Close()

	var shows []*entity.ShowAssignment
	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, show)
	}

	return shows, rows.Err()
}

func (r *showRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowAssignment, error) {
	query := `
		SELECT ` + showColumns + `
		FROM show_assignments s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.id = $1
	`

	show, err := scanShow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find show by ID",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return nil, fmt.Errorf("find show by ID %s: %w", id.String(), err)
	}

	return show, nil
}

// Upsert creates or replaces a show assignment keyed by (screen, movie).
// The uniqueness constraint is also the last line of defence against two
// sessions scheduling the same slot concurrently.
func (r *showRepository) Upsert(ctx context.Context, show *entity.ShowAssignment) error {
	query := `
		INSERT INTO show_assignments
			(id, screen_id, movie_id, showtimes, booking_date, max_advance_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (screen_id, movie_id) DO UPDATE SET
			showtimes = EXCLUDED.showtimes,
			booking_date = EXCLUDED.booking_date,
			max_advance_days = EXCLUDED.max_advance_days,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		show.ID,
		show.ScreenID,
		show.MovieID,
		show.Showtimes,
		show.BookingDate,
		show.MaxAdvanceDays,
		show.CreatedAt,
		show.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert show",
			zap.Error(err),
			zap.String("screen_id", show.ScreenID.String()),
			zap.String("movie_id", show.MovieID.String()),
		)
		return fmt.Errorf("upsert show for screen %s movie %s: %w",
			show.ScreenID.String(), show.MovieID.String(), err)
	}

	return nil
}

func (r *showRepository) Delete(ctx context.Context, screenID, showID uuid.UUID) error {
	query := `DELETE FROM show_assignments WHERE id = $1 AND screen_id = $2`

	result, err := r.db.Exec(ctx, query, showID, screenID)
	if err != nil {
		r.log.Error("Failed to delete show",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return fmt.Errorf("delete show %s: %w", showID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("show %s not found on screen %s", showID.String(), screenID.String())
	}

	r.log.Info("Show deleted",
		zap.String("show_id", showID.String()),
		zap.String("screen_id", screenID.String()),
	)
	return nil
}
