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

type ScreenRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screen, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Screen, error)
}

type screenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreenRepository(db database.PgxIface, log *zap.Logger) ScreenRepository {
	return &screenRepository{
		db:  db,
		log: log.With(zap.String("repository", "screen")),
	}
}

func (r *screenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screen, error) {
	query := `
		SELECT id, owner_id, name, total_seats, created_at, updated_at
		FROM screens
		WHERE id = $1
	`

	var screen entity.Screen
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screen.ID,
		&screen.OwnerID,
		&screen.Name,
		&screen.TotalSeats,
		&screen.CreatedAt,
		&screen.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screen by ID",
			zap.Error(err),
			zap.String("screen_id", id.String()),
		)
		return nil, fmt.Errorf("find screen by ID %s: %w", id.String(), err)
	}

	return &screen, nil
}

func (r *screenRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Screen, error) {
	query := `
		SELECT id, owner_id, name, total_seats, created_at, updated_at
		FROM screens
		WHERE owner_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find screens by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find screens by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var screens []*entity.Screen
	for rows.Next() {
		var screen entity.Screen
		err := rows.Scan(
			&screen.ID,
			&screen.OwnerID,
			&screen.Name,
			&screen.TotalSeats,
			&screen.CreatedAt,
			&screen.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan screen row", zap.Error(err))
			return nil, fmt.Errorf("scan screen row: %w", err)
		}
		screens = append(screens, &screen)
	}

	return screens, rows.Err()
}
