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

type OwnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TheatreOwner, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TheatreOwner, error)
}

type ownerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOwnerRepository(db database.PgxIface, log *zap.Logger) OwnerRepository {
	return &ownerRepository{
		db:  db,
		log: log.With(zap.String("repository", "owner")),
	}
}

func (r *ownerRepository) findOne(ctx context.Context, query string, arg any) (*entity.TheatreOwner, error) {
	var owner entity.TheatreOwner
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&owner.ID,
		&owner.UserID,
		&owner.Name,
		&owner.Email,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TheatreOwner, error) {
	query := `
		SELECT id, user_id, name, email, created_at, updated_at
		FROM theatre_owners
		WHERE id = $1
	`

	owner, err := r.findOne(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to find owner by ID",
			zap.Error(err),
			zap.String("owner_id", id.String()),
		)
		return nil, fmt.Errorf("find owner by ID %s: %w", id.String(), err)
	}
	return owner, nil
}

func (r *ownerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TheatreOwner, error) {
	query := `
		SELECT id, user_id, name, email, created_at, updated_at
		FROM theatre_owners
		WHERE user_id = $1
	`

	owner, err := r.findOne(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find owner by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find owner by user ID %s: %w", userID.String(), err)
	}
	return owner, nil
}
