package repository

import (
	"go.uber.org/zap"

	"show-scheduler/pkg/database"
)

type Repository struct {
	Show   ShowRepository
	Movie  MovieRepository
	Screen ScreenRepository
	Owner  OwnerRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Show:   NewShowRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Screen: NewScreenRepository(db, log),
		Owner:  NewOwnerRepository(db, log),
	}
}
