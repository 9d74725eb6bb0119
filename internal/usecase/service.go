package usecase

import (
	"go.uber.org/zap"

	"show-scheduler/internal/data/repository"
	"show-scheduler/pkg/cache"
	"show-scheduler/pkg/utils"
)

type Service struct {
	Schedule ScheduleService
	Movie    MovieService
	Owner    OwnerService
}

func NewService(repo *repository.Repository, ownerCache *cache.OwnerCache, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Schedule: NewScheduleService(repo, config, log),
		Movie:    NewMovieService(repo, log),
		Owner:    NewOwnerService(repo.Owner, ownerCache, log),
	}
}
