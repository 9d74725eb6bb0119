package adaptor

import (
	"go.uber.org/zap"

	"show-scheduler/internal/usecase"
)

type Handler struct {
	Schedule *ScheduleHandler
	Movie    *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Schedule: NewScheduleHandler(service.Schedule, log),
		Movie:    NewMovieHandler(service.Movie, log),
	}
}
