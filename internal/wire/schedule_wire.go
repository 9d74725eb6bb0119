package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"show-scheduler/internal/adaptor"
	"show-scheduler/internal/usecase"
	"show-scheduler/pkg/middleware"
)

func wireSchedule(
	r chi.Router,
	scheduleHandler *adaptor.ScheduleHandler,
	ownerService usecase.OwnerService,
	log *zap.Logger,
) {
	// Owner scheduling routes: every request is scoped to a resolved
	// theatre owner before it reaches a handler.
	r.Route("/api/owner/screens", func(r chi.Router) {
		r.Use(middleware.OwnerContext(ownerService, log))

		r.Get("/", scheduleHandler.GetOwnerScreens)
		r.Get("/{screenId}/shows", scheduleHandler.GetScreenShows)
		r.Post("/{screenId}/shows", scheduleHandler.SaveScreenShows)
		r.Put("/{screenId}/shows/{showId}", scheduleHandler.UpdateScreenShows)
		r.Delete("/{screenId}/shows/{showId}", scheduleHandler.DeleteScreenShow)
	})
}
