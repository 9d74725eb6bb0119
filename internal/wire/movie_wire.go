package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"show-scheduler/internal/adaptor"
	"show-scheduler/internal/usecase"
	"show-scheduler/pkg/middleware"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	ownerService usecase.OwnerService,
	log *zap.Logger,
) {
	r.Route("/api/owner/movies", func(r chi.Router) {
		r.Use(middleware.OwnerContext(ownerService, log))

		r.Get("/", movieHandler.GetOwnerMovies)
		r.Put("/{movieId}/advance-booking", movieHandler.SetAdvanceBooking)
	})
}
