package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"show-scheduler/internal/adaptor"
	"show-scheduler/internal/data/repository"
	"show-scheduler/internal/usecase"
	"show-scheduler/pkg/cache"
	"show-scheduler/pkg/middleware"
	"show-scheduler/pkg/utils"
)

// App holds the assembled application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services and handlers and mounts every route.
func Wiring(repo *repository.Repository, ownerCache *cache.OwnerCache, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, ownerCache, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, service *usecase.Service, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireSchedule(r, handler.Schedule, service.Owner, logger)
	wireMovie(r, handler.Movie, service.Owner, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
