package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"show-scheduler/internal/dto/request"
	"show-scheduler/internal/usecase"
	"show-scheduler/pkg/utils"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetOwnerMovies handles GET /api/owner/movies
func (h *MovieHandler) GetOwnerMovies(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Owner identity missing")
		return
	}

	movies, err := h.service.GetOwnerMovies(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err, "get owner movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// SetAdvanceBooking handles PUT /api/owner/movies/{movieId}/advance-booking
func (h *MovieHandler) SetAdvanceBooking(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var req request.AdvanceBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SetAdvanceBooking(r.Context(), movieID, &req); err != nil {
		h.handleServiceError(w, err, "set advance booking")
		return
	}

	utils.ResponseSuccess(w, "Advance booking flag updated", nil)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, action string) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		utils.ResponseNotFound(w, msg)
	case strings.Contains(msg, "invalid") || strings.Contains(msg, "validation failed"):
		utils.ResponseBadRequest(w, msg, nil)
	default:
		h.log.Error("Service error", zap.String("action", action), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
