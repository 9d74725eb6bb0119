package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"show-scheduler/internal/dto/request"
	"show-scheduler/internal/schedule"
	"show-scheduler/internal/usecase"
	"show-scheduler/pkg/utils"
)

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// GetOwnerScreens handles GET /api/owner/screens
func (h *ScheduleHandler) GetOwnerScreens(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Owner identity missing")
		return
	}

	screens, err := h.service.GetOwnerScreens(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err, "get owner screens")
		return
	}

	utils.ResponseSuccess(w, "Screens retrieved successfully", screens)
}

// GetScreenShows handles GET /api/owner/screens/{screenId}/shows
func (h *ScheduleHandler) GetScreenShows(w http.ResponseWriter, r *http.Request) {
	screenID := chi.URLParam(r, "screenId")
	if screenID == "" {
		utils.ResponseBadRequest(w, "Screen ID is required", nil)
		return
	}

	shows, err := h.service.GetScreenShows(r.Context(), screenID)
	if err != nil {
		h.handleServiceError(w, err, "get screen shows")
		return
	}

	utils.ResponseSuccess(w, "Shows retrieved successfully", shows)
}

// SaveScreenShows handles POST /api/owner/screens/{screenId}/shows
func (h *ScheduleHandler) SaveScreenShows(w http.ResponseWriter, r *http.Request) {
	var req request.SaveShowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.ScreenID = chi.URLParam(r, "screenId")

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	show, err := h.service.SaveScreenShows(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "save screen shows")
		return
	}

	utils.ResponseCreated(w, "Show plan saved successfully", show)
}

// UpdateScreenShows handles PUT /api/owner/screens/{screenId}/shows/{showId}
func (h *ScheduleHandler) UpdateScreenShows(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")
	if showID == "" {
		utils.ResponseBadRequest(w, "Show ID is required", nil)
		return
	}

	var req request.UpdateShowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if req.ScreenID == "" {
		req.ScreenID = chi.URLParam(r, "screenId")
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	show, err := h.service.UpdateScreenShows(r.Context(), showID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update screen shows")
		return
	}

	utils.ResponseSuccess(w, "Show plan updated successfully", show)
}

// DeleteScreenShow handles DELETE /api/owner/screens/{screenId}/shows/{showId}
func (h *ScheduleHandler) DeleteScreenShow(w http.ResponseWriter, r *http.Request) {
	screenID := chi.URLParam(r, "screenId")
	showID := chi.URLParam(r, "showId")
	if screenID == "" || showID == "" {
		utils.ResponseBadRequest(w, "Screen ID and show ID are required", nil)
		return
	}

	if err := h.service.DeleteScreenShow(r.Context(), screenID, showID); err != nil {
		h.handleServiceError(w, err, "delete screen show")
		return
	}

	utils.ResponseSuccess(w, "Show deleted successfully", nil)
}

// handleServiceError maps scheduling error kinds onto HTTP statuses:
// conflicts with other shows are 409, everything else the plan itself got
// wrong is 422, unknown ids are 404 and the rest is a 500.
func (h *ScheduleHandler) handleServiceError(w http.ResponseWriter, err error, action string) {
	kind := schedule.KindOf(err)
	switch kind {
	case schedule.KindCrossShowOverlap, schedule.KindExactDuplicate:
		utils.ResponseConflict(w, err.Error(), map[string]string{"kind": string(kind)})
		return
	case schedule.KindFormat, schedule.KindDayOverflow, schedule.KindInternalOverlap,
		schedule.KindDurationUnavailable, schedule.KindWindow:
		utils.ResponseUnprocessable(w, err.Error(), map[string]string{"kind": string(kind)})
		return
	case schedule.KindPartialMove:
		h.log.Error("Partial move", zap.String("action", action), zap.Error(err))
		utils.ResponseConflict(w, err.Error(), map[string]string{"kind": string(kind)})
		return
	}

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
