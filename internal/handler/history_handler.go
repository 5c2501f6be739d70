package handler

import (
	"net/http"
	"strconv"

	"ticket-optimiser/internal/service"

	"github.com/rs/zerolog"
)

// HistoryHandler handles recommendation history HTTP requests.
type HistoryHandler struct {
	service service.RecommendationService
	logger  zerolog.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(service service.RecommendationService, logger zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "history").Logger(),
	}
}

// List handles GET /api/history requests.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit := 10 // default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	runs, err := h.service.History(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve history", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, runs)
}
