package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ticket-optimiser/internal/model"
	"ticket-optimiser/internal/service"
	"ticket-optimiser/internal/ticket"

	"github.com/rs/zerolog"
)

// RecommendationHandler handles recommendation HTTP requests.
type RecommendationHandler struct {
	service service.RecommendationService
	logger  zerolog.Logger
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(service service.RecommendationService, logger zerolog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger.With().Str("handler", "recommendation").Logger(),
	}
}

// recommendRequest is the POST /api/recommendations request body.
type recommendRequest struct {
	TravelDates []string `json:"travel_dates"`
}

// Create handles POST /api/recommendations requests with an explicit list
// of travel dates. An empty list is valid and yields a report with no
// best entry.
func (h *RecommendationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	dates := make([]time.Time, 0, len(req.TravelDates))
	for _, s := range req.TravelDates {
		d, err := ticket.ParseDate(s)
		if err != nil {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid travel date %q: must be YYYY-MM-DD", s), h.logger)
			return
		}
		dates = append(dates, d)
	}

	report, err := h.service.RecommendForDates(r.Context(), dates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to produce recommendation", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// FromCalendar handles GET /api/recommendations?calendar_id=... requests,
// sourcing travel days from the configured calendar.
func (h *RecommendationHandler) FromCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	calendarID := r.URL.Query().Get("calendar_id")

	report, err := h.service.RecommendForCalendar(r.Context(), calendarID)
	if err != nil {
		status := http.StatusInternalServerError
		message := "failed to produce recommendation"

		switch err {
		case model.ErrMissingCalendarID:
			status = http.StatusBadRequest
			message = "calendar_id query parameter is required"
		case model.ErrCalendarUnavailable:
			status = http.StatusBadGateway
			message = "calendar source is unavailable"
		}

		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
