package router

import (
	"net/http"

	"ticket-optimiser/internal/handler"
	"ticket-optimiser/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	ticketHandler *handler.TicketHandler,
	recommendationHandler *handler.RecommendationHandler,
	historyHandler *handler.HistoryHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Register ticket routes (both with and without trailing slash)
	mux.HandleFunc("/api/tickets", ticketHandler.GetAll)
	mux.HandleFunc("/api/tickets/", ticketHandler.GetAll)

	// Recommendation handler function
	recommendationRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// POST takes explicit dates in the body, GET reads them from a calendar
		if r.Method == http.MethodPost {
			recommendationHandler.Create(w, r)
			return
		}
		recommendationHandler.FromCalendar(w, r)
	}

	// Register recommendation routes (both with and without trailing slash)
	mux.HandleFunc("/api/recommendations", recommendationRouteHandler)
	mux.HandleFunc("/api/recommendations/", recommendationRouteHandler)

	// Register history routes (both with and without trailing slash)
	mux.HandleFunc("/api/history", historyHandler.List)
	mux.HandleFunc("/api/history/", historyHandler.List)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
