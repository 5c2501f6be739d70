package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticket-optimiser/internal/calendar"
	"ticket-optimiser/internal/handler"
	"ticket-optimiser/internal/model"
	"ticket-optimiser/internal/repository"
	"ticket-optimiser/internal/router"
	"ticket-optimiser/internal/service"
	"ticket-optimiser/internal/ticket"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCalendarServer serves a fixed events payload in the calendar API shape.
func fakeCalendarServer(t *testing.T, searchText string, dates []string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		type start struct {
			Date string `json:"date,omitempty"`
		}
		type event struct {
			Summary string `json:"summary"`
			Start   start  `json:"start"`
		}

		items := make([]event, 0, len(dates)+1)
		for _, d := range dates {
			items = append(items, event{Summary: searchText, Start: start{Date: d}})
		}
		// An unrelated event that must be ignored.
		items = append(items, event{Summary: "Dentist", Start: start{Date: "2025-03-12"}})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"items": items})
	}))

	t.Cleanup(server.Close)
	return server
}

func setupTestServer(t *testing.T, testDB *TestDB, calendarURL string) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	// Initialize repositories
	historyRepo := repository.NewHistoryRepository(testDB.Pool, logger)

	// Initialize calendar source against the fake server
	client := calendar.NewClient(calendar.ClientConfig{
		BaseURL:    calendarURL,
		SearchText: "Office day in London",
		Timeout:    5 * time.Second,
	}, logger)
	source := calendar.NewMemoizingSource(client, 0)

	// Initialize services
	catalog := ticket.DefaultCatalog()
	recommendationService := service.NewRecommendationService(catalog, source, historyRepo, 60, logger)

	// Initialize handlers
	ticketHandler := handler.NewTicketHandler(catalog, logger)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, logger)
	historyHandler := handler.NewHistoryHandler(recommendationService, logger)

	// Create router
	return router.New(ticketHandler, recommendationHandler, historyHandler, "test-api-key", logger)
}

func TestRecommendationAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	calendarServer := fakeCalendarServer(t, "Office day in London",
		[]string{"2025-03-10", "2025-03-11", "2025-03-17", "2025-03-24"})
	server := setupTestServer(t, testDB, calendarServer.URL)

	t.Run("POST /api/recommendations returns cheapest ticket", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		body, err := json.Marshal(map[string][]string{
			"travel_dates": {"2025-03-10", "2025-03-11", "2025-03-17", "2025-03-24"},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "test-api-key")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var report map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&report))

		assert.Equal(t, float64(4), report["trip_count"])

		best := report["best"].(map[string]interface{})
		assert.Equal(t, "Standard Return", best["name"])

		result := best["result"].(map[string]interface{})
		assert.Equal(t, 49.50, result["cost_per_trip"])
		assert.Equal(t, 49.50, result["total_cost"])

		options := report["options"].([]interface{})
		assert.Len(t, options, 4)
	})

	t.Run("POST /api/recommendations records a history run", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		body := []byte(`{"travel_dates": ["2025-03-10", "2025-03-11"]}`)

		req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "test-api-key")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/history", nil)
		req.Header.Set("X-API-Key", "test-api-key")
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var runs []model.RecommendationRun
		require.NoError(t, json.NewDecoder(w.Body).Decode(&runs))
		require.Len(t, runs, 1)
		assert.Equal(t, 2, runs[0].TripCount)
		require.NotNil(t, runs[0].BestProduct)
	})

	t.Run("POST /api/recommendations with malformed date returns 400", func(t *testing.T) {
		body := []byte(`{"travel_dates": ["10/03/2025"]}`)

		req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "test-api-key")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET /api/recommendations reads travel days from the calendar", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/recommendations?calendar_id=primary", nil)
		req.Header.Set("X-API-Key", "test-api-key")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var report map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&report))

		// The unrelated "Dentist" event must not count as a travel day.
		assert.Equal(t, float64(4), report["trip_count"])

		best := report["best"].(map[string]interface{})
		assert.Equal(t, "Standard Return", best["name"])
	})

	t.Run("GET /api/recommendations without calendar_id returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
		req.Header.Set("X-API-Key", "test-api-key")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST /api/recommendations without API key returns 401", func(t *testing.T) {
		body := []byte(`{"travel_dates": ["2025-03-10"]}`)

		req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTicketAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	calendarServer := fakeCalendarServer(t, "Office day in London", nil)
	server := setupTestServer(t, testDB, calendarServer.URL)

	t.Run("GET /api/tickets returns the catalogue", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
		req.Header.Set("X-API-Key", "test-api-key")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.TicketProduct
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		assert.Len(t, products, 4)
		assert.Equal(t, "Standard Return", products[0].Name)
	})

	t.Run("GET /api/tickets without API key returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /health returns 200 without API key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORS_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	calendarServer := fakeCalendarServer(t, "Office day in London", nil)
	server := setupTestServer(t, testDB, calendarServer.URL)

	t.Run("OPTIONS request returns CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/tickets", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	})
}
