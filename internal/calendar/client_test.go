package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticket-optimiser/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() Window {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return NewWindow(from, 60)
}

func TestClient_TravelDays(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"summary": "Office day in London", "start": {"date": "2025-03-10"}},
				{"summary": "office day in london", "start": {"date": "2025-03-11"}},
				{"summary": "Dentist", "start": {"date": "2025-03-12"}},
				{"summary": "Office day in London", "start": {"dateTime": "2025-03-13T09:00:00Z"}},
				{"summary": "Office day in London", "start": {"date": "not-a-date"}},
				{"summary": "Office day in London", "start": {"date": "2025-03-17"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Token:      "test-token",
		SearchText: "Office day in London",
	}, zerolog.Nop())

	days, err := client.TravelDays(context.Background(), "primary", testWindow())

	require.NoError(t, err)

	// Case-insensitive summary match, all-day events only, malformed dates skipped.
	require.Len(t, days, 3)
	assert.Equal(t, "2025-03-10", days[0].Format(model.DateFormat))
	assert.Equal(t, "2025-03-11", days[1].Format(model.DateFormat))
	assert.Equal(t, "2025-03-17", days[2].Format(model.DateFormat))

	assert.Equal(t, "/calendars/primary/events", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "true", gotQuery["singleEvents"][0])
	assert.Equal(t, "startTime", gotQuery["orderBy"][0])
	assert.Equal(t, "2025-03-01T00:00:00Z", gotQuery["timeMin"][0])
	assert.Equal(t, "2025-04-30T00:00:00Z", gotQuery["timeMax"][0])
}

func TestClient_TravelDays_NoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		SearchText: "Office day in London",
	}, zerolog.Nop())

	days, err := client.TravelDays(context.Background(), "primary", testWindow())

	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestClient_TravelDays_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		SearchText: "Office day in London",
	}, zerolog.Nop())

	_, err := client.TravelDays(context.Background(), "primary", testWindow())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestClient_TravelDays_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		SearchText: "Office day in London",
	}, zerolog.Nop())

	_, err := client.TravelDays(context.Background(), "primary", testWindow())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode calendar response")
}

func TestClient_TravelDays_EscapesCalendarID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		SearchText: "Office day in London",
	}, zerolog.Nop())

	_, err := client.TravelDays(context.Background(), "user@example.com", testWindow())

	require.NoError(t, err)
	assert.Equal(t, "/calendars/user@example.com/events", gotPath)
}
