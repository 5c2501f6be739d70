package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ticket-optimiser/internal/model"

	"github.com/rs/zerolog"
)

// ClientConfig holds configuration for the calendar API client.
type ClientConfig struct {
	// BaseURL is the calendar API root, e.g. "https://www.googleapis.com/calendar/v3".
	BaseURL string

	// Token is the bearer token sent with every request. Obtaining and
	// refreshing it is the deployment's problem, not this client's.
	Token string

	// SearchText identifies travel-day events: an all-day event whose
	// summary equals this text (case-insensitive) counts as one travel day.
	SearchText string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// Client fetches travel days from a calendar events API.
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new calendar API client.
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With().Str("component", "calendar-client").Logger(),
	}
}

// eventsResponse mirrors the events list payload of the calendar API.
type eventsResponse struct {
	Items []event `json:"items"`
}

type event struct {
	Summary string     `json:"summary"`
	Start   eventStart `json:"start"`
}

// eventStart carries either Date (all-day events) or DateTime (timed events).
type eventStart struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
}

// TravelDays lists the travel days in the window for the given calendar.
// Only all-day events whose summary matches the configured search text are
// counted; timed events are ignored. The result may contain duplicates when
// the calendar holds overlapping events.
func (c *Client) TravelDays(ctx context.Context, calendarID string, window Window) ([]time.Time, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(calendarID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar request: %w", err)
	}

	query := req.URL.Query()
	query.Set("timeMin", window.From.UTC().Format(time.RFC3339))
	query.Set("timeMax", window.To.UTC().Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")
	req.URL.RawQuery = query.Encode()

	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("calendar_id", calendarID).
			Msg("calendar request failed")
		return nil, fmt.Errorf("calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("calendar_id", calendarID).
			Msg("calendar API returned non-OK status")
		return nil, fmt.Errorf("calendar API returned status %d", resp.StatusCode)
	}

	var events eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode calendar response: %w", err)
	}

	days := make([]time.Time, 0, len(events.Items))
	for _, ev := range events.Items {
		if !strings.EqualFold(ev.Summary, c.cfg.SearchText) {
			continue
		}
		// Timed events are meetings, not travel days.
		if ev.Start.Date == "" {
			continue
		}

		day, err := time.ParseInLocation(model.DateFormat, ev.Start.Date, time.UTC)
		if err != nil {
			c.logger.Warn().
				Str("calendar_id", calendarID).
				Str("date", ev.Start.Date).
				Msg("skipping event with malformed start date")
			continue
		}
		days = append(days, day)
	}

	c.logger.Debug().
		Str("calendar_id", calendarID).
		Int("events", len(events.Items)).
		Int("travel_days", len(days)).
		Msg("fetched travel days")

	return days, nil
}
