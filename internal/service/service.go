package service

import (
	"context"
	"time"

	"ticket-optimiser/internal/model"
)

// RecommendationService defines operations for producing ticket
// recommendations and browsing past runs.
type RecommendationService interface {
	// RecommendForDates recommends the cheapest ticket for explicit travel dates.
	RecommendForDates(ctx context.Context, dates []time.Time) (*model.RecommendationReport, error)

	// RecommendForCalendar fetches upcoming travel days from the calendar
	// source and recommends the cheapest ticket for them.
	RecommendForCalendar(ctx context.Context, calendarID string) (*model.RecommendationReport, error)

	// History retrieves recent recommendation runs, newest first.
	History(ctx context.Context, limit int) ([]model.RecommendationRun, error)
}
