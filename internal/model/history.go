package model

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationRun is one persisted recommendation request.
// BestProduct and BestCostPerTrip are nil for runs with no upcoming trips.
type RecommendationRun struct {
	ID              uuid.UUID `json:"id" db:"id"`
	CalendarID      string    `json:"calendar_id,omitempty" db:"calendar_id"`
	TripCount       int       `json:"trip_count" db:"trip_count"`
	BestProduct     *string   `json:"best_product,omitempty" db:"best_product"`
	BestCostPerTrip *float64  `json:"best_cost_per_trip,omitempty" db:"best_cost_per_trip"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
