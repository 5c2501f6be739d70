package model

import (
	"encoding/json"
	"math"
	"time"
)

// DateFormat is the wire format for travel dates.
const DateFormat = "2006-01-02"

// CoverageResult describes how well a single ticket product covers the
// traveller's upcoming trips, assuming the ticket activates on the first
// travel day.
type CoverageResult struct {
	StartDate    time.Time
	ValidUntil   time.Time // inclusive last valid day
	TripsCovered int
	CostPerTrip  float64 // math.Inf(1) when no trips are covered
	TotalCost    float64 // always the full product price, used or not
}

// Covered reports whether the product covers at least one trip.
func (r CoverageResult) Covered() bool {
	return r.TripsCovered > 0
}

// MarshalJSON renders dates as YYYY-MM-DD and the infinite-cost sentinel as
// null, since JSON has no representation for +Inf.
func (r CoverageResult) MarshalJSON() ([]byte, error) {
	type payload struct {
		StartDate    string   `json:"start_date"`
		ValidUntil   string   `json:"valid_until"`
		TripsCovered int      `json:"trips_covered"`
		CostPerTrip  *float64 `json:"cost_per_trip"`
		TotalCost    float64  `json:"total_cost"`
	}

	p := payload{
		StartDate:    r.StartDate.Format(DateFormat),
		ValidUntil:   r.ValidUntil.Format(DateFormat),
		TripsCovered: r.TripsCovered,
		TotalCost:    r.TotalCost,
	}
	if !math.IsInf(r.CostPerTrip, 1) {
		cost := r.CostPerTrip
		p.CostPerTrip = &cost
	}

	return json.Marshal(p)
}

// ProductCoverage pairs a product name with its coverage result.
// Report slices preserve catalogue declaration order.
type ProductCoverage struct {
	Name   string         `json:"name"`
	Result CoverageResult `json:"result"`
}

// WeekGroup buckets travel days by ISO week for display.
type WeekGroup struct {
	Year int      `json:"year"`
	Week int      `json:"week"`
	Days []string `json:"days"`
}

// RecommendationReport is the full outcome of one recommendation run:
// the upcoming travel days, the best ticket and the complete per-product
// comparison table. Best is nil when there are no upcoming travel days.
type RecommendationReport struct {
	TripCount  int               `json:"trip_count"`
	TravelDays []string          `json:"travel_days"`
	Weeks      []WeekGroup       `json:"weeks,omitempty"`
	Best       *ProductCoverage  `json:"best,omitempty"`
	Options    []ProductCoverage `json:"options"`
}
