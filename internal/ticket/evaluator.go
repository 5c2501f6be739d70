package ticket

import (
	"math"
	"time"

	"ticket-optimiser/internal/model"
)

// Evaluate computes how well a single product covers the given trips.
// sortedDates must be non-empty, ascending and deduplicated; Recommend
// guarantees this before calling.
//
// The ticket activates on the earliest travel day and is valid for the
// half-open window [start, start+ValidityDays). When a trip cap applies,
// the earliest trips inside the window are the ones counted; later trips
// beyond the cap are not covered.
func Evaluate(sortedDates []time.Time, p model.TicketProduct) model.CoverageResult {
	start := sortedDates[0]
	end := start.AddDate(0, 0, p.ValidityDays) // exclusive

	covered := 0
	for _, d := range sortedDates {
		if !d.Before(end) {
			break
		}
		covered++
	}
	if !p.Unlimited() && covered > p.MaxTrips {
		covered = p.MaxTrips
	}

	// Zero coverage is a normal outcome, not an error. The infinite sentinel
	// ranks such products last without ever dividing by zero.
	costPerTrip := math.Inf(1)
	if covered > 0 {
		costPerTrip = roundToCents(p.Price / float64(covered))
	}

	return model.CoverageResult{
		StartDate:    start,
		ValidUntil:   end.AddDate(0, 0, -1),
		TripsCovered: covered,
		CostPerTrip:  costPerTrip,
		TotalCost:    p.Price,
	}
}

// roundToCents rounds to 2 decimal places. Cost per trip is rounded at
// construction time, so the ranking and the displayed value agree.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
