package model

// TicketProduct represents one ticket option in the catalogue.
// The catalogue is fixed configuration; products are never mutated after load.
type TicketProduct struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ValidityDays int     `json:"validity_days"`
	// MaxTrips caps how many journeys the ticket covers. Zero means unlimited.
	MaxTrips int `json:"max_trips,omitempty"`
}

// Unlimited reports whether the product has no trip cap.
func (p TicketProduct) Unlimited() bool {
	return p.MaxTrips == 0
}
