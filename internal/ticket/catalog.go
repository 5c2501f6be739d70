package ticket

import (
	"fmt"

	"ticket-optimiser/internal/model"
)

// Catalog is the ordered, immutable list of ticket products.
// Declaration order is semantically significant: when two products tie on
// cost per trip, the one declared first wins the recommendation.
type Catalog struct {
	products []model.TicketProduct
}

// NewCatalog validates the product list and returns a Catalog.
// Validation happens once here, never during evaluation, so a product that
// passes is safe for window arithmetic and cost division.
func NewCatalog(products []model.TicketProduct) (Catalog, error) {
	seen := make(map[string]struct{}, len(products))

	for i, p := range products {
		if p.Name == "" {
			return Catalog{}, fmt.Errorf("product %d: name is required", i)
		}
		if _, dup := seen[p.Name]; dup {
			return Catalog{}, fmt.Errorf("product %q: duplicate name", p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.Price < 0 {
			return Catalog{}, fmt.Errorf("product %q: price must not be negative", p.Name)
		}
		if p.ValidityDays <= 0 {
			return Catalog{}, fmt.Errorf("product %q: validity_days must be positive", p.Name)
		}
		if p.MaxTrips < 0 {
			return Catalog{}, fmt.Errorf("product %q: max_trips must not be negative", p.Name)
		}
	}

	out := make([]model.TicketProduct, len(products))
	copy(out, products)

	return Catalog{products: out}, nil
}

// DefaultCatalog returns the built-in ticket catalogue, used when no
// catalogue file is configured and by the sample data script.
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog([]model.TicketProduct{
		{Name: "Standard Return", Price: 49.50, ValidityDays: 1, MaxTrips: 1},
		{Name: "Weekly Ticket", Price: 145.40, ValidityDays: 7},
		{Name: "Monthly Ticket", Price: 558.40, ValidityDays: 30},
		{Name: "Flex Ticket (8 Trips)", Price: 346.50, ValidityDays: 28, MaxTrips: 8},
	})
	if err != nil {
		// The built-in catalogue is a constant; it cannot fail validation.
		panic(err)
	}
	return catalog
}

// Products returns a copy of the catalogue in declaration order.
func (c Catalog) Products() []model.TicketProduct {
	out := make([]model.TicketProduct, len(c.products))
	copy(out, c.products)
	return out
}

// Size returns the number of products in the catalogue.
func (c Catalog) Size() int {
	return len(c.products)
}
