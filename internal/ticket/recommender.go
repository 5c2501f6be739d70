package ticket

import (
	"sort"
	"time"

	"ticket-optimiser/internal/model"
)

// Recommend evaluates every product in the catalogue against the given
// travel dates and selects the cheapest per-trip option.
//
// Input dates may be unsorted and may contain duplicates; they are
// normalised to whole UTC days, deduplicated and sorted here. An empty
// input yields (nil, nil): no trips means no recommendation, not an error.
//
// The function is pure and deterministic; it only reads the catalogue and
// allocates fresh outputs, so it is safe to call concurrently.
func Recommend(dates []time.Time, catalog Catalog) (*model.ProductCoverage, []model.ProductCoverage) {
	sorted := NormalizeDates(dates)
	if len(sorted) == 0 || catalog.Size() == 0 {
		return nil, nil
	}

	report := make([]model.ProductCoverage, 0, catalog.Size())
	for _, p := range catalog.products {
		report = append(report, model.ProductCoverage{
			Name:   p.Name,
			Result: Evaluate(sorted, p),
		})
	}

	// Scan in catalogue order and keep the first strict minimum, so equal
	// costs resolve to the product declared earliest.
	best := 0
	for i := 1; i < len(report); i++ {
		if report[i].Result.CostPerTrip < report[best].Result.CostPerTrip {
			best = i
		}
	}

	bestEntry := report[best]
	return &bestEntry, report
}

// NormalizeDates truncates timestamps to whole days (UTC), removes
// duplicates and sorts ascending. The coverage algorithm relies on the
// first element being the earliest trip.
func NormalizeDates(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))

	for _, d := range dates {
		day := Day(d)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })

	return out
}

// Day truncates a timestamp to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD travel date string.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(model.DateFormat, s, time.UTC)
}
