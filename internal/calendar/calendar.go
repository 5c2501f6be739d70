// Package calendar supplies the traveller's confirmed travel days from an
// external calendar events API, with memoisation so repeated recommendation
// calls do not refetch the same window.
package calendar

import (
	"context"
	"time"
)

// Window is the forward horizon over which travel days are considered.
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow returns a lookahead window of the given number of days
// starting at from.
func NewWindow(from time.Time, days int) Window {
	return Window{
		From: from,
		To:   from.AddDate(0, 0, days),
	}
}

// Source supplies confirmed travel days inside a lookahead window.
// Implementations may return duplicates or unsorted days; callers are
// expected to normalise before use.
type Source interface {
	TravelDays(ctx context.Context, calendarID string, window Window) ([]time.Time, error)
}
