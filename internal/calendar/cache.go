package calendar

import (
	"context"
	"sync"
	"time"
)

// memoSource caches TravelDays responses keyed on (calendar ID, window),
// so repeated recommendation calls inside the TTL reuse the fetched days.
type memoSource struct {
	next Source
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]memoEntry
}

type memoEntry struct {
	days      []time.Time
	fetchedAt time.Time
}

// NewMemoizingSource wraps a Source with a TTL cache. A TTL of zero or less
// disables caching and returns the source unchanged.
func NewMemoizingSource(next Source, ttl time.Duration) Source {
	if ttl <= 0 {
		return next
	}

	return &memoSource{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoEntry),
	}
}

// TravelDays returns the cached days for the key when fresh, otherwise
// fetches from the underlying source. Errors are never cached.
func (m *memoSource) TravelDays(ctx context.Context, calendarID string, window Window) ([]time.Time, error) {
	key := cacheKey(calendarID, window)

	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && m.now().Sub(entry.fetchedAt) < m.ttl {
		days := copyDays(entry.days)
		m.mu.Unlock()
		return days, nil
	}
	m.mu.Unlock()

	days, err := m.next.TravelDays(ctx, calendarID, window)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.entries[key] = memoEntry{days: copyDays(days), fetchedAt: m.now()}
	m.mu.Unlock()

	return days, nil
}

func cacheKey(calendarID string, window Window) string {
	return calendarID + "|" + window.From.UTC().Format(time.RFC3339) + "|" + window.To.UTC().Format(time.RFC3339)
}

// copyDays isolates callers from each other; cached slices are never shared.
func copyDays(days []time.Time) []time.Time {
	out := make([]time.Time, len(days))
	copy(out, days)
	return out
}
