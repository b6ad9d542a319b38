package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eventboard/internal/domain"
)

// Listing serves the assembled event view from an in-memory cache and
// recomputes it after invalidation. Coherence is by full refetch: every
// successful mutation invalidates the cache, and the next read fetches all
// three collections again. gen tracks invalidations so a fetch that raced
// with one may still be returned to its caller but is never cached; the next
// read refetches.
type Listing struct {
	events  domain.EventStore
	days    domain.DayStore
	timeout time.Duration

	mu     sync.Mutex
	cached []domain.EventWithDays
	valid  bool
	gen    uint64
}

// NewListing returns a Listing over the given stores. timeout bounds each refetch.
func NewListing(events domain.EventStore, days domain.DayStore, timeout time.Duration) *Listing {
	return &Listing{
		events:  events,
		days:    days,
		timeout: timeout,
	}
}

// Events returns the assembled view, refetching from the stores if the cache
// has been invalidated. The returned slice must not be mutated by callers.
func (l *Listing) Events(ctx context.Context) ([]domain.EventWithDays, error) {
	l.mu.Lock()
	if l.valid {
		cached := l.cached
		l.mu.Unlock()
		return cached, nil
	}
	gen := l.gen
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	events, err := l.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	day1, err := l.days.ListDays(ctx, domain.SlotDay1)
	if err != nil {
		return nil, fmt.Errorf("list day1: %w", err)
	}
	day2, err := l.days.ListDays(ctx, domain.SlotDay2)
	if err != nil {
		return nil, fmt.Errorf("list day2: %w", err)
	}
	assembled := AssembleEvents(events, day1, day2)

	l.mu.Lock()
	// An invalidation that landed during the fetch must not be swallowed:
	// the snapshot predates the mutation, so it may be returned but never
	// cached as current.
	if l.gen == gen {
		l.cached = assembled
		l.valid = true
	}
	l.mu.Unlock()
	return assembled, nil
}

// Search returns the assembled view restricted to the given free-text query
// and category selector. The filter is an in-memory pass over the fully
// materialized list.
func (l *Listing) Search(ctx context.Context, query, category string) ([]domain.EventWithDays, error) {
	all, err := l.Events(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEvents(all, query, category), nil
}

// Invalidate marks the cached view stale so the next read refetches. Bumping
// the generation also discards any refetch already in flight.
func (l *Listing) Invalidate() {
	l.mu.Lock()
	l.valid = false
	l.gen++
	l.mu.Unlock()
}
