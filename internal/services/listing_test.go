package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededListing() (*Listing, *fakeEventStore, *fakeDayStore) {
	events := newFakeEventStore()
	events.seed(domain.Event{ID: 1, Name: "Hack Night", Category: strPtr("tech")})
	events.seed(domain.Event{ID: 2, Name: "Art Jam", Category: strPtr("non-tech")})
	days := newFakeDayStore()
	days.seed(domain.SlotDay1, domain.DayRecord{ID: 5, EventID: 1, Date: "2026-02-25"})
	return NewListing(events, days, time.Second), events, days
}

func TestListing_EventsAssemblesAndCaches(t *testing.T) {
	l, events, _ := newSeededListing()
	ctx := context.Background()

	got, err := l.Events(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Day1)
	assert.Equal(t, int64(5), got[0].Day1.ID)
	assert.Nil(t, got[0].Day2)
	assert.Nil(t, got[1].Day1)
	assert.Nil(t, got[1].Day2)

	_, err = l.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, events.listCalls, "second read must be served from cache")
}

// midFetchMutatingStore applies a mutation after the first list call has
// already taken its snapshot, so the returned rows predate the mutation.
type midFetchMutatingStore struct {
	*fakeEventStore
	mutate func()
	fired  bool
}

func (s *midFetchMutatingStore) ListEvents(ctx context.Context) ([]domain.Event, error) {
	out, err := s.fakeEventStore.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	if !s.fired {
		s.fired = true
		s.mutate()
	}
	return out, nil
}

func TestListing_InvalidationDuringRefetchIsNotLost(t *testing.T) {
	events := newFakeEventStore()
	events.seed(domain.Event{ID: 1, Name: "Hack Night"})
	wrapped := &midFetchMutatingStore{fakeEventStore: events}
	l := NewListing(wrapped, newFakeDayStore(), time.Second)
	wrapped.mutate = func() {
		events.seed(domain.Event{ID: 2, Name: "Art Jam"})
		l.Invalidate()
	}
	ctx := context.Background()

	got, err := l.Events(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1, "in-flight fetch may return the pre-mutation snapshot")

	got, err = l.Events(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2, "the next read must reflect the mutation")
	assert.Equal(t, "Art Jam", got[1].Name)
}

func TestListing_InvalidateForcesRefetch(t *testing.T) {
	l, events, _ := newSeededListing()
	ctx := context.Background()

	_, err := l.Events(ctx)
	require.NoError(t, err)

	events.seed(domain.Event{ID: 3, Name: "Chess Open"})
	got, err := l.Events(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2, "stale cache is served until invalidated")

	l.Invalidate()
	got, err = l.Events(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, 2, events.listCalls)
}

func TestListing_Search(t *testing.T) {
	l, _, _ := newSeededListing()

	got, err := l.Search(context.Background(), "", "tech")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got, err = l.Search(context.Background(), "jam", domain.CategoryAll)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestListing_FetchErrorSurfacesAndDoesNotCache(t *testing.T) {
	l, events, _ := newSeededListing()
	storeErr := errors.New("connection refused")
	events.listErr = storeErr

	_, err := l.Events(context.Background())
	require.ErrorIs(t, err, storeErr)

	events.listErr = nil
	got, err := l.Events(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
