package seats

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/mocks"
)

func TestCache_ServesFromCacheWithinTTL(t *testing.T) {
	t.Parallel()

	client := &mocks.FakeProviderClient{}
	client.FetchFreeSeatsReturns([]string{"A1", "A2"}, nil)

	cache := NewCache(config.SeatsCacheConfig{TTL: 30 * time.Second}, client)

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return clock }

	eventID := uuid.New()

	first, err := cache.FreeSeats(t.Context(), eventID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, first)

	clock = clock.Add(29 * time.Second)

	second, err := cache.FreeSeats(t.Context(), eventID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.FetchFreeSeatsCallCount(), "lookup within the TTL must not hit the provider")
}

func TestCache_RefetchesAfterTTL(t *testing.T) {
	t.Parallel()

	client := &mocks.FakeProviderClient{}
	client.FetchFreeSeatsReturnsOnCall(0, []string{"A1", "A2"}, nil)
	client.FetchFreeSeatsReturnsOnCall(1, []string{"A2"}, nil)

	cache := NewCache(config.SeatsCacheConfig{TTL: 30 * time.Second}, client)

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return clock }

	eventID := uuid.New()

	_, err := cache.FreeSeats(t.Context(), eventID)
	require.NoError(t, err)

	clock = clock.Add(31 * time.Second)

	seats, err := cache.FreeSeats(t.Context(), eventID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A2"}, seats)
	assert.Equal(t, 2, client.FetchFreeSeatsCallCount())
}

func TestCache_EntriesArePerEvent(t *testing.T) {
	t.Parallel()

	client := &mocks.FakeProviderClient{}
	client.FetchFreeSeatsReturns([]string{"A1"}, nil)

	cache := NewCache(config.SeatsCacheConfig{TTL: 30 * time.Second}, client)

	_, err := cache.FreeSeats(t.Context(), uuid.New())
	require.NoError(t, err)

	_, err = cache.FreeSeats(t.Context(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 2, client.FetchFreeSeatsCallCount())
}

func TestCache_CallerMutationDoesNotCorruptEntries(t *testing.T) {
	t.Parallel()

	client := &mocks.FakeProviderClient{}
	client.FetchFreeSeatsReturns([]string{"A1", "A2"}, nil)

	cache := NewCache(config.SeatsCacheConfig{TTL: 30 * time.Second}, client)

	eventID := uuid.New()

	first, err := cache.FreeSeats(t.Context(), eventID)
	require.NoError(t, err)

	first[0] = "ZZ"

	second, err := cache.FreeSeats(t.Context(), eventID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, second)
	assert.Equal(t, 1, client.FetchFreeSeatsCallCount())

	second[1] = "YY"

	third, err := cache.FreeSeats(t.Context(), eventID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, third)
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	client := &mocks.FakeProviderClient{}
	client.FetchFreeSeatsReturnsOnCall(0, nil, errors.New("provider down"))
	client.FetchFreeSeatsReturnsOnCall(1, []string{"A1"}, nil)

	cache := NewCache(config.SeatsCacheConfig{TTL: 30 * time.Second}, client)

	eventID := uuid.New()

	_, err := cache.FreeSeats(t.Context(), eventID)
	require.Error(t, err)

	seats, err := cache.FreeSeats(t.Context(), eventID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, seats)
}
