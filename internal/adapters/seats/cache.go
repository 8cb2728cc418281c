package seats

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
	"github.com/google/uuid"
)

type cacheEntry struct {
	fetchedAt time.Time
	seats     []string
}

// Cache memoizes free-seat lookups per event for a short TTL so bursts of
// seat checks do not hammer the provider. Provider calls run outside the
// lock.
type Cache struct {
	client ports.ProviderClient
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[uuid.UUID]cacheEntry
}

func NewCache(cfg config.SeatsCacheConfig, client ports.ProviderClient) *Cache {
	return &Cache{
		client:  client,
		ttl:     cfg.TTL,
		now:     time.Now,
		entries: make(map[uuid.UUID]cacheEntry),
	}
}

// FreeSeats returns the free seats for the event, from cache when fresh.
// Callers get their own copy, the cached slice is never shared.
func (c *Cache) FreeSeats(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	c.mu.Lock()
	entry, ok := c.entries[eventID]
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		c.mu.Unlock()

		return slices.Clone(entry.seats), nil
	}
	c.mu.Unlock()

	seats, err := c.client.FetchFreeSeats(ctx, eventID.String())
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[eventID] = cacheEntry{fetchedAt: c.now(), seats: slices.Clone(seats)}
	c.mu.Unlock()

	return seats, nil
}
