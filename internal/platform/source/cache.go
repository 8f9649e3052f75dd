package source

import (
	"context"
	"sync"
	"time"
)

// FetchFunc produces a fresh value for a cache slot.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cache memoizes a single fetched value for a fixed window. A read inside
// the window returns the stored value without touching the upstream; a read
// at or past expiry refetches and replaces the slot. A failed refetch keeps
// the expired entry in place and returns the fetch error to the caller.
//
// The mutex is held across the whole check-fetch-store sequence, so
// concurrent expired reads collapse into one upstream fetch.
type Cache[T any] struct {
	name  string
	ttl   time.Duration
	fetch FetchFunc[T]

	metrics *Metrics
	now     func() time.Time

	mu        sync.Mutex
	data      T
	fetchedAt time.Time
	filled    bool
}

// NewCache builds a cache slot named for metrics labelling. metrics may be nil.
func NewCache[T any](name string, ttl time.Duration, fetch FetchFunc[T], metrics *Metrics) *Cache[T] {
	return &Cache[T]{
		name:    name,
		ttl:     ttl,
		fetch:   fetch,
		metrics: metrics,
		now:     time.Now,
	}
}

// Get returns the cached value, refetching if the window has elapsed.
func (c *Cache[T]) Get(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filled && c.now().Sub(c.fetchedAt) < c.ttl {
		c.metrics.IncCacheRead(c.name, "hit")
		return c.data, nil
	}

	c.metrics.IncCacheRead(c.name, "miss")
	data, err := c.fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.data = data
	c.fetchedAt = c.now()
	c.filled = true
	return c.data, nil
}
