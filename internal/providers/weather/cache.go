package weather

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

type cacheEntry struct {
	snapshot core.WeatherSnapshot
	expires  time.Time
}

// Cached keeps successful lookups for a fixed TTL. Errors are not cached.
type Cached struct {
	next core.WeatherProvider
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewCached(next core.WeatherProvider, ttl time.Duration) *Cached {
	return &Cached{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cached) Current(ctx context.Context, city string) (core.WeatherSnapshot, error) {
	key := strings.ToLower(strings.TrimSpace(city))

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expires) {
		snap := e.snapshot
		snap.City = city
		return snap, nil
	}

	snap, err := c.next.Current(ctx, city)
	if err != nil {
		return core.WeatherSnapshot{}, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{snapshot: snap, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return snap, nil
}

// Invalidate drops every cached entry.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
