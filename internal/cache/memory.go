package cache

import (
	"context"
	"sync"
	"time"
)

// entry is a cached value with its expiry.
type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e *entry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// MemoryCache is an in-memory implementation of Cache with a periodic
// sweep of expired entries.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry

	sweepInterval time.Duration
	stopSweep     chan struct{}
	stopOnce      sync.Once
}

// NewMemoryCache creates a memory cache and starts its sweeper.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		entries:       make(map[string]*entry),
		sweepInterval: time.Minute,
		stopSweep:     make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get retrieves a value by key.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.expired() {
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(e.value))
	copy(result, e.value)
	return result, nil
}

// Set stores a value with the given TTL.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	c.entries[key] = &entry{
		value:     valueCopy,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value by key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// GetOrSet retrieves a value or computes and stores it if missing.
func (c *MemoryCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, error) {
	if value, err := c.Get(ctx, key); err == nil {
		return value, nil
	}

	value, err := fn()
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		return nil, err
	}
	return value, nil
}

// Close stops the background sweeper.
func (c *MemoryCache) Close() error {
	c.stopOnce.Do(func() { close(c.stopSweep) })
	return nil
}

func (c *MemoryCache) sweep() {
	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopSweep:
			return
		}
	}
}

func (c *MemoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if e.expired() {
			delete(c.entries, key)
		}
	}
}

// Ensure MemoryCache implements Cache
var _ Cache = (*MemoryCache)(nil)
