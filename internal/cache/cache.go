package cache

import (
	"context"
	"time"
)

// Cache is the TTL key/value port used for session tokens and cached
// report aggregates. The memory implementation serves development and
// single-instance deployments; Redis serves shared deployments.
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// GetOrSet retrieves a value or computes and stores it if missing.
	GetOrSet(ctx context.Context, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, error)

	// Close releases any backing resources.
	Close() error
}

// Error is a sentinel error type for cache failures.
type Error string

func (e Error) Error() string { return string(e) }

// ErrCacheMiss indicates the key was not found in cache.
const ErrCacheMiss Error = "cache miss"
