package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache()
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
}

func TestMemoryCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	_, err := c.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), -time.Second))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheGetOrSet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	calls := 0
	compute := func() ([]byte, error) {
		calls++
		return []byte("computed"), nil
	}

	got, err := c.GetOrSet(ctx, "key", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, []byte("computed"), got)

	got, err = c.GetOrSet(ctx, "key", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, []byte("computed"), got)
	assert.Equal(t, 1, calls)
}

func TestMemoryCacheGetOrSetError(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	boom := errors.New("boom")
	_, err := c.GetOrSet(ctx, "key", time.Minute, func() ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	// Nothing was cached for the failed compute.
	_, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheCopiesValues(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	value := []byte("original")
	require.NoError(t, c.Set(ctx, "key", value, time.Minute))
	value[0] = 'X'

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}
