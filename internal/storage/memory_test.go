package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageAbsentKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	value, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestMemoryStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.Set(ctx, "key", []byte(`{"a":1}`)))

	value, err := s.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), value)

	require.NoError(t, s.Set(ctx, "key", []byte(`{"a":2}`)))
	value, err = s.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), value)
}

func TestMemoryStorageDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.Set(ctx, "key", []byte("value")))
	require.NoError(t, s.Delete(ctx, "key"))

	value, err := s.Get(ctx, "key")
	require.NoError(t, err)
	assert.Nil(t, value)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete(ctx, "key"))
}

func TestMemoryStorageCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	value := []byte("original")
	require.NoError(t, s.Set(ctx, "key", value))
	value[0] = 'X'

	got, err := s.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}
