package storage

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory implementation of Storage.
// Use this for development/testing only - nothing survives a restart.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string][]byte),
	}
}

// Get retrieves the value stored under key.
func (s *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	s.values[key] = valueCopy
	return nil
}

// Delete removes the value stored under key.
func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStorage) Close() error {
	return nil
}

// Ensure MemoryStorage implements Storage
var _ Storage = (*MemoryStorage)(nil)
