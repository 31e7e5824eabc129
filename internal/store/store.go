// Package store implements the dashboard's data layer: three entity
// collections (inventory, customers, sales) plus admin accounts,
// serialized whole as JSON under named keys in a storage backend, with
// CRUD operations and derived report aggregates on top.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/storage"
)

// Persisted collection keys.
const (
	inventoryKey = "agrovet:inventory"
	customersKey = "agrovet:customers"
	salesKey     = "agrovet:sales"
	adminsKey    = "agrovet:admins"
)

// Store is the single authority for reading and persisting the entity
// collections. Every mutation is a whole-collection read-modify-write;
// there is no partial update at the storage level.
type Store struct {
	storage storage.Storage

	// now is the clock used for date stamps, overridable in tests.
	now func() time.Time
}

// New creates a store over the given storage backend.
func New(st storage.Storage) *Store {
	return &Store{
		storage: st,
		now:     time.Now,
	}
}

// today returns the current calendar day as a date string.
func (s *Store) today() string {
	return s.now().UTC().Format(model.DateLayout)
}

// load reads and decodes the collection under key. An absent key or
// malformed stored JSON degrades to an empty collection; only storage
// backend failures surface as errors.
func load[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[Store] Malformed data under %s, treating as empty: %v", key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save encodes and persists the collection under key.
func save[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.storage.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// nextID returns max(existing ids) + 1, or 1 for an empty collection.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// round2 rounds a monetary amount to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
