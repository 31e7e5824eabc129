package storage

import "context"

// Storage is the persistence port for the data store. Collections are
// serialized as whole JSON blobs under named keys, so the contract is a
// minimal key/value one. Get returns (nil, nil) for an absent key.
//
// This abstraction allows swapping between the in-memory backend
// (tests), SQLite (single-node default) and MySQL (shared server)
// without changing the store.
type Storage interface {
	// Get retrieves the value stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent
	// key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backing connection.
	Close() error
}
