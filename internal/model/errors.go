package model

// StoreError is a sentinel error type for store-level failures.
type StoreError string

func (e StoreError) Error() string { return string(e) }

const (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound StoreError = "record not found"

	// ErrConflict indicates a uniqueness violation (e.g. duplicate username).
	ErrConflict StoreError = "record already exists"
)
