package repository

import "context"

// KeyValueStore persists opaque values under string keys.
// It backs the recently used emoji list.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// A missing key yields a nil value and a nil error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the resources held by the store.
	Close() error
}
