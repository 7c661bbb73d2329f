package ports

import "context"

// KVStore defines the interface for durable local key-value text storage.
// Values are whole serialized blobs; a Set replaces the prior value
// entirely. Tests substitute an in-memory implementation.
type KVStore interface {
	// Get returns the value stored under key. ok is false when no value
	// exists for the key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the value stored under key, if any.
	Delete(ctx context.Context, key string) error

	// Close closes the underlying storage.
	Close() error
}
