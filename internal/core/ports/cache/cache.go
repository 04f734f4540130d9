package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss indicates that no entry exists under the requested key.
// Callers at the cache-aside boundary treat every other error the same
// way: fall back to the store.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the key-value cache port used by the cache-aside services.
// Values are serialized JSON payloads; every entry carries a TTL after
// which it expires regardless of explicit invalidation.
type Cache interface {
	// Get returns the raw value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the given keys. Deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error

	// Close releases the underlying connection.
	Close() error
}
