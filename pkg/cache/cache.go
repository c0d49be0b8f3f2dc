// Package cache provides pluggable byte caches for the serving layer.
//
// The resolution core never caches: every call recomputes from its inputs.
// Caching happens strictly at the collaborator boundary, in front of the
// core — the HTTP server uses a Cache to memoize rendered HTML responses
// from the visualization service.
//
// Backends:
//   - file: directory-backed cache for single-instance/CLI usage
//   - redis: shared cache for multi-instance deployments
//   - null: no-op cache that disables caching entirely
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value from the cache.
	// The second return value reports whether the key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value from the cache. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
