package cache

import (
	"context"
	"time"
)

// NullCache disables caching: every lookup is a miss and writes are
// discarded. It backs the "none" cache backend, where each discover
// request hits the metadata store and render service directly.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() Cache {
	return NullCache{}
}

// Get always misses.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete is a no-op.
func (NullCache) Delete(context.Context, string) error {
	return nil
}

// Close is a no-op.
func (NullCache) Close() error {
	return nil
}

var _ Cache = NullCache{}
