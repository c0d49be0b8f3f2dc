package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a directory, one file per
// key. It backs the "file" cache backend: rendered discover responses
// survive server restarts without any external service. Keys are hashed
// into two-level paths so a busy cache does not pile every entry into a
// single directory.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk record: the payload plus its expiry.
type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get returns the entry for key. Expired and unreadable entries are
// removed and reported as misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set writes an entry for key. A zero TTL stores it without expiry; a
// negative TTL stores an already-expired entry.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Data: data}
	if ttl != 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes the entry for key. A missing entry is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; every operation opens and closes its own file.
func (c *FileCache) Close() error {
	return nil
}

// entryPath shards the hashed key into <dir>/<hh>/<rest>.json.
func (c *FileCache) entryPath(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
