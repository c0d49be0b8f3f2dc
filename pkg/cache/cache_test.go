package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before any Set
	_, hit, err := c.Get(ctx, "render:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss before Set")
	}

	// Set then Get
	if err := c.Set(ctx, "render:abc", []byte("<html/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "render:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "<html/>" {
		t.Errorf("Get = %q, want %q", data, "<html/>")
	}

	// Delete
	if err := c.Delete(ctx, "render:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "render:abc")
	if hit {
		t.Error("expected miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "render:missing"); err != nil {
		t.Errorf("Delete missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Negative TTL produces an already-expired entry.
	if err := c.Set(ctx, "key", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}

	// TTL of 0 never expires.
	if err := c.Set(ctx, "forever", []byte("fresh"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "forever")
	if !hit {
		t.Error("zero-TTL entry should not expire")
	}
}
