package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vizlens.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("Backend = %q, want none", cfg.Cache.Backend)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9999"

[metadata]
endpoint = "http://mlmd.local:9090"

[cache]
backend = "redis"
ttl_seconds = 300

[cache.redis]
addr = "redis.local:6379"
db = 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Metadata.Endpoint != "http://mlmd.local:9090" {
		t.Errorf("Metadata.Endpoint = %q", cfg.Metadata.Endpoint)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.Redis.Addr != "redis.local:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	// Unset sections keep their defaults.
	if cfg.Renderer.Endpoint != "http://visualization-service:8888" {
		t.Errorf("Renderer.Endpoint = %q", cfg.Renderer.Endpoint)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9999"
`)
	t.Setenv("VIZLENS_ADDR", ":7777")
	t.Setenv("VIZLENS_OBJSTORE_USE_SSL", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("Addr = %q, want env override :7777", cfg.Server.Addr)
	}
	if !cfg.ObjectStore.UseSSL {
		t.Error("UseSSL = false, want env override true")
	}
}

func TestLoadValidation(t *testing.T) {
	t.Run("unknown cache backend", func(t *testing.T) {
		path := writeConfig(t, "[cache]\nbackend = \"memcached\"\n")
		if _, err := Load(path); err == nil {
			t.Error("Load() = nil error, want backend validation failure")
		}
	})

	t.Run("redis backend without addr", func(t *testing.T) {
		path := writeConfig(t, "[cache]\nbackend = \"redis\"\n")
		if _, err := Load(path); err == nil {
			t.Error("Load() = nil error, want missing addr failure")
		}
	})
}

func TestReaderSelection(t *testing.T) {
	cfg := Default()
	r, err := cfg.Reader()
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	if r == nil {
		t.Fatal("Reader() = nil, want local reader")
	}
}
