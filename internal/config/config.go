// Package config loads service configuration from a TOML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/vizlens/vizlens/pkg/storage"
)

// Config is the full service configuration.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Metadata    MetadataConfig    `toml:"metadata"`
	Renderer    RendererConfig    `toml:"renderer"`
	ObjectStore ObjectStoreConfig `toml:"object_store"`
	Cache       CacheConfig       `toml:"cache"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`
}

// MetadataConfig points at the metadata store proxy.
type MetadataConfig struct {
	Endpoint string `toml:"endpoint"`
}

// RendererConfig points at the visualization rendering service.
type RendererConfig struct {
	Endpoint string `toml:"endpoint"`
}

// ObjectStoreConfig holds object-storage connection settings. An empty
// endpoint selects the local filesystem reader instead.
type ObjectStoreConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
}

// CacheConfig selects the render-response cache backend.
type CacheConfig struct {
	// Backend is "none", "file", or "redis".
	Backend string `toml:"backend"`
	// Dir is the cache directory for the file backend.
	Dir string `toml:"dir"`
	// Redis configures the redis backend.
	Redis RedisConfig `toml:"redis"`
	// TTLSeconds bounds how long a cached response stays valid.
	// Zero means no expiry.
	TTLSeconds int `toml:"ttl_seconds"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		Metadata: MetadataConfig{Endpoint: "http://metadata-envoy:9090"},
		Renderer: RendererConfig{Endpoint: "http://visualization-service:8888"},
		Cache:    CacheConfig{Backend: CacheNone},
	}
}

// Load reads the TOML file at path on top of the defaults and then
// applies environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Environment overrides, useful in containers where mounting a config
// file is inconvenient.
func (c *Config) applyEnv() {
	setString(&c.Server.Addr, "VIZLENS_ADDR")
	setString(&c.Metadata.Endpoint, "VIZLENS_METADATA_ENDPOINT")
	setString(&c.Renderer.Endpoint, "VIZLENS_RENDERER_ENDPOINT")
	setString(&c.ObjectStore.Endpoint, "VIZLENS_OBJSTORE_ENDPOINT")
	setString(&c.ObjectStore.AccessKey, "VIZLENS_OBJSTORE_ACCESS_KEY")
	setString(&c.ObjectStore.SecretKey, "VIZLENS_OBJSTORE_SECRET_KEY")
	setBool(&c.ObjectStore.UseSSL, "VIZLENS_OBJSTORE_USE_SSL")
	setString(&c.Cache.Backend, "VIZLENS_CACHE_BACKEND")
	setString(&c.Cache.Dir, "VIZLENS_CACHE_DIR")
	setString(&c.Cache.Redis.Addr, "VIZLENS_REDIS_ADDR")
	setString(&c.Cache.Redis.Password, "VIZLENS_REDIS_PASSWORD")
	setInt(&c.Cache.Redis.DB, "VIZLENS_REDIS_DB")
	setInt(&c.Cache.TTLSeconds, "VIZLENS_CACHE_TTL_SECONDS")
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache backend %q requires redis.addr", CacheRedis)
	}
	return nil
}

// Reader builds the storage reader the configuration selects: an object
// store client when an endpoint is configured, the local filesystem
// otherwise.
func (c *Config) Reader() (storage.Reader, error) {
	if c.ObjectStore.Endpoint == "" {
		return storage.NewLocalReader(), nil
	}
	return storage.NewObjectReader(storage.ObjectConfig{
		Endpoint:  c.ObjectStore.Endpoint,
		AccessKey: c.ObjectStore.AccessKey,
		SecretKey: c.ObjectStore.SecretKey,
		UseSSL:    c.ObjectStore.UseSSL,
	})
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
