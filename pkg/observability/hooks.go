// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about metadata resolution, graph traversal, cache
// operations, and outbound HTTP calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (Prometheus, OpenTelemetry, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResolverHooks(&myResolverHooks{})
//	    observability.SetTraversalHooks(&myTraversalHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Resolver().OnBuildStart(ctx, kind)
//	// ... build the viewer config ...
//	observability.Resolver().OnBuildComplete(ctx, kind, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Resolver Hooks
// =============================================================================

// ResolverHooks receives events from the declarative metadata resolution path.
type ResolverHooks interface {
	// Document load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, recordCount int, err error)

	// Per-record builder events. Kind is the plot type being built.
	OnBuildStart(ctx context.Context, kind string)
	OnBuildComplete(ctx context.Context, kind string, duration time.Duration, err error)
}

// =============================================================================
// Traversal Hooks
// =============================================================================

// TraversalHooks receives events from the metadata-store graph traversal.
type TraversalHooks interface {
	// OnStageStart records the beginning of a traversal stage
	// (catalog, context, execution, artifacts).
	OnStageStart(ctx context.Context, stage string)

	// OnStageComplete records the end of a traversal stage.
	OnStageComplete(ctx context.Context, stage string, duration time.Duration, err error)

	// OnShortCircuit records an expected empty result at a stage.
	OnShortCircuit(ctx context.Context, stage string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResolverHooks is a no-op implementation of ResolverHooks.
type NoopResolverHooks struct{}

func (NoopResolverHooks) OnLoadStart(context.Context, string)                           {}
func (NoopResolverHooks) OnLoadComplete(context.Context, string, int, error)            {}
func (NoopResolverHooks) OnBuildStart(context.Context, string)                          {}
func (NoopResolverHooks) OnBuildComplete(context.Context, string, time.Duration, error) {}

// NoopTraversalHooks is a no-op implementation of TraversalHooks.
type NoopTraversalHooks struct{}

func (NoopTraversalHooks) OnStageStart(context.Context, string)                          {}
func (NoopTraversalHooks) OnStageComplete(context.Context, string, time.Duration, error) {}
func (NoopTraversalHooks) OnShortCircuit(context.Context, string)                        {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resolverHooks  ResolverHooks  = NoopResolverHooks{}
	traversalHooks TraversalHooks = NoopTraversalHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	hooksMu        sync.RWMutex
)

// SetResolverHooks registers custom resolver hooks.
// This should be called once at application startup before any resolution.
func SetResolverHooks(h ResolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolverHooks = h
	}
}

// SetTraversalHooks registers custom traversal hooks.
// This should be called once at application startup before any traversal.
func SetTraversalHooks(h TraversalHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		traversalHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Resolver returns the registered resolver hooks.
func Resolver() ResolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolverHooks
}

// Traversal returns the registered traversal hooks.
func Traversal() TraversalHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return traversalHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resolverHooks = NoopResolverHooks{}
	traversalHooks = NoopTraversalHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
