package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vizlens/vizlens/pkg/observability"
)

// Metrics owns the Prometheus registry and implements every
// observability hook interface, so registering it instruments the
// resolution core without the core importing Prometheus.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	builds        *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	shortCircuits *prometheus.CounterVec
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	outbound      *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vizlens_http_requests_total",
			Help: "Inbound HTTP requests by method and status.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vizlens_http_request_duration_seconds",
			Help:    "Inbound HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vizlens_viewer_builds_total",
			Help: "Viewer config builds by plot kind and outcome.",
		}, []string{"kind", "outcome"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vizlens_traversal_stage_duration_seconds",
			Help:    "Metadata graph traversal stage latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		shortCircuits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vizlens_traversal_short_circuits_total",
			Help: "Traversal stages that ended with an expected empty result.",
		}, []string{"stage"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vizlens_cache_hits_total",
			Help: "Render-response cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vizlens_cache_misses_total",
			Help: "Render-response cache misses.",
		}),
		outbound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vizlens_outbound_requests_total",
			Help: "Outbound HTTP requests by host and outcome.",
		}, []string{"host", "outcome"}),
	}
	reg.MustRegister(
		m.httpRequests, m.httpDuration, m.builds, m.stageDuration,
		m.shortCircuits, m.cacheHits, m.cacheMisses, m.outbound,
	)
	return m
}

// Register installs the metrics as the process-wide observability hooks.
func (m *Metrics) Register() {
	observability.SetResolverHooks(m)
	observability.SetTraversalHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records inbound request counts and latency.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.httpRequests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ResolverHooks.

func (m *Metrics) OnLoadStart(context.Context, string) {}

func (m *Metrics) OnLoadComplete(context.Context, string, int, error) {}

func (m *Metrics) OnBuildStart(context.Context, string) {}

func (m *Metrics) OnBuildComplete(_ context.Context, kind string, _ time.Duration, err error) {
	m.builds.WithLabelValues(kind, outcome(err)).Inc()
}

// TraversalHooks.

func (m *Metrics) OnStageStart(context.Context, string) {}

func (m *Metrics) OnStageComplete(_ context.Context, stage string, d time.Duration, _ error) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Metrics) OnShortCircuit(_ context.Context, stage string) {
	m.shortCircuits.WithLabelValues(stage).Inc()
}

// CacheHooks.

func (m *Metrics) OnCacheHit(context.Context, string)  { m.cacheHits.Inc() }
func (m *Metrics) OnCacheMiss(context.Context, string) { m.cacheMisses.Inc() }
func (m *Metrics) OnCacheSet(context.Context, string, int) {}

// HTTPHooks.

func (m *Metrics) OnRequest(context.Context, string, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, _, host, _ string, status int, _ time.Duration) {
	out := "ok"
	if status >= 400 {
		out = "error"
	}
	m.outbound.WithLabelValues(host, out).Inc()
}

func (m *Metrics) OnError(_ context.Context, _, host, _ string, _ error) {
	m.outbound.WithLabelValues(host, "error").Inc()
}

var (
	_ observability.ResolverHooks  = (*Metrics)(nil)
	_ observability.TraversalHooks = (*Metrics)(nil)
	_ observability.CacheHooks     = (*Metrics)(nil)
	_ observability.HTTPHooks      = (*Metrics)(nil)
)
