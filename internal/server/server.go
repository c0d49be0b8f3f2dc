// Package server exposes the resolution and discovery paths over HTTP.
//
// Routes:
//
//	POST /v1/resolve        resolve an output-metadata document
//	GET  /v1/discover/{pod} discover and render a step's visualizations
//	GET  /v1/lineage/{pod}  render the step's metadata graph as SVG
//	GET  /healthz           liveness probe
//	GET  /metrics           Prometheus metrics
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vizlens/vizlens/internal/config"
	"github.com/vizlens/vizlens/pkg/cache"
	"github.com/vizlens/vizlens/pkg/discovery"
	"github.com/vizlens/vizlens/pkg/mlmd"
	"github.com/vizlens/vizlens/pkg/viewer"
	"github.com/vizlens/vizlens/pkg/vizrender"
)

// Server wires the resolution core behind a chi router.
type Server struct {
	cfg       config.Config
	logger    *log.Logger
	resolver  *viewer.Resolver
	discovery *discovery.Resolver
	cache     cache.Cache
	cacheTTL  time.Duration
	metrics   *Metrics
	router    chi.Router
}

// New builds a Server from configuration. It registers the metrics
// collectors as the process-wide observability hooks. Pass nil for
// logger to discard log output.
func New(ctx context.Context, cfg config.Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	reader, err := cfg.Reader()
	if err != nil {
		return nil, err
	}
	c, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics()
	metrics.Register()

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		resolver: viewer.NewResolver(reader, logger),
		discovery: discovery.NewResolver(
			mlmd.NewClient(cfg.Metadata.Endpoint),
			vizrender.NewClient(cfg.Renderer.Endpoint),
			logger,
		),
		cache:    c,
		cacheTTL: time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		metrics:  metrics,
	}
	s.router = s.routes()
	return s, nil
}

func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheFile:
		return cache.NewFileCache(cfg.Dir)
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default:
		return cache.NewNullCache(), nil
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(s.metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)
		r.Get("/discover/{pod}", s.handleDiscover)
		r.Get("/lineage/{pod}", s.handleLineage)
	})
	return r
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.cache.Close()
		return err
	case err := <-errCh:
		s.cache.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
