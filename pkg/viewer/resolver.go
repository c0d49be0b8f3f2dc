package viewer

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/storage"
)

// Resolver turns an output-metadata document into renderable viewer
// configurations.
type Resolver struct {
	loader *Loader
	env    Env
	logger *log.Logger
}

// NewResolver wires a Resolver over the given reader. Pass nil for
// logger to discard log output.
func NewResolver(reader storage.Reader, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Resolver{
		loader: NewLoader(reader, logger),
		env:    Env{Reader: reader},
		logger: logger,
	}
}

// Resolve loads the document at path and builds every record concurrently.
//
// The result preserves document order. A record that fails to build is
// logged and dropped; one bad record never poisons its siblings, so the
// call itself never returns an error. Calling Resolve twice for the same
// unchanged document yields the same configurations.
func (r *Resolver) Resolve(ctx context.Context, path string) []Config {
	return r.ResolveRecords(ctx, r.loader.Load(ctx, path))
}

// ResolveRecords builds already-parsed metadata records, bypassing the
// document loader. Used by handlers that accept the document body directly.
func (r *Resolver) ResolveRecords(ctx context.Context, records []PlotMetadata) []Config {
	if len(records) == 0 {
		return nil
	}

	built := make([]Config, len(records))
	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg, err := Build(ctx, r.env, &records[i])
			if err != nil {
				r.logger.Warn("Dropping viewer config",
					"index", i, "type", records[i].Type, "err", errors.UserMessage(err))
				return
			}
			built[i] = cfg
		}(i)
	}
	wg.Wait()

	configs := make([]Config, 0, len(built))
	for _, cfg := range built {
		if cfg != nil {
			configs = append(configs, cfg)
		}
	}
	return configs
}
