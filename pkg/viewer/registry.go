package viewer

import (
	"context"
	"time"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/observability"
	"github.com/vizlens/vizlens/pkg/storage"
)

// Env carries the collaborators a builder may need. Builders are otherwise
// pure: same metadata plus same fetched content yields the same config.
type Env struct {
	// Reader fetches content behind storage locators (CSV data, HTML,
	// markdown files).
	Reader storage.Reader
}

// BuildFunc converts one metadata record into its renderer-ready config.
// Implementations validate their own required fields first — each missing
// field is a distinct, named error — then perform format-specific work.
type BuildFunc func(ctx context.Context, env Env, m *PlotMetadata) (Config, error)

// builders is the closed dispatch table over plot types. New kinds are
// added here, not in a central branch.
var builders = map[PlotType]BuildFunc{
	PlotConfusionMatrix: buildConfusionMatrix,
	PlotMarkdown:        buildMarkdown,
	PlotROC:             buildROCCurve,
	PlotTable:           buildPagedTable,
	PlotTensorboard:     buildTensorboard,
	PlotWebApp:          buildHTML,
}

// Build dispatches a metadata record to the builder for its plot type.
// An unrecognized type is an UNSUPPORTED error; the resolver treats it as
// a per-record failure like any other.
func Build(ctx context.Context, env Env, m *PlotMetadata) (Config, error) {
	fn, ok := builders[m.Type]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown plot type %q", m.Type)
	}

	observability.Resolver().OnBuildStart(ctx, string(m.Type))
	start := time.Now()
	cfg, err := fn(ctx, env, m)
	observability.Resolver().OnBuildComplete(ctx, string(m.Type), time.Since(start), err)
	return cfg, err
}
