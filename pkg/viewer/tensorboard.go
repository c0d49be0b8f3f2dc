package viewer

import (
	"context"

	"github.com/vizlens/vizlens/pkg/storage"
)

// buildTensorboard validates that the source parses as a storage locator
// and passes the raw source string through as the display URL. The viewer
// itself resolves the log directory; this builder only fails fast on
// malformed paths.
func buildTensorboard(_ context.Context, _ Env, m *PlotMetadata) (Config, error) {
	if m.Source == "" {
		return nil, missingField(m.Type, "source")
	}
	if _, err := storage.Parse(m.Source); err != nil {
		return nil, err
	}
	return TensorboardConfig{URL: m.Source}, nil
}
