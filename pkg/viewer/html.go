package viewer

import (
	"context"

	"github.com/vizlens/vizlens/pkg/storage"
)

// buildHTML fetches the content behind source verbatim as HTML.
func buildHTML(ctx context.Context, env Env, m *PlotMetadata) (Config, error) {
	if m.Source == "" {
		return nil, missingField(m.Type, "source")
	}
	loc, err := storage.Parse(m.Source)
	if err != nil {
		return nil, err
	}
	data, err := env.Reader.Read(ctx, loc)
	if err != nil {
		return nil, err
	}
	return HTMLConfig{HTMLContent: string(data)}, nil
}
