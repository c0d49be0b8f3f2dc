package viewer

import (
	"context"

	"github.com/vizlens/vizlens/pkg/storage"
)

// buildMarkdown resolves markdown content. With inline storage the source
// IS the markdown text; otherwise the source is a locator to fetch.
func buildMarkdown(ctx context.Context, env Env, m *PlotMetadata) (Config, error) {
	if m.Source == "" {
		return nil, missingField(m.Type, "source")
	}
	if m.Storage == StorageInline {
		return MarkdownConfig{MarkdownContent: m.Source}, nil
	}
	loc, err := storage.Parse(m.Source)
	if err != nil {
		return nil, err
	}
	data, err := env.Reader.Read(ctx, loc)
	if err != nil {
		return nil, err
	}
	return MarkdownConfig{MarkdownContent: string(data)}, nil
}
