package viewer

import (
	"context"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/storage"
)

// buildPagedTable fetches CSV rows and pairs them with the declared column
// labels. Both the declared format and the actual content must be CSV —
// there is no content sniffing.
func buildPagedTable(ctx context.Context, env Env, m *PlotMetadata) (Config, error) {
	if m.Source == "" {
		return nil, missingField(m.Type, "source")
	}
	if len(m.Header) == 0 {
		return nil, missingField(m.Type, "header")
	}
	if m.Format == "" {
		return nil, missingField(m.Type, "format")
	}
	if m.Format != FormatCSV {
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported table format %q, want %q", m.Format, FormatCSV)
	}

	rows, err := storage.FetchTable(ctx, env.Reader, m.Source)
	if err != nil {
		return nil, err
	}

	return PagedTableConfig{Labels: m.Header, Data: rows}, nil
}
