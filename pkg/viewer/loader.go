package viewer

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/observability"
	"github.com/vizlens/vizlens/pkg/storage"
)

// Loader reads and validates the top-level output-metadata document.
type Loader struct {
	reader storage.Reader
	logger *log.Logger
}

// NewLoader creates a Loader that fetches documents through reader.
// Pass nil for logger to discard log output.
func NewLoader(reader storage.Reader, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Loader{reader: reader, logger: logger}
}

// Load reads the document at path and returns its ordered metadata records.
//
// The caller always receives a (possibly empty) list, never an error:
// an output-metadata file is optional, so a missing document, an
// unreadable document, or one that fails to parse as the OutputMetadata
// shape are all expected, recoverable conditions. They are logged and
// degrade to an empty sequence.
func (l *Loader) Load(ctx context.Context, path string) []PlotMetadata {
	observability.Resolver().OnLoadStart(ctx, path)

	records, err := l.load(ctx, path)
	observability.Resolver().OnLoadComplete(ctx, path, len(records), err)
	if err != nil {
		l.logger.Warn("Could not load output metadata", "path", path, "err", errors.UserMessage(err))
		return nil
	}
	return records
}

func (l *Loader) load(ctx context.Context, path string) ([]PlotMetadata, error) {
	loc, err := storage.Parse(path)
	if err != nil {
		return nil, err
	}

	data, err := l.reader.Read(ctx, loc)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			// No metadata file is the common case for runs without
			// declared visualizations.
			l.logger.Debug("No output metadata found", "path", path)
			return nil, nil
		}
		return nil, err
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var doc OutputMetadata
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "parse output metadata %s", path)
	}
	if doc.Outputs == nil {
		return nil, errors.New(errors.ErrCodeInvalidMetadata, "output metadata %s has no outputs array", path)
	}
	return doc.Outputs, nil
}
