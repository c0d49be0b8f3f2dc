package storage

import (
	"context"
	"os"

	"github.com/vizlens/vizlens/pkg/errors"
)

// Reader is the low-level file-read collaborator.
//
// Read fetches the full content behind a locator. Implementations return a
// NOT_FOUND error when the target does not exist and a NETWORK error for
// transport failures; callers convert these to display-ready messages
// before logging.
type Reader interface {
	Read(ctx context.Context, loc Locator) ([]byte, error)
}

// LocalReader reads file locators from the local filesystem.
type LocalReader struct{}

// NewLocalReader creates a filesystem-backed Reader.
func NewLocalReader() *LocalReader {
	return &LocalReader{}
}

// Read returns the content of a file locator. Object-storage locators are
// rejected: the caller should route those to an ObjectReader.
func (r *LocalReader) Read(_ context.Context, loc Locator) ([]byte, error) {
	if loc.Scheme != SchemeFile {
		return nil, errors.New(errors.ErrCodeInvalidSource, "local reader cannot read %s locators", loc.Scheme)
	}
	data, err := os.ReadFile(loc.Key)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read %s", loc.Key)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", loc.Key)
	}
	return data, nil
}

// Ensure LocalReader implements Reader.
var _ Reader = (*LocalReader)(nil)
