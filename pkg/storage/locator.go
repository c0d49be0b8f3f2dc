// Package storage provides storage locators and content readers.
//
// A Locator is a parsed reference to externally stored content — an
// object-storage path like "gs://bucket/key" or a plain file path. The
// Reader interface is the low-level read primitive every consumer uses:
// the metadata document loader, the tabular fetcher, and the HTML/markdown
// builders all fetch content through it.
//
// Implementations:
//   - LocalReader: plain filesystem reads, used by the CLI and tests
//   - ObjectReader: S3/GCS-compatible object storage via MinIO
package storage

import (
	"fmt"
	"strings"

	"github.com/vizlens/vizlens/pkg/errors"
)

// Schemes recognized by Parse.
const (
	SchemeGCS   = "gs"
	SchemeMinio = "minio"
	SchemeFile  = "file"
)

// Locator is a parsed reference to externally stored content.
type Locator struct {
	Scheme string // "gs", "minio", or "file"
	Bucket string // bucket name; empty for file locators
	Key    string // object key or file path
}

// Parse converts a source string into a Locator.
//
// Supported forms:
//
//	gs://bucket/path/to/object
//	minio://bucket/path/to/object
//	/plain/file/path  (or any string without a scheme → file locator)
//
// Returns an INVALID_SOURCE error for malformed locators: a scheme with no
// bucket, a bucket with no key, or an unsupported scheme.
func Parse(source string) (Locator, error) {
	scheme, rest, found := strings.Cut(source, "://")
	if !found {
		if source == "" {
			return Locator{}, errors.New(errors.ErrCodeInvalidSource, "empty source")
		}
		return Locator{Scheme: SchemeFile, Key: source}, nil
	}

	switch scheme {
	case SchemeGCS, SchemeMinio:
	default:
		return Locator{}, errors.New(errors.ErrCodeInvalidSource, "unsupported scheme %q in %q", scheme, source)
	}

	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return Locator{}, errors.New(errors.ErrCodeInvalidSource, "malformed locator %q: want %s://bucket/key", source, scheme)
	}

	return Locator{Scheme: scheme, Bucket: bucket, Key: key}, nil
}

// String reassembles the locator into its source form.
func (l Locator) String() string {
	if l.Scheme == SchemeFile {
		return l.Key
	}
	return fmt.Sprintf("%s://%s/%s", l.Scheme, l.Bucket, l.Key)
}

// IsObject reports whether the locator points into object storage.
func (l Locator) IsObject() bool {
	return l.Scheme == SchemeGCS || l.Scheme == SchemeMinio
}
