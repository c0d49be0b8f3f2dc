package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/vizlens/vizlens/pkg/errors"
)

// ObjectConfig holds connection settings for S3/GCS-compatible object storage.
type ObjectConfig struct {
	Endpoint  string // host:port of the object-storage gateway
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ObjectReader reads gs:// and minio:// locators from object storage
// through a MinIO client. The bucket is taken from each locator, so one
// reader serves every bucket the credentials can see.
type ObjectReader struct {
	mc *minio.Client
}

// NewObjectReader creates an object-storage Reader.
func NewObjectReader(cfg ObjectConfig) (*ObjectReader, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New(errors.ErrCodeInvalidSource, "object storage endpoint is required")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create object storage client")
	}
	return &ObjectReader{mc: mc}, nil
}

// Read fetches the full object behind a gs:// or minio:// locator.
// A missing object yields a NOT_FOUND error; other failures are NETWORK errors.
func (r *ObjectReader) Read(ctx context.Context, loc Locator) ([]byte, error) {
	if !loc.IsObject() {
		return nil, errors.New(errors.ErrCodeInvalidSource, "object reader cannot read %s locators", loc.Scheme)
	}

	obj, err := r.mc.GetObject(ctx, loc.Bucket, loc.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "get %s", loc)
	}
	defer obj.Close()

	// GetObject is lazy; Stat surfaces missing-object errors before reading.
	if _, err := obj.Stat(); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "stat %s", loc)
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "stat %s", loc)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read %s", loc)
	}
	return data, nil
}

// Ensure ObjectReader implements Reader.
var _ Reader = (*ObjectReader)(nil)
