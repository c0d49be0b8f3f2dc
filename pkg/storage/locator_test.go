package storage

import (
	"testing"

	"github.com/vizlens/vizlens/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    Locator
		wantErr bool
	}{
		{"gcs", "gs://bucket/path/to/data.csv", Locator{Scheme: "gs", Bucket: "bucket", Key: "path/to/data.csv"}, false},
		{"minio", "minio://mlpipeline/artifacts/run1/roc.csv", Locator{Scheme: "minio", Bucket: "mlpipeline", Key: "artifacts/run1/roc.csv"}, false},
		{"plain path", "/tmp/output.json", Locator{Scheme: "file", Key: "/tmp/output.json"}, false},
		{"relative path", "testdata/rows.csv", Locator{Scheme: "file", Key: "testdata/rows.csv"}, false},

		{"empty", "", Locator{}, true},
		{"unsupported scheme", "ftp://bucket/key", Locator{}, true},
		{"missing key", "gs://bucket", Locator{}, true},
		{"missing bucket", "gs:///key", Locator{}, true},
		{"empty key", "gs://bucket/", Locator{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.source)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.source, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidSource) {
					t.Errorf("Parse(%q) error code = %v, want INVALID_SOURCE", tt.source, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.source, got, tt.want)
			}
		})
	}
}

func TestLocatorString(t *testing.T) {
	round := []string{
		"gs://bucket/path/to/data.csv",
		"minio://mlpipeline/artifacts/run1/roc.csv",
		"/tmp/output.json",
	}
	for _, source := range round {
		loc, err := Parse(source)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", source, err)
		}
		if got := loc.String(); got != source {
			t.Errorf("String() = %q, want %q", got, source)
		}
	}
}

func TestIsObject(t *testing.T) {
	obj, _ := Parse("gs://b/k")
	if !obj.IsObject() {
		t.Error("gs locator should be an object locator")
	}
	file, _ := Parse("/tmp/x")
	if file.IsObject() {
		t.Error("file locator should not be an object locator")
	}
}
