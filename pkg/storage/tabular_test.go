package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vizlens/vizlens/pkg/errors"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFetchTable(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    [][]string
	}{
		{"simple", "1,2\n3,4", [][]string{{"1", "2"}, {"3", "4"}}},
		{"trailing newline", "1,2\n3,4\n", [][]string{{"1", "2"}, {"3", "4"}}},
		{"quoted fields", "\"a,b\",c\nd,e", [][]string{{"a,b", "c"}, {"d", "e"}}},
		{"uneven rows", "a,b,c\nd,e", [][]string{{"a", "b", "c"}, {"d", "e"}}},
		{"leading space", "a, b\nc, d", [][]string{{"a", "b"}, {"c", "d"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.content)
			rows, err := FetchTable(context.Background(), NewLocalReader(), path)
			if err != nil {
				t.Fatalf("FetchTable error: %v", err)
			}
			if !reflect.DeepEqual(rows, tt.want) {
				t.Errorf("FetchTable = %v, want %v", rows, tt.want)
			}
		})
	}
}

func TestFetchTableMissingFile(t *testing.T) {
	_, err := FetchTable(context.Background(), NewLocalReader(), filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error code = %v, want NOT_FOUND", errors.GetCode(err))
	}
}

func TestFetchTableBadLocator(t *testing.T) {
	_, err := FetchTable(context.Background(), NewLocalReader(), "ftp://bucket/key")
	if !errors.Is(err, errors.ErrCodeInvalidSource) {
		t.Errorf("error code = %v, want INVALID_SOURCE", errors.GetCode(err))
	}
}
