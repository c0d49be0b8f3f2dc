package viewer

import (
	"context"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	const doc = `{
		"outputs": [
			{"type": "markdown", "source": "# hi", "storage": "inline"},
			{"type": "tensorboard", "source": "gs://bkt/logs"}
		]
	}`

	loader := NewLoader(memReader{"gs://bkt/metadata.json": doc}, nil)
	records := loader.Load(context.Background(), "gs://bkt/metadata.json")
	if len(records) != 2 {
		t.Fatalf("Load() returned %d records, want 2", len(records))
	}
	if records[0].Type != PlotMarkdown || records[1].Type != PlotTensorboard {
		t.Errorf("records out of order: %v", records)
	}
}

// Document-level failures degrade to an empty record list, never an error.
func TestLoaderLoadDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name  string
		files memReader
		path  string
	}{
		{"missing document", memReader{}, "gs://bkt/metadata.json"},
		{"malformed json", memReader{"gs://bkt/m.json": "{not json"}, "gs://bkt/m.json"},
		{"no outputs array", memReader{"gs://bkt/m.json": `{"version": 1}`}, "gs://bkt/m.json"},
		{"empty document", memReader{"gs://bkt/m.json": "  \n"}, "gs://bkt/m.json"},
		{"bad locator", memReader{}, "ftp://bkt/m.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := NewLoader(tt.files, nil).Load(context.Background(), tt.path)
			if len(records) != 0 {
				t.Errorf("Load() = %v, want empty", records)
			}
		})
	}
}

func TestLoaderLoadEmptyOutputs(t *testing.T) {
	loader := NewLoader(memReader{"gs://bkt/m.json": `{"outputs": []}`}, nil)
	records := loader.Load(context.Background(), "gs://bkt/m.json")
	if len(records) != 0 {
		t.Errorf("Load() = %v, want empty", records)
	}
}
