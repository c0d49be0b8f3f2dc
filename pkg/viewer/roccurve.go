package viewer

import (
	"context"
	"strconv"
	"strings"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/storage"
)

// buildROCCurve locates the fpr, tpr, and threshold columns in the declared
// schema and parses each CSV row into one curve point.
//
// Column matching: "fpr" and "tpr" match exactly; the threshold column is
// the first whose name starts with "threshold" (prefix match — runtimes
// emit variants like "threshold_0.5"). Each missing column is a distinct,
// named error.
func buildROCCurve(ctx context.Context, env Env, m *PlotMetadata) (Config, error) {
	if m.Source == "" {
		return nil, missingField(m.Type, "source")
	}
	if m.Schema == nil {
		return nil, missingField(m.Type, "schema")
	}

	fpr := findColumn(m.Schema, func(name string) bool { return name == "fpr" })
	if fpr < 0 {
		return nil, errors.New(errors.ErrCodeMissingColumn, "roc schema is missing the fpr column")
	}
	tpr := findColumn(m.Schema, func(name string) bool { return name == "tpr" })
	if tpr < 0 {
		return nil, errors.New(errors.ErrCodeMissingColumn, "roc schema is missing the tpr column")
	}
	threshold := findColumn(m.Schema, func(name string) bool { return strings.HasPrefix(name, "threshold") })
	if threshold < 0 {
		return nil, errors.New(errors.ErrCodeMissingColumn, "roc schema is missing a threshold* column")
	}

	rows, err := storage.FetchTable(ctx, env.Reader, m.Source)
	if err != nil {
		return nil, err
	}

	points := make([]ROCPoint, 0, len(rows))
	for _, row := range rows {
		if w := max(fpr, tpr, threshold); len(row) <= w {
			return nil, errors.New(errors.ErrCodeInvalidMetadata,
				"roc row has %d fields, want at least %d", len(row), w+1)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[fpr]), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "parse fpr %q", row[fpr])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[tpr]), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "parse tpr %q", row[tpr])
		}
		points = append(points, ROCPoint{X: x, Y: y, Label: strings.TrimSpace(row[threshold])})
	}

	return ROCCurveConfig{Data: points}, nil
}

// findColumn returns the index of the first schema column whose name
// satisfies match, or -1 if none does.
func findColumn(schema []SchemaColumn, match func(string) bool) int {
	for i, col := range schema {
		if match(col.Name) {
			return i
		}
	}
	return -1
}
