package viewer

import (
	"context"
	"strconv"
	"strings"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/storage"
)

// buildConfusionMatrix fetches CSV rows of (target, predicted, count)
// triples and assembles a labels×labels integer matrix.
//
// The row count must equal labels² exactly — every label pair appears
// once. Axis names come from the first two schema columns, independent of
// the labels or row content.
func buildConfusionMatrix(ctx context.Context, env Env, m *PlotMetadata) (Config, error) {
	if m.Source == "" {
		return nil, missingField(m.Type, "source")
	}
	if len(m.Labels) == 0 {
		return nil, missingField(m.Type, "labels")
	}
	if m.Schema == nil {
		return nil, missingField(m.Type, "schema")
	}
	if len(m.Schema) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidMetadata,
			"confusion matrix schema declares %d columns, want at least 2 for axis names", len(m.Schema))
	}

	rows, err := storage.FetchTable(ctx, env.Reader, m.Source)
	if err != nil {
		return nil, err
	}
	if want := len(m.Labels) * len(m.Labels); len(rows) != want {
		return nil, errors.New(errors.ErrCodeDimensionMismatch,
			"confusion matrix data has %d rows, want %d (labels²)", len(rows), want)
	}

	index := make(map[string]int, len(m.Labels))
	for i, label := range m.Labels {
		index[label] = i
	}

	data := make([][]int, len(m.Labels))
	for i := range data {
		data[i] = make([]int, len(m.Labels))
	}

	for _, row := range rows {
		if len(row) < 3 {
			return nil, errors.New(errors.ErrCodeInvalidMetadata,
				"confusion matrix row has %d fields, want 3 (target, predicted, count)", len(row))
		}
		target := strings.TrimSpace(row[0])
		predicted := strings.TrimSpace(row[1])

		ti, ok := index[target]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownLabel,
				"target label %q is not in the declared labels", target)
		}
		pi, ok := index[predicted]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownLabel,
				"predicted label %q is not in the declared labels", predicted)
		}

		count, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err,
				"parse count %q for (%s, %s)", row[2], target, predicted)
		}
		data[ti][pi] = count
	}

	return ConfusionMatrixConfig{
		Axes:   [2]string{m.Schema[0].Name, m.Schema[1].Name},
		Labels: m.Labels,
		Data:   data,
	}, nil
}
