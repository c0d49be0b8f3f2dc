package storage

import (
	"context"
	"encoding/csv"
	"strings"

	"github.com/vizlens/vizlens/pkg/errors"
)

// FetchTable reads the content behind source and parses it as CSV rows.
//
// The parser is standards-compliant (quoted fields, embedded commas) and
// assumes no header row: callers index columns by position or by a declared
// schema, never by a parsed header. Surrounding whitespace and trailing
// newlines are trimmed before parsing, and rows may vary in width.
func FetchTable(ctx context.Context, r Reader, source string) ([][]string, error) {
	loc, err := Parse(source)
	if err != nil {
		return nil, err
	}

	data, err := r.Read(ctx, loc)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(strings.TrimSpace(string(data))))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse csv from %s", source)
	}
	return rows, nil
}
