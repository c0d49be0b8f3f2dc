package viewer

import (
	"github.com/vizlens/vizlens/pkg/errors"
)

// Storage modes for PlotMetadata.Source.
const (
	// StorageGCS marks Source as an object-storage locator.
	StorageGCS = "gcs"
	// StorageInline marks Source as the literal content itself.
	StorageInline = "inline"
)

// FormatCSV is the only supported tabular data format.
const FormatCSV = "csv"

// SchemaColumn describes one column of tabular source data.
type SchemaColumn struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// PlotMetadata is one visualization request from an output-metadata
// document. Type determines which of the optional fields are mandatory;
// the absence of a mandatory field is a validation error for that single
// record, never for the whole document.
type PlotMetadata struct {
	Type    PlotType `json:"type"`
	Source  string   `json:"source"`
	Storage string   `json:"storage,omitempty"` // "gcs" or "inline"

	Header []string       `json:"header,omitempty"` // column labels for tables
	Labels []string       `json:"labels,omitempty"` // class names for confusion matrices
	Schema []SchemaColumn `json:"schema,omitempty"` // column descriptors for confusion matrix/roc
	Format string         `json:"format,omitempty"` // only "csv"

	// Reserved fields, parsed but unused by current builders.
	PredictedCol string `json:"predicted_col,omitempty"`
	TargetCol    string `json:"target_col,omitempty"`
}

// OutputMetadata is the top-level document wrapper. The document must
// deserialize to an object exposing a defined outputs array; anything else
// is a document-level failure.
type OutputMetadata struct {
	Outputs []PlotMetadata `json:"outputs"`
}

// missingField builds the distinct, named error for an absent mandatory field.
func missingField(kind PlotType, field string) error {
	return errors.New(errors.ErrCodeMissingField, "%s metadata is missing required field %q", kind, field)
}
