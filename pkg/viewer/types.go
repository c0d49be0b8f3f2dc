// Package viewer resolves pipeline output metadata into renderer-ready
// visualization descriptors.
//
// This package implements the declarative resolution path: a pipeline run
// writes an output-metadata JSON document describing the visualizations it
// produced, and Resolver turns that document into a list of strongly-typed
// Config values a downstream renderer consumes. Nothing is rendered here —
// a Config is a language-agnostic description of what to render.
//
// # Architecture
//
// Resolution is a closed tagged-variant dispatch: every plot type maps to
// exactly one builder function with a uniform signature. Adding a plot type
// means adding one table entry, not modifying a central branch.
//
//	Loader   — reads and validates the output-metadata document
//	Build    — dispatches one metadata record to its builder
//	Resolver — orchestrates Loader + concurrent builds, aggregates results
//
// # Failure Policy
//
// Document-level failures (missing file, malformed JSON) degrade to an
// empty record list. Record-level failures (missing required field,
// dimension mismatch, fetch error) drop that single record. Partial
// success is the default: one malformed visualization never blocks the
// others.
package viewer

import "encoding/json"

// PlotType identifies a visualization kind.
type PlotType string

// Supported plot types.
const (
	PlotConfusionMatrix PlotType = "confusion_matrix"
	PlotMarkdown        PlotType = "markdown"
	PlotROC             PlotType = "roc"
	PlotTable           PlotType = "table"
	PlotTensorboard     PlotType = "tensorboard"
	PlotWebApp          PlotType = "web-app"
)

// Config is the resolved, renderer-ready descriptor for one visualization.
// It is a closed tagged union: exactly one concrete type per PlotType.
// Configs are constructed once per resolution call, immutable thereafter,
// and owned by the caller.
type Config interface {
	// Kind returns the plot type this config renders as.
	Kind() PlotType
}

// ConfusionMatrixConfig describes a labels×labels integer matrix.
type ConfusionMatrixConfig struct {
	// Axes holds the axis names, taken from the first two schema columns.
	Axes [2]string `json:"axes"`
	// Labels holds the class names, in declared order.
	Labels []string `json:"labels"`
	// Data is the labels×labels count matrix: Data[target][predicted].
	Data [][]int `json:"data"`
}

// PagedTableConfig describes a table of string cells with column labels.
type PagedTableConfig struct {
	Labels []string   `json:"labels"`
	Data   [][]string `json:"data"`
}

// TensorboardConfig points a Tensorboard viewer at a log directory.
type TensorboardConfig struct {
	URL string `json:"url"`
}

// HTMLConfig carries raw HTML content for a web-app viewer.
type HTMLConfig struct {
	HTMLContent string `json:"htmlContent"`
}

// MarkdownConfig carries raw markdown content.
type MarkdownConfig struct {
	MarkdownContent string `json:"markdownContent"`
}

// ROCPoint is one point on an ROC curve.
type ROCPoint struct {
	X     float64 `json:"x"`     // false positive rate
	Y     float64 `json:"y"`     // true positive rate
	Label string  `json:"label"` // threshold at this point
}

// ROCCurveConfig describes an ROC curve as a point series.
type ROCCurveConfig struct {
	Data []ROCPoint `json:"data"`
}

func (ConfusionMatrixConfig) Kind() PlotType { return PlotConfusionMatrix }
func (PagedTableConfig) Kind() PlotType      { return PlotTable }
func (TensorboardConfig) Kind() PlotType     { return PlotTensorboard }
func (HTMLConfig) Kind() PlotType            { return PlotWebApp }
func (MarkdownConfig) Kind() PlotType        { return PlotMarkdown }
func (ROCCurveConfig) Kind() PlotType        { return PlotROC }

// TaggedConfig is the serialization envelope for a Config: the plot type
// alongside the variant payload. This is the wire form the CLI and the
// HTTP API emit.
type TaggedConfig struct {
	Type   PlotType `json:"type"`
	Config Config   `json:"config"`
}

// Tag wraps configs in their serialization envelopes, preserving order.
func Tag(configs []Config) []TaggedConfig {
	tagged := make([]TaggedConfig, len(configs))
	for i, c := range configs {
		tagged[i] = TaggedConfig{Type: c.Kind(), Config: c}
	}
	return tagged
}

// MarshalConfigs encodes configs as a JSON array of tagged envelopes.
func MarshalConfigs(configs []Config) ([]byte, error) {
	return json.Marshal(Tag(configs))
}
