package vizrender

import (
	"context"
	"encoding/json"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/viewer"
)

// scriptArguments is the payload shape for TypeCustom jobs.
type scriptArguments struct {
	Code []string `json:"code"`
}

// BuildScriptViewer renders an ad-hoc script against source and wraps the
// result as a web-app viewer config.
func BuildScriptViewer(ctx context.Context, c *Client, source string, code []string) (viewer.Config, error) {
	args, err := json.Marshal(scriptArguments{Code: code})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode script arguments")
	}
	html, err := c.Render(ctx, Request{Type: TypeCustom, Source: source, Arguments: args})
	if err != nil {
		return nil, err
	}
	return viewer.HTMLConfig{HTMLContent: html}, nil
}

// BuildCanonicalViewer renders a named service-side renderer against
// source and wraps the result as a web-app viewer config.
func BuildCanonicalViewer(ctx context.Context, c *Client, renderer, source string) (viewer.Config, error) {
	html, err := c.Render(ctx, Request{Type: renderer, Source: source})
	if err != nil {
		return nil, err
	}
	return viewer.HTMLConfig{HTMLContent: html}, nil
}
