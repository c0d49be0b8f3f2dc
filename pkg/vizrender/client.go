// Package vizrender calls the visualization rendering service, which
// executes a named renderer (or an ad-hoc script) against a data source
// and returns self-contained HTML.
package vizrender

import (
	"context"
	"encoding/json"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/httputil"
)

// TypeCustom asks the service to execute the script passed in Arguments
// instead of a canonical renderer.
const TypeCustom = "custom"

// Request describes one render job.
type Request struct {
	// Type is the renderer name, e.g. "tfma", or TypeCustom.
	Type string `json:"type"`
	// Source is the data location the renderer reads.
	Source string `json:"source"`
	// Arguments is a renderer-specific JSON object. For TypeCustom it
	// carries {"code": ["...", ...]}.
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Response is the rendered result.
type Response struct {
	HTMLContent string `json:"htmlContent"`
}

// Client talks to the rendering service.
type Client struct {
	base string
	http *httputil.Client
}

// NewClient creates a Client for the service at base, e.g.
// "http://visualization-service:8888".
func NewClient(base string) *Client {
	return &Client{base: base, http: httputil.NewClient(nil)}
}

// Render submits the job and returns the rendered HTML. An empty
// htmlContent in the service reply is a RENDER_FAILED error: the service
// answered but produced nothing displayable.
func (c *Client) Render(ctx context.Context, req Request) (string, error) {
	var resp Response
	if err := c.http.PostJSON(ctx, c.base+"/render", req, &resp); err != nil {
		return "", errors.Wrap(errors.ErrCodeNetwork, err, "render %s", req.Type)
	}
	if resp.HTMLContent == "" {
		return "", errors.New(errors.ErrCodeRenderFailed, "renderer %s returned no content for %s", req.Type, req.Source)
	}
	return resp.HTMLContent, nil
}
