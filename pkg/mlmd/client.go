package mlmd

import (
	"context"
	"strconv"

	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/httputil"
)

// servicePath is the gRPC-gateway route prefix the metadata proxy exposes.
const servicePath = "/ml_metadata.MetadataStoreService/"

// Client talks to a metadata store through its gRPC-gateway JSON proxy.
// It implements Store.
type Client struct {
	base string
	http *httputil.Client
}

// NewClient creates a Store over the proxy at base, e.g.
// "http://metadata-envoy:9090".
func NewClient(base string) *Client {
	return &Client{
		base: base,
		http: httputil.NewClient(nil),
	}
}

func (c *Client) call(ctx context.Context, method string, req, resp any) error {
	err := c.http.PostJSON(ctx, c.base+servicePath+method, req, resp)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "metadata store %s", method)
	}
	return nil
}

func (c *Client) GetArtifactTypes(ctx context.Context) ([]ArtifactType, error) {
	var resp struct {
		ArtifactTypes []ArtifactType `json:"artifactTypes"`
	}
	if err := c.call(ctx, "GetArtifactTypes", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.ArtifactTypes, nil
}

func (c *Client) GetContextByTypeAndName(ctx context.Context, typeName, contextName string) (*Context, error) {
	req := struct {
		TypeName    string `json:"typeName"`
		ContextName string `json:"contextName"`
	}{typeName, contextName}
	var resp struct {
		Context *Context `json:"context"`
	}
	if err := c.call(ctx, "GetContextByTypeAndName", req, &resp); err != nil {
		return nil, err
	}
	// The store answers an unknown context with an empty body, not an
	// error status.
	return resp.Context, nil
}

func (c *Client) GetExecutionsByContext(ctx context.Context, contextID int64) ([]Execution, error) {
	req := struct {
		ContextID string `json:"contextId"`
	}{strconv.FormatInt(contextID, 10)}
	var resp struct {
		Executions []Execution `json:"executions"`
	}
	if err := c.call(ctx, "GetExecutionsByContext", req, &resp); err != nil {
		return nil, err
	}
	return resp.Executions, nil
}

func (c *Client) GetEventsByExecutionIDs(ctx context.Context, executionIDs []int64) ([]Event, error) {
	req := struct {
		ExecutionIDs []string `json:"executionIds"`
	}{formatIDs(executionIDs)}
	var resp struct {
		Events []Event `json:"events"`
	}
	if err := c.call(ctx, "GetEventsByExecutionIDs", req, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *Client) GetArtifactsByID(ctx context.Context, artifactIDs []int64) ([]Artifact, error) {
	req := struct {
		ArtifactIDs []string `json:"artifactIds"`
	}{formatIDs(artifactIDs)}
	var resp struct {
		Artifacts []Artifact `json:"artifacts"`
	}
	if err := c.call(ctx, "GetArtifactsByID", req, &resp); err != nil {
		return nil, err
	}
	return resp.Artifacts, nil
}

func formatIDs(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return out
}

var _ Store = (*Client)(nil)
