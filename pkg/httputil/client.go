package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vizlens/vizlens/pkg/observability"
)

// ErrNotFound is returned when a remote resource does not exist (HTTP 404).
var ErrNotFound = errors.New("not found")

// ErrNetwork is returned for transport failures (timeouts, connection
// errors, 5xx responses).
var ErrNetwork = errors.New("network error")

// NewHTTPClient returns an *http.Client with a sane default timeout for
// service-to-service calls.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// Client provides shared HTTP functionality for service API clients.
// It handles retry logic, JSON encoding/decoding, common request headers,
// and observability hooks.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		headers: headers,
	}
}

// GetJSON performs an HTTP GET request and JSON-decodes the response into v.
// Transient failures are retried with exponential backoff.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	return RetryWithBackoff(ctx, func() error {
		body, err := c.do(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		defer body.Close()
		return json.NewDecoder(body).Decode(v)
	})
}

// GetText performs an HTTP GET request and returns the response body as a
// string. Useful for non-JSON endpoints like raw file content.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	var text string
	err := RetryWithBackoff(ctx, func() error {
		body, err := c.do(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		defer body.Close()
		data, err := io.ReadAll(body)
		if err != nil {
			return err
		}
		text = string(data)
		return nil
	})
	return text, err
}

// PostJSON performs an HTTP POST with a JSON-encoded request body and
// JSON-decodes the response into v. Pass nil for v to discard the response.
func (c *Client) PostJSON(ctx context.Context, url string, req, v any) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return RetryWithBackoff(ctx, func() error {
		body, err := c.do(ctx, http.MethodPost, url, payload)
		if err != nil {
			return err
		}
		defer body.Close()
		if v == nil {
			return nil
		}
		return json.NewDecoder(body).Decode(v)
	})
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte) (io.ReadCloser, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	observability.HTTP().OnRequest(ctx, method, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, method, req.URL.Host, req.URL.Path, err)
		return nil, &RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	observability.HTTP().OnResponse(ctx, method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
