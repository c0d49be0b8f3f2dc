package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizlens/vizlens/internal/config"
	"github.com/vizlens/vizlens/pkg/observability"
	"github.com/vizlens/vizlens/pkg/viewer"
)

// testServer builds a Server against the given metadata endpoint with
// caching enabled (file backend in a temp dir).
func testServer(t *testing.T, metadataEndpoint string) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Metadata.Endpoint = metadataEndpoint
	cfg.Cache.Backend = config.CacheFile
	cfg.Cache.Dir = t.TempDir()

	s, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(observability.Reset)
	return s
}

// emptyMetadataStore answers every store call with an empty body and
// counts requests.
func emptyMetadataStore(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestHealthz(t *testing.T) {
	s := testServer(t, "http://unused")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t, "http://unused")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveInlineOutputs(t *testing.T) {
	s := testServer(t, "http://unused")

	body := `{"outputs": [
		{"type": "markdown", "source": "# hello", "storage": "inline"},
		{"type": "sunburst", "source": "x"}
	]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/resolve", strings.NewReader(body))
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp viewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Views, 1, "the unknown type is dropped, the markdown survives")
	assert.Equal(t, viewer.PlotMarkdown, resp.Views[0].Type)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestResolveRejectsEmptyRequest(t *testing.T) {
	s := testServer(t, "http://unused")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/resolve", strings.NewReader(`{}`))
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiscoverInvalidPodName(t *testing.T) {
	s := testServer(t, "http://unused")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/discover/short-name", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiscoverUnknownRunIsEmptyAndCached(t *testing.T) {
	store, calls := emptyMetadataStore(t)
	s := testServer(t, store.URL)

	get := func() viewsResponse {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/discover/taxi-run1-pod2", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp viewsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first := get()
	assert.Empty(t, first.Views)
	after := *calls
	assert.Positive(t, after)

	second := get()
	assert.Empty(t, second.Views)
	assert.Equal(t, after, *calls, "second request must be served from cache")
}

func TestLineageUnknownRunIs404(t *testing.T) {
	store, _ := emptyMetadataStore(t)
	s := testServer(t, store.URL)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/lineage/taxi-run1-pod2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
