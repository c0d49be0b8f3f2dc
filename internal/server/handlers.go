package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vizlens/vizlens/pkg/cache"
	"github.com/vizlens/vizlens/pkg/errors"
	"github.com/vizlens/vizlens/pkg/lineage"
	"github.com/vizlens/vizlens/pkg/observability"
	"github.com/vizlens/vizlens/pkg/viewer"
)

// resolveRequest accepts either a document location or the document body.
// Exactly one of the two must be set.
type resolveRequest struct {
	Path    string                `json:"path,omitempty"`
	Outputs []viewer.PlotMetadata `json:"outputs,omitempty"`
}

// viewsResponse is the reply shape shared by resolve and discover.
type viewsResponse struct {
	Views []viewer.TaggedConfig `json:"views"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Path == "" && req.Outputs == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "one of path or outputs is required"})
		return
	}

	var configs []viewer.Config
	if req.Path != "" {
		configs = s.resolver.Resolve(r.Context(), req.Path)
	} else {
		configs = s.resolver.ResolveRecords(r.Context(), req.Outputs)
	}
	writeJSON(w, http.StatusOK, viewsResponse{Views: tagged(configs)})
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	pod := chi.URLParam(r, "pod")
	key := "discover:" + cache.Hash([]byte(pod))

	if body, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		observability.Cache().OnCacheHit(r.Context(), "discover")
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "discover")

	configs, err := s.discovery.Discover(r.Context(), pod, nil)
	if err != nil {
		s.writeError(w, err)
		return
	}

	body, err := json.Marshal(viewsResponse{Views: tagged(configs)})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.cache.Set(r.Context(), key, body, s.cacheTTL); err != nil {
		s.logger.Warn("Cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), "discover", len(body))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (s *Server) handleLineage(w http.ResponseWriter, r *http.Request) {
	pod := chi.URLParam(r, "pod")

	trace, err := s.discovery.Trace(r.Context(), pod, nil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if trace.Empty() {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: "no recorded run for pod " + pod,
			Code:  string(errors.ErrCodeNotFound),
		})
		return
	}

	svg, err := lineage.RenderSVG(lineage.ToDOT(trace))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func tagged(configs []viewer.Config) []viewer.TaggedConfig {
	t := viewer.Tag(configs)
	if t == nil {
		t = []viewer.TaggedConfig{}
	}
	return t
}

// writeError maps error codes onto HTTP statuses: caller mistakes are
// 4xx, upstream failures are 502, everything else is 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidPodName, errors.ErrCodeInvalidMetadata,
		errors.ErrCodeInvalidSource, errors.ErrCodeMissingField:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout, errors.ErrCodeRenderFailed:
		status = http.StatusBadGateway
	}

	if status >= 500 {
		s.logger.Error("Request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
