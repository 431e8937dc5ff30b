package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// Handler holds the API route handlers.
type Handler struct {
	ports *Ports
}

// NewHandler creates a new Handler.
func NewHandler(ports *Ports) *Handler {
	return &Handler{ports: ports}
}

// fileKey extracts the fileKey path parameter.
func fileKey(r *http.Request) string {
	return chi.URLParam(r, "fileKey")
}

// handleServiceError translates a service failure into an envelope.
// Sentinel inspection keeps client mistakes out of the 5xx bucket.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmptyFileKey), errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrConfidenceRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrSourceUnavailable), errors.Is(err, domain.ErrStoreUnavailable),
		errors.Is(err, domain.ErrScreenshotUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.Error("http: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Extract handles POST /api/files/{fileKey}/extract.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	result, err := h.ports.Context.ExtractAndStore(r.Context(), fileKey(r), domain.ExtractOptions{})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, result)
}

// GetContext handles GET /api/files/{fileKey}/context.
// Query parameters: node (node-scoped lookup), noCache (bypass the TTL
// cache). Absence is a success envelope with null data.
func (h *Handler) GetContext(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := domain.GetOptions{SkipCache: q.Get("noCache") == "true"}

	result, err := h.ports.Store.Get(r.Context(), fileKey(r), q.Get("node"), opts)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if !result.Found {
		writeData(w, http.StatusOK, nil)
		return
	}
	writeData(w, http.StatusOK, result)
}

// UpdateContext handles PATCH /api/files/{fileKey}/context with a
// ContextPatch body: shallow merge, whole-array replace.
func (h *Handler) UpdateContext(w http.ResponseWriter, r *http.Request) {
	var patch domain.ContextPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid patch body: "+err.Error())
		return
	}

	node := r.URL.Query().Get("node")
	doc, err := h.ports.Store.Update(r.Context(), fileKey(r), node, patch, domain.UpdateOptions{})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, doc)
}

// DeleteContext handles DELETE /api/files/{fileKey}/context. Idempotent:
// deleting an absent document succeeds.
func (h *Handler) DeleteContext(w http.ResponseWriter, r *http.Request) {
	node := r.URL.Query().Get("node")
	if err := h.ports.Store.Delete(r.Context(), fileKey(r), node); err != nil {
		handleServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Summary handles GET /api/files/{fileKey}/summary.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	node := r.URL.Query().Get("node")
	summary, err := h.ports.Store.Summary(r.Context(), fileKey(r), node)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, summary)
}

// Setup handles POST /api/files/{fileKey}/setup.
func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	report, err := h.ports.Context.QuickSetup(r.Context(), fileKey(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, report)
}

// Search handles GET /api/search.
// Query parameters: q (required), fileKeys and nodeTypes
// (comma-separated), limit.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	opts := domain.SearchOptions{
		FileKeys:  splitList(q.Get("fileKeys")),
		NodeTypes: splitList(q.Get("nodeTypes")),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		opts.Limit = limit
	}

	report, err := h.ports.Search.Search(r.Context(), query, opts)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, report)
}

// batchRequest is the POST /api/batch body.
type batchRequest struct {
	FileKeys      []string `json:"fileKeys"`
	MaxConcurrent int      `json:"maxConcurrent,omitempty"`
}

// Batch handles POST /api/batch.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid batch body: "+err.Error())
		return
	}
	if len(req.FileKeys) == 0 {
		writeError(w, http.StatusBadRequest, "fileKeys must not be empty")
		return
	}

	report, err := h.ports.Context.ProcessBatch(r.Context(), req.FileKeys, domain.BatchOptions{
		MaxConcurrent: req.MaxConcurrent,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, report)
}

// splitList parses a comma-separated query value into a slice, dropping
// empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
