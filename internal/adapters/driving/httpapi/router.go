package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/designctx-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the API serves.
type Ports struct {
	// Context runs the extraction pipeline.
	Context driving.ContextService

	// Store exposes the Context Store CRUD surface.
	Store driving.StoreService

	// Search scans stored documents.
	Search driving.SearchService
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p.Context == nil {
		return errors.New("httpapi: context service is required")
	}
	if p.Store == nil {
		return errors.New("httpapi: store service is required")
	}
	if p.Search == nil {
		return errors.New("httpapi: search service is required")
	}
	return nil
}

// NewRouter creates a chi router with all API routes mounted under /api.
// A non-empty token enables Bearer auth on every route except /api/health.
func NewRouter(ports *Ports, token string) (chi.Router, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	h := NewHandler(ports)

	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(token))

			r.Route("/files/{fileKey}", func(r chi.Router) {
				r.Post("/extract", h.Extract)
				r.Get("/context", h.GetContext)
				r.Patch("/context", h.UpdateContext)
				r.Delete("/context", h.DeleteContext)
				r.Get("/summary", h.Summary)
				r.Post("/setup", h.Setup)
			})

			r.Get("/search", h.Search)
			r.Post("/batch", h.Batch)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "unknown endpoint")
	})

	return r, nil
}
