package mcp

import (
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Context runs the extraction pipeline.
	Context driving.ContextService

	// Store exposes stored context documents.
	Store driving.StoreService

	// Search scans stored documents.
	Search driving.SearchService

	// Backing is used by the contexts listing resource. Optional: without
	// it the listing resource reports an empty store.
	Backing driven.BackingStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Context == nil {
		return ErrMissingContextService
	}
	if p.Store == nil {
		return ErrMissingStoreService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
