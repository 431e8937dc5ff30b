package driving

import (
	"context"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// StoreService exposes the Context Store's CRUD surface to external
// actors. All methods address documents by (fileKey, nodeID) identity;
// nodeID is empty for file-scoped documents.
type StoreService interface {
	// Get looks up a document, cache first. Absence is reported through
	// GetResult.Found, not an error.
	Get(ctx context.Context, fileKey, nodeID string, opts domain.GetOptions) (domain.GetResult, error)

	// Store fully replaces the document under its key and stamps
	// metadata.stored. Returns the stored document.
	Store(ctx context.Context, doc domain.ContextDocument) (*domain.ContextDocument, error)

	// Update shallow-merges the patch over the stored document (arrays
	// replace wholesale) and stamps metadata.updated. When no document
	// exists the patch is stored as a new document.
	Update(ctx context.Context, fileKey, nodeID string, patch domain.ContextPatch, opts domain.UpdateOptions) (*domain.ContextDocument, error)

	// Delete removes the document and evicts its cache entry.
	// Idempotent: deleting an absent key succeeds.
	Delete(ctx context.Context, fileKey, nodeID string) error

	// Summary returns the lightweight projection without the full
	// node/style/component arrays. Returns domain.ErrNotFound when no
	// document exists.
	Summary(ctx context.Context, fileKey, nodeID string) (*domain.ContextSummary, error)

	// IsStale reports whether a document's persisted timestamp is older
	// than the configured staleness threshold. Unstamped documents are
	// stale.
	IsStale(doc *domain.ContextDocument) bool
}
