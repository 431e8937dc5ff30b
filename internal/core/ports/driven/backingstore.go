package driven

import (
	"context"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// BackingStore is the durable key-value persistence service behind the
// Context Store. Keys are built with domain.ContextKey. The backing store
// is authoritative; the TTL cache in front of it is disposable.
type BackingStore interface {
	// Get retrieves a document by key.
	// Returns domain.ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (*domain.ContextDocument, error)

	// Put stores or fully replaces a document under key.
	Put(ctx context.Context, key string, doc *domain.ContextDocument) error

	// Delete removes a document by key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// List returns all stored documents. Order is stable across calls
	// for an unchanged store.
	List(ctx context.Context) ([]domain.ContextDocument, error)

	// Keys returns all stored keys in the same stable order as List.
	Keys(ctx context.Context) ([]string, error)
}
