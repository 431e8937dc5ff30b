// Package store implements the context store: a TTL cache in front of a
// durable backing store, keyed by (fileKey, nodeID) identity. The backing
// store is authoritative; cache entries expire passively and are never
// treated as hits past their TTL.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driving"
	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// Cache and staleness defaults, overridable through Options.
const (
	DefaultTTL        = 5 * time.Minute
	DefaultMaxEntries = 512
	DefaultStaleAfter = time.Hour
)

// Options tune the cache and staleness behaviour of a ContextStore.
// Zero values select the defaults.
type Options struct {
	// TTL is how long a cache entry is served before lookups fall
	// through to the backing store again.
	TTL time.Duration

	// MaxEntries bounds the cache; least-recently-used entries are
	// evicted beyond it.
	MaxEntries int

	// StaleAfter is the document age beyond which IsStale reports true
	// and enriched lookups re-extract.
	StaleAfter time.Duration
}

// ContextStore serves context documents cache-first and writes through to
// the backing store. Safe for concurrent use.
type ContextStore struct {
	backing    driven.BackingStore
	cache      *expirable.LRU[string, domain.ContextDocument]
	staleAfter time.Duration
}

// Compile-time check that ContextStore implements the driving port.
var _ driving.StoreService = (*ContextStore)(nil)

// New creates a ContextStore over the given backing store.
func New(backing driven.BackingStore, opts Options) *ContextStore {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = DefaultStaleAfter
	}
	return &ContextStore{
		backing:    backing,
		cache:      expirable.NewLRU[string, domain.ContextDocument](opts.MaxEntries, nil, opts.TTL),
		staleAfter: opts.StaleAfter,
	}
}

// Get looks up a document cache-first. Absence is a normal result, not an
// error: Found is false and Document is nil.
func (s *ContextStore) Get(ctx context.Context, fileKey, nodeID string, opts domain.GetOptions) (domain.GetResult, error) {
	if fileKey == "" {
		return domain.GetResult{}, domain.ErrEmptyFileKey
	}
	key := domain.ContextKey(fileKey, nodeID)

	if !opts.SkipCache {
		if doc, ok := s.cache.Get(key); ok {
			logger.Debug("context store: cache hit for %s", key)
			return domain.GetResult{Found: true, Cached: true, Document: &doc}, nil
		}
	}

	doc, err := s.backing.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.GetResult{}, nil
		}
		return domain.GetResult{}, fmt.Errorf("reading context %s: %w", key, err)
	}

	if !opts.SkipCache {
		s.cache.Add(key, *doc)
	}
	return domain.GetResult{Found: true, Cached: false, Document: doc}, nil
}

// Store fully replaces the document under its key, stamps metadata.stored
// and refreshes the cache entry.
func (s *ContextStore) Store(ctx context.Context, doc domain.ContextDocument) (*domain.ContextDocument, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	doc.Metadata.Stored = time.Now().UTC().Format(domain.TimestampLayout)
	key := doc.Key()

	if err := s.backing.Put(ctx, key, &doc); err != nil {
		return nil, fmt.Errorf("writing context %s: %w", key, err)
	}
	s.cache.Add(key, doc)

	logger.Debug("context store: stored %s (confidence %.2f, %d nodes)", key, doc.Confidence, len(doc.Nodes))
	return &doc, nil
}

// Update shallow-merges the patch over the stored document and stamps
// metadata.updated. Arrays present in the patch replace the stored arrays
// wholesale. When no document exists the merged result is stored as new.
// With opts.Replace the patch is applied to an empty document instead of
// the stored one.
func (s *ContextStore) Update(ctx context.Context, fileKey, nodeID string, patch domain.ContextPatch, opts domain.UpdateOptions) (*domain.ContextDocument, error) {
	if fileKey == "" {
		return nil, domain.ErrEmptyFileKey
	}
	key := domain.ContextKey(fileKey, nodeID)

	base := domain.ContextDocument{FileKey: fileKey, NodeID: nodeID}
	existed := false
	if !opts.Replace {
		stored, err := s.backing.Get(ctx, key)
		switch {
		case err == nil:
			base = *stored
			existed = true
		case errors.Is(err, domain.ErrNotFound):
			// Absent documents make update behave like store.
		default:
			return nil, fmt.Errorf("reading context %s: %w", key, err)
		}
	}

	merged := patch.Apply(base)
	merged.FileKey = fileKey
	merged.NodeID = nodeID

	now := time.Now().UTC().Format(domain.TimestampLayout)
	merged.Metadata.Updated = now
	if !existed {
		merged.Metadata.Stored = now
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if err := s.backing.Put(ctx, key, &merged); err != nil {
		return nil, fmt.Errorf("writing context %s: %w", key, err)
	}
	s.cache.Add(key, merged)

	logger.Debug("context store: updated %s", key)
	return &merged, nil
}

// Delete removes the document and evicts its cache entry. Deleting an
// absent key succeeds.
func (s *ContextStore) Delete(ctx context.Context, fileKey, nodeID string) error {
	if fileKey == "" {
		return domain.ErrEmptyFileKey
	}
	key := domain.ContextKey(fileKey, nodeID)

	if err := s.backing.Delete(ctx, key); err != nil {
		return fmt.Errorf("deleting context %s: %w", key, err)
	}
	s.cache.Remove(key)
	return nil
}

// Summary returns the lightweight projection of a stored document.
// Returns domain.ErrNotFound when no document exists.
func (s *ContextStore) Summary(ctx context.Context, fileKey, nodeID string) (*domain.ContextSummary, error) {
	result, err := s.Get(ctx, fileKey, nodeID, domain.GetOptions{})
	if err != nil {
		return nil, err
	}
	if !result.Found {
		return nil, domain.ErrNotFound
	}
	summary := result.Document.Summary()
	return &summary, nil
}

// IsStale reports whether a document's persisted timestamp is older than
// the staleness threshold. Documents without a parseable timestamp are
// treated as stale.
func (s *ContextStore) IsStale(doc *domain.ContextDocument) bool {
	storedAt := doc.StoredAt()
	if storedAt.IsZero() {
		return true
	}
	return time.Since(storedAt) > s.staleAfter
}

// Evict drops the cache entry for one key without touching the backing
// store.
func (s *ContextStore) Evict(fileKey, nodeID string) {
	s.cache.Remove(domain.ContextKey(fileKey, nodeID))
}

// FlushCache drops every cache entry.
func (s *ContextStore) FlushCache() {
	s.cache.Purge()
}

// CacheLen returns the number of live cache entries.
func (s *ContextStore) CacheLen() int {
	return s.cache.Len()
}
