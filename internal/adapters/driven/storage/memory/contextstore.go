package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
)

// Ensure ContextStore implements the interface.
var _ driven.BackingStore = (*ContextStore)(nil)

// ContextStore is an in-memory implementation of driven.BackingStore.
// Used by the memory storage backend and throughout the tests.
type ContextStore struct {
	mu        sync.RWMutex
	documents map[string]domain.ContextDocument
}

// NewContextStore creates a new in-memory context store.
func NewContextStore() *ContextStore {
	return &ContextStore{
		documents: make(map[string]domain.ContextDocument),
	}
}

// Get retrieves a document by key.
func (s *ContextStore) Get(_ context.Context, key string) (*domain.ContextDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// Put stores or fully replaces a document under key.
func (s *ContextStore) Put(_ context.Context, key string, doc *domain.ContextDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[key] = *doc
	return nil
}

// Delete removes a document by key. Absent keys are not an error.
func (s *ContextStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, key)
	return nil
}

// List returns all stored documents sorted by key, so repeated calls on
// an unchanged store scan in the same order.
func (s *ContextStore) List(_ context.Context) ([]domain.ContextDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.sortedKeys()
	docs := make([]domain.ContextDocument, 0, len(keys))
	for _, key := range keys {
		docs = append(docs, s.documents[key])
	}
	return docs, nil
}

// Keys returns all stored keys sorted, matching List's order.
func (s *ContextStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedKeys(), nil
}

// sortedKeys expects the read lock to be held.
func (s *ContextStore) sortedKeys() []string {
	keys := make([]string, 0, len(s.documents))
	for key := range s.documents {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
