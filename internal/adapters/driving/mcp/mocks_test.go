package mcp

import (
	"context"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// mockContextService is a mock implementation of driving.ContextService.
type mockContextService struct {
	result domain.ExtractionResult
	batch  domain.BatchReport
	setup  domain.SetupReport
	err    error
}

func (m *mockContextService) ExtractAndStore(_ context.Context, _ string, _ domain.ExtractOptions) (domain.ExtractionResult, error) {
	return m.result, m.err
}

func (m *mockContextService) GetOrExtract(_ context.Context, _ string) (domain.ExtractionResult, error) {
	return m.result, m.err
}

func (m *mockContextService) EnrichedContext(_ context.Context, _, _ string) (domain.ExtractionResult, error) {
	return m.result, m.err
}

func (m *mockContextService) ProcessBatch(_ context.Context, _ []string, _ domain.BatchOptions) (domain.BatchReport, error) {
	return m.batch, m.err
}

func (m *mockContextService) QuickSetup(_ context.Context, _ string) (domain.SetupReport, error) {
	return m.setup, m.err
}

// mockStoreService is a mock implementation of driving.StoreService.
type mockStoreService struct {
	result  domain.GetResult
	doc     *domain.ContextDocument
	summary *domain.ContextSummary
	stale   bool
	err     error
}

func (m *mockStoreService) Get(_ context.Context, _, _ string, _ domain.GetOptions) (domain.GetResult, error) {
	return m.result, m.err
}

func (m *mockStoreService) Store(_ context.Context, _ domain.ContextDocument) (*domain.ContextDocument, error) {
	return m.doc, m.err
}

func (m *mockStoreService) Update(_ context.Context, _, _ string, _ domain.ContextPatch, _ domain.UpdateOptions) (*domain.ContextDocument, error) {
	return m.doc, m.err
}

func (m *mockStoreService) Delete(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockStoreService) Summary(_ context.Context, _, _ string) (*domain.ContextSummary, error) {
	return m.summary, m.err
}

func (m *mockStoreService) IsStale(_ *domain.ContextDocument) bool {
	return m.stale
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	report domain.SearchReport
	err    error
}

func (m *mockSearchService) Search(_ context.Context, _ string, _ domain.SearchOptions) (domain.SearchReport, error) {
	return m.report, m.err
}

// mockBacking is a map-backed driven.BackingStore.
type mockBacking struct {
	docs map[string]*domain.ContextDocument
	err  error
}

func (m *mockBacking) Get(_ context.Context, key string) (*domain.ContextDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	doc, ok := m.docs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (m *mockBacking) Put(_ context.Context, key string, doc *domain.ContextDocument) error {
	if m.err != nil {
		return m.err
	}
	m.docs[key] = doc
	return nil
}

func (m *mockBacking) Delete(_ context.Context, key string) error {
	delete(m.docs, key)
	return m.err
}

func (m *mockBacking) List(_ context.Context) ([]domain.ContextDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	docs := make([]domain.ContextDocument, 0, len(m.docs))
	for _, doc := range m.docs {
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (m *mockBacking) Keys(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	keys := make([]string, 0, len(m.docs))
	for key := range m.docs {
		keys = append(keys, key)
	}
	return keys, nil
}

// validPorts returns a Ports with every required service mocked.
func validPorts() *Ports {
	return &Ports{
		Context: &mockContextService{},
		Store:   &mockStoreService{},
		Search:  &mockSearchService{},
	}
}
