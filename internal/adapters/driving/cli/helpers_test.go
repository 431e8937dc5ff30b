package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/designctx-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/services"
	"github.com/custodia-labs/designctx-cli/internal/core/store"
)

// stubSource serves canned raw files for command tests.
type stubSource struct {
	files map[string]*domain.RawFile
}

func (s *stubSource) FetchDocument(_ context.Context, fileKey string) (*domain.RawFile, error) {
	if raw, ok := s.files[fileKey]; ok {
		return raw, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubSource) Name() string { return "stub" }

// errorSearchService fails every search.
type errorSearchService struct{}

func (s *errorSearchService) Search(context.Context, string, domain.SearchOptions) (domain.SearchReport, error) {
	return domain.SearchReport{}, errors.New("backing store exploded")
}

func rawFixture() *domain.RawFile {
	return &domain.RawFile{
		Name: "Onboarding Screens",
		Document: &domain.RawNode{
			ID:   "0:0",
			Type: "DOCUMENT",
			Children: []*domain.RawNode{
				{ID: "1:1", Type: "FRAME", Name: "Welcome", Children: []*domain.RawNode{
					{ID: "1:2", Type: "TEXT", Name: "Headline", Characters: "Hello"},
				}},
			},
		},
	}
}

// setupTestServices wires real services over an in-memory backing store
// and a stub source, returning a cleanup that restores the previous
// services.
func setupTestServices() func() {
	oldContext := contextService
	oldStore := storeService
	oldSearch := searchService
	oldSettings := settingsService
	oldWatcher := watchableSource
	oldBacking := backingStore

	backing := memory.NewContextStore()
	contextStore := store.New(backing, store.Options{})
	source := &stubSource{files: map[string]*domain.RawFile{"file-1": rawFixture()}}

	contextService = services.NewContextService(source, contextStore, nil)
	storeService = contextStore
	searchService = services.NewSearchService(backing)
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	watchableSource = nil
	backingStore = backing

	return func() {
		contextService = oldContext
		storeService = oldStore
		searchService = oldSearch
		settingsService = oldSettings
		watchableSource = oldWatcher
		backingStore = oldBacking
	}
}
