package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/designctx-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// --- Mock implementations ---

// failingBackingStore implements driven.BackingStore for testing; every
// method fails with the configured error.
type failingBackingStore struct{ err error }

func (f *failingBackingStore) Get(_ context.Context, _ string) (*domain.ContextDocument, error) {
	return nil, f.err
}

func (f *failingBackingStore) Put(_ context.Context, _ string, _ *domain.ContextDocument) error {
	return f.err
}

func (f *failingBackingStore) Delete(_ context.Context, _ string) error { return f.err }

func (f *failingBackingStore) List(_ context.Context) ([]domain.ContextDocument, error) {
	return nil, f.err
}

func (f *failingBackingStore) Keys(_ context.Context) ([]string, error) { return nil, f.err }

// --- Fixtures ---

// seedSearchService stores a small corpus and returns a search service
// scanning it: a design-system file with a button component, a
// node-scoped document for its header frame, and a marketing file.
func seedSearchService(t *testing.T) *SearchService {
	t.Helper()
	backing := memory.NewContextStore()
	docs := []domain.ContextDocument{
		{
			FileKey:    "design-system",
			Confidence: 0.9,
			Metadata:   domain.Metadata{FileName: "Design System"},
			Nodes: []domain.NodeInfo{
				{ID: "1:1", Type: "FRAME", Name: "Button Row", Visible: true},
				{ID: "1:2", Type: "TEXT", Name: "Caption", Visible: true},
			},
			Components: []domain.ComponentInfo{
				{ID: "c:1", Name: "PrimaryButton"},
			},
			Styles: []domain.StyleInfo{
				{ID: "s:1", Name: "Brand/Primary", Type: "FILL"},
			},
		},
		{
			FileKey:    "design-system",
			NodeID:     "1:1",
			Confidence: 0.8,
			Metadata:   domain.Metadata{FileName: "Design System"},
			Nodes: []domain.NodeInfo{
				{ID: "1:1", Type: "FRAME", Name: "Button Row", Visible: true},
			},
		},
		{
			FileKey:    "marketing",
			Confidence: 0.4,
			Metadata:   domain.Metadata{FileName: "Marketing Site"},
			Nodes: []domain.NodeInfo{
				{ID: "2:1", Type: "FRAME", Name: "Hero", Visible: true},
				{ID: "2:2", Type: "TEXT", Name: "Signup Button", Visible: true},
			},
		},
	}
	for i := range docs {
		require.NoError(t, backing.Put(context.Background(), docs[i].Key(), &docs[i]))
	}
	return NewSearchService(backing)
}

// --- Search ---

func TestSearchService_Search(t *testing.T) {
	svc := seedSearchService(t)

	report, err := svc.Search(context.Background(), "button", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, "button", report.Query)
	assert.Equal(t, 3, report.TotalResults)
	require.Len(t, report.Results, 3)

	// Two hits plus the highest confidence rank the design-system file
	// first, then its node document, then the marketing file.
	assert.Equal(t, "design-system", report.Results[0].FileKey)
	assert.Empty(t, report.Results[0].NodeID)
	assert.InDelta(t, 2.45, report.Results[0].Score, 1e-9)
	assert.Equal(t, []string{"Button Row"}, report.Results[0].MatchedNodes)
	assert.Equal(t, []string{"PrimaryButton"}, report.Results[0].MatchedComponents)
	assert.Empty(t, report.Results[0].MatchedStyles)

	assert.Equal(t, "design-system", report.Results[1].FileKey)
	assert.Equal(t, "1:1", report.Results[1].NodeID)
	assert.InDelta(t, 1.4, report.Results[1].Score, 1e-9)

	assert.Equal(t, "marketing", report.Results[2].FileKey)
	assert.InDelta(t, 1.2, report.Results[2].Score, 1e-9)
	assert.Equal(t, []string{"Signup Button"}, report.Results[2].MatchedNodes)

	assert.Empty(t, report.Suggestion)
}

func TestSearchService_Search_MatchesNodeType(t *testing.T) {
	svc := seedSearchService(t)

	// "frame" matches node types, so nodes whose names never mention it
	// still hit.
	report, err := svc.Search(context.Background(), "frame", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalResults)
	assert.Contains(t, report.Results[0].MatchedNodes, "Button Row")
}

func TestSearchService_Search_CaseInsensitive(t *testing.T) {
	svc := seedSearchService(t)

	lower, err := svc.Search(context.Background(), "button", domain.SearchOptions{})
	require.NoError(t, err)
	upper, err := svc.Search(context.Background(), "BUTTON", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, lower.TotalResults, upper.TotalResults)
	require.NotEmpty(t, upper.Results)
	assert.Equal(t, lower.Results[0].FileKey, upper.Results[0].FileKey)
	assert.InDelta(t, lower.Results[0].Score, upper.Results[0].Score, 1e-9)
}

func TestSearchService_Search_NodeTypeFilter(t *testing.T) {
	svc := seedSearchService(t)

	// Restricting to components drops the "Button Row" frame and the
	// "Signup Button" text node; only the component table matches.
	report, err := svc.Search(context.Background(), "button", domain.SearchOptions{
		NodeTypes: []string{"component"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalResults)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "design-system", report.Results[0].FileKey)
	assert.Empty(t, report.Results[0].NodeID)
	assert.Greater(t, report.Results[0].Score, 0.0)
	assert.Empty(t, report.Results[0].MatchedNodes)
	assert.Equal(t, []string{"PrimaryButton"}, report.Results[0].MatchedComponents)
}

func TestSearchService_Search_NodeTypeFilterNormalisesCase(t *testing.T) {
	svc := seedSearchService(t)

	report, err := svc.Search(context.Background(), "button", domain.SearchOptions{
		NodeTypes: []string{"FRAME"},
	})
	require.NoError(t, err)

	// Both documents holding the "Button Row" frame match; the text and
	// component hits are filtered out.
	assert.Equal(t, 2, report.TotalResults)
	for _, hit := range report.Results {
		assert.Equal(t, []string{"Button Row"}, hit.MatchedNodes)
		assert.Empty(t, hit.MatchedComponents)
	}
}

func TestSearchService_Search_FileKeyFilter(t *testing.T) {
	svc := seedSearchService(t)

	report, err := svc.Search(context.Background(), "button", domain.SearchOptions{
		FileKeys: []string{"marketing"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalResults)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "marketing", report.Results[0].FileKey)

	// A file filter keeps that file's node-scoped documents in scope too.
	report, err = svc.Search(context.Background(), "button", domain.SearchOptions{
		FileKeys: []string{"design-system"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalResults)
}

func TestSearchService_Search_LimitKeepsTotal(t *testing.T) {
	svc := seedSearchService(t)

	report, err := svc.Search(context.Background(), "button", domain.SearchOptions{Limit: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalResults, "total counts matches before truncation")
	require.Len(t, report.Results, 1)
	assert.Equal(t, "design-system", report.Results[0].FileKey)
}

func TestSearchService_Search_DeterministicTieBreak(t *testing.T) {
	backing := memory.NewContextStore()
	for _, key := range []string{"bravo", "alpha", "charlie"} {
		doc := domain.ContextDocument{
			FileKey:    key,
			Confidence: 0.5,
			Nodes:      []domain.NodeInfo{{ID: "1:1", Type: "FRAME", Name: "Toolbar", Visible: true}},
		}
		require.NoError(t, backing.Put(context.Background(), doc.Key(), &doc))
	}
	svc := NewSearchService(backing)

	for i := 0; i < 5; i++ {
		report, err := svc.Search(context.Background(), "toolbar", domain.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, report.Results, 3)
		assert.Equal(t, "alpha", report.Results[0].FileKey)
		assert.Equal(t, "bravo", report.Results[1].FileKey)
		assert.Equal(t, "charlie", report.Results[2].FileKey)
	}
}

func TestSearchService_Search_NoMatches(t *testing.T) {
	svc := seedSearchService(t)

	report, err := svc.Search(context.Background(), "sidebar", domain.SearchOptions{})
	require.NoError(t, err, "zero matches is not an error")

	assert.Zero(t, report.TotalResults)
	assert.Empty(t, report.Results)
	assert.Contains(t, report.Suggestion, `"sidebar"`)
	assert.Contains(t, report.Suggestion, "process")
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	svc := seedSearchService(t)

	_, err := svc.Search(context.Background(), "", domain.SearchOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Search(context.Background(), "   ", domain.SearchOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchService_Search_BackingError(t *testing.T) {
	listErr := errors.New("disk gone")
	svc := NewSearchService(&failingBackingStore{err: listErr})

	_, err := svc.Search(context.Background(), "button", domain.SearchOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, listErr)
	assert.Contains(t, err.Error(), "listing contexts")
}
