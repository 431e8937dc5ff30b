package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driving"
	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Score weights: every substring hit counts once, blended with the
// document's own confidence so richer extractions rank higher on ties.
const (
	searchWeightMatch      = 1.0
	searchWeightConfidence = 0.5
)

// SearchService scans stored context documents for substring matches
// against node, component and style names and types.
type SearchService struct {
	backing driven.BackingStore
}

// NewSearchService creates a search service over the backing store.
func NewSearchService(backing driven.BackingStore) *SearchService {
	return &SearchService{backing: backing}
}

// Search scans the candidate documents, scores matches and returns the
// top hits sorted by descending score. Zero matches reports a suggestion
// instead of an error.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) (domain.SearchReport, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchReport{}, fmt.Errorf("search query: %w", domain.ErrInvalidInput)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	docs, err := s.backing.List(ctx)
	if err != nil {
		return domain.SearchReport{}, fmt.Errorf("listing contexts: %w", err)
	}

	keyFilter := make(map[string]bool, len(opts.FileKeys))
	for _, key := range opts.FileKeys {
		keyFilter[key] = true
	}
	typeFilter := make(map[string]bool, len(opts.NodeTypes))
	for _, nodeType := range opts.NodeTypes {
		typeFilter[strings.ToLower(nodeType)] = true
	}

	needle := strings.ToLower(query)
	var hits []domain.SearchHit
	for i := range docs {
		doc := &docs[i]
		if len(keyFilter) > 0 && !keyFilter[doc.FileKey] {
			continue
		}
		if hit := scoreDocument(doc, needle, typeFilter); hit != nil {
			hits = append(hits, *hit)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		if hits[i].FileKey != hits[j].FileKey {
			return hits[i].FileKey < hits[j].FileKey
		}
		return hits[i].NodeID < hits[j].NodeID
	})

	report := domain.SearchReport{Query: query, TotalResults: len(hits)}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	report.Results = hits

	if report.TotalResults == 0 {
		report.Suggestion = fmt.Sprintf("no stored context matches %q; process the relevant file first, then search again", query)
	}

	logger.Debug("Search %q: %d of %d documents matched", query, report.TotalResults, len(docs))
	return report, nil
}

// scoreDocument counts substring hits in one document and blends them
// with its confidence. Returns nil when nothing matched. A non-empty
// type filter restricts node matching to the listed types; the flat
// component and style tables stay in scope only when the filter names
// them.
func scoreDocument(doc *domain.ContextDocument, needle string, typeFilter map[string]bool) *domain.SearchHit {
	matchComponents := len(typeFilter) == 0 || typeFilter["component"]
	matchStyles := len(typeFilter) == 0 || typeFilter["style"]

	var matchedNodes, matchedComponents, matchedStyles []string

	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		if len(typeFilter) > 0 && !typeFilter[strings.ToLower(node.Type)] {
			continue
		}
		if containsFold(node.Name, needle) || containsFold(node.Type, needle) {
			matchedNodes = append(matchedNodes, node.Name)
		}
	}
	if matchComponents {
		for i := range doc.Components {
			component := &doc.Components[i]
			if containsFold(component.Name, needle) {
				matchedComponents = append(matchedComponents, component.Name)
			}
		}
	}
	if matchStyles {
		for i := range doc.Styles {
			style := &doc.Styles[i]
			if containsFold(style.Name, needle) || containsFold(style.Type, needle) {
				matchedStyles = append(matchedStyles, style.Name)
			}
		}
	}

	total := len(matchedNodes) + len(matchedComponents) + len(matchedStyles)
	if total == 0 {
		return nil
	}

	return &domain.SearchHit{
		FileKey:           doc.FileKey,
		NodeID:            doc.NodeID,
		Score:             float64(total)*searchWeightMatch + doc.Confidence*searchWeightConfidence,
		Confidence:        doc.Confidence,
		FileName:          doc.Metadata.FileName,
		MatchedNodes:      matchedNodes,
		MatchedComponents: matchedComponents,
		MatchedStyles:     matchedStyles,
	}
}

// containsFold reports whether s contains the already-lowercased needle,
// ignoring case.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
