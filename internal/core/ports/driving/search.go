package driving

import (
	"context"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// SearchService provides best-effort textual search across stored context
// documents.
type SearchService interface {
	// Search scans the candidate document set, scores substring matches
	// blended with document confidence, and returns the top hits. Zero
	// matches is a normal report with a suggestion, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (domain.SearchReport, error)
}
