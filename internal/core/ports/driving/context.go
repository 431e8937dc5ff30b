package driving

import (
	"context"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// ContextService is the client façade over the extraction pipeline. It is
// the only entry point other subsystems use to produce context documents.
type ContextService interface {
	// ExtractAndStore fetches the raw tree for fileKey, runs the full
	// pipeline (walk, assemble, score), persists the result unless
	// opts.SkipStore is set, then flushes the deferred node-scoped
	// side-writes collected during the walk.
	ExtractAndStore(ctx context.Context, fileKey string, opts domain.ExtractOptions) (domain.ExtractionResult, error)

	// GetOrExtract serves the stored document when one exists and falls
	// through to ExtractAndStore on a miss.
	GetOrExtract(ctx context.Context, fileKey string) (domain.ExtractionResult, error)

	// EnrichedContext applies the freshness policy: absent documents are
	// extracted, stale documents re-extracted, fresh documents returned
	// unchanged.
	EnrichedContext(ctx context.Context, fileKey, nodeID string) (domain.ExtractionResult, error)

	// ProcessBatch runs GetOrExtract over every input key in sequential
	// chunks of opts.MaxConcurrent. Every key yields exactly one result;
	// one key's failure never discards another's outcome.
	ProcessBatch(ctx context.Context, fileKeys []string, opts domain.BatchOptions) (domain.BatchReport, error)

	// QuickSetup runs the three-step onboarding pipeline (process file,
	// capture screenshot, generate summary) with each step's failure
	// recorded independently.
	QuickSetup(ctx context.Context, fileKey string) (domain.SetupReport, error)
}
