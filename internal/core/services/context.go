package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/extract"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driving"
	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// Ensure ContextService implements the interface.
var _ driving.ContextService = (*ContextService)(nil)

// ContextService is the client façade over the extraction pipeline: it
// fetches raw trees, runs walk/assemble/score and persists the results.
type ContextService struct {
	source      driven.DocumentSource
	store       driving.StoreService
	screenshots driven.ScreenshotService
	walker      *extract.Walker
}

// NewContextService creates the façade. The document source and
// screenshot service are optional: without a source every extraction
// fails with domain.ErrSourceUnavailable but stored documents remain
// readable; without a screenshot service the setup pipeline records the
// capture step as failed.
func NewContextService(
	source driven.DocumentSource,
	store driving.StoreService,
	screenshots driven.ScreenshotService,
) *ContextService {
	return &ContextService{
		source:      source,
		store:       store,
		screenshots: screenshots,
		walker:      extract.NewWalker(extract.NewRegistry()),
	}
}

// ExtractAndStore runs the full pipeline for one file and persists the
// result, then flushes the node-scoped side-writes collected during the
// walk. Side-write failures are logged and counted, never fatal.
func (s *ContextService) ExtractAndStore(ctx context.Context, fileKey string, opts domain.ExtractOptions) (domain.ExtractionResult, error) {
	if fileKey == "" {
		return domain.ExtractionResult{}, domain.ErrEmptyFileKey
	}
	if s.source == nil {
		return domain.ExtractionResult{}, domain.ErrSourceUnavailable
	}

	// 1. Fetch the raw tree
	raw, err := s.source.FetchDocument(ctx, fileKey)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("fetch document: %w", err)
	}

	// 2. Walk, assemble, score. A missing root degrades to an empty,
	// low-confidence document.
	var root *domain.RawNode
	if raw != nil {
		root = raw.Document
	}
	walk := s.walker.Walk(fileKey, root)
	doc := extract.Assemble(fileKey, raw, walk, s.source.Name())

	result := domain.ExtractionResult{FileKey: fileKey, Document: &doc}
	if opts.SkipStore {
		return result, nil
	}

	// 3. Persist the file-level document
	stored, err := s.store.Store(ctx, doc)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("store context: %w", err)
	}
	result.Document = stored
	result.Stored = true

	// 4. Flush deferred node-scoped documents
	for _, write := range walk.Deferred {
		nodeDoc := write.Document
		nodeDoc.Metadata.Source = s.source.Name()
		if _, err := s.store.Store(ctx, nodeDoc); err != nil {
			logger.Warn("Node context %s not stored: %v", domain.ContextKey(fileKey, write.NodeID), err)
			result.DeferredFailures++
			continue
		}
		result.DeferredWrites++
	}

	logger.Info("Extracted %s: %d nodes, confidence %.2f", fileKey, len(stored.Nodes), stored.Confidence)
	return result, nil
}

// GetOrExtract serves the stored document when one exists and falls
// through to a fresh extraction on a miss. Read failures also fall
// through: if the store is genuinely broken the subsequent write
// surfaces it.
func (s *ContextService) GetOrExtract(ctx context.Context, fileKey string) (domain.ExtractionResult, error) {
	if fileKey == "" {
		return domain.ExtractionResult{}, domain.ErrEmptyFileKey
	}

	result, err := s.store.Get(ctx, fileKey, "", domain.GetOptions{})
	if err != nil {
		logger.Debug("Stored context unavailable for %s: %v", fileKey, err)
	}
	if err == nil && result.Found {
		return domain.ExtractionResult{
			FileKey:  fileKey,
			Document: result.Document,
			Stored:   true,
			Cached:   true,
		}, nil
	}

	return s.ExtractAndStore(ctx, fileKey, domain.ExtractOptions{})
}

// EnrichedContext applies the freshness policy: absent documents are
// extracted, stale ones re-extracted, fresh ones returned unchanged.
// With a nodeID the node-scoped document is served; re-extraction runs
// over the whole file so its side-writes refresh the node document too.
func (s *ContextService) EnrichedContext(ctx context.Context, fileKey, nodeID string) (domain.ExtractionResult, error) {
	if fileKey == "" {
		return domain.ExtractionResult{}, domain.ErrEmptyFileKey
	}

	result, err := s.store.Get(ctx, fileKey, nodeID, domain.GetOptions{})
	if err == nil && result.Found && !s.store.IsStale(result.Document) {
		return domain.ExtractionResult{
			FileKey:  fileKey,
			Document: result.Document,
			Stored:   true,
			Cached:   true,
		}, nil
	}
	if err != nil {
		logger.Debug("Stored context unavailable for %s: %v", domain.ContextKey(fileKey, nodeID), err)
	} else if result.Found {
		logger.Debug("Context for %s is stale, re-extracting", domain.ContextKey(fileKey, nodeID))
	}

	extracted, err := s.ExtractAndStore(ctx, fileKey, domain.ExtractOptions{})
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	if nodeID == "" {
		return extracted, nil
	}

	nodeResult, err := s.store.Get(ctx, fileKey, nodeID, domain.GetOptions{})
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("reading node context: %w", err)
	}
	if !nodeResult.Found {
		return domain.ExtractionResult{}, fmt.Errorf("node %s in %s: %w", nodeID, fileKey, domain.ErrNotFound)
	}
	return domain.ExtractionResult{
		FileKey:  fileKey,
		Document: nodeResult.Document,
		Stored:   true,
	}, nil
}

// ProcessBatch partitions the keys into chunks of opts.MaxConcurrent.
// Chunks run sequentially; within a chunk every key extracts
// concurrently. Each key writes its own result slot, so one failure
// never discards another key's outcome.
func (s *ContextService) ProcessBatch(ctx context.Context, fileKeys []string, opts domain.BatchOptions) (domain.BatchReport, error) {
	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = domain.DefaultBatchConcurrency
	}

	report := domain.BatchReport{
		ID:      uuid.NewString(),
		Total:   len(fileKeys),
		Results: make([]domain.BatchItemResult, len(fileKeys)),
	}
	if len(fileKeys) == 0 {
		return report, nil
	}

	logger.Info("Processing batch %s: %d files, %d at a time", report.ID, len(fileKeys), maxConcurrent)

	for start := 0; start < len(fileKeys); start += maxConcurrent {
		end := start + maxConcurrent
		if end > len(fileKeys) {
			end = len(fileKeys)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				report.Results[idx] = s.processBatchItem(ctx, fileKeys[idx])
			}(i)
		}
		wg.Wait()
	}

	for _, item := range report.Results {
		if item.Success {
			report.Successful++
		} else {
			report.Failed++
		}
	}

	logger.Info("Batch %s complete: %d succeeded, %d failed", report.ID, report.Successful, report.Failed)
	return report, nil
}

// processBatchItem runs one key of a batch and folds any failure into
// the item result.
func (s *ContextService) processBatchItem(ctx context.Context, fileKey string) domain.BatchItemResult {
	result, err := s.GetOrExtract(ctx, fileKey)
	if err != nil {
		logger.Debug("Batch item %s failed: %v", fileKey, err)
		return domain.BatchItemResult{FileKey: fileKey, Error: err.Error()}
	}

	item := domain.BatchItemResult{FileKey: fileKey, Success: true}
	if result.Document != nil {
		item.Confidence = result.Document.Confidence
		item.NodeCount = len(result.Document.Nodes)
	}
	return item
}

// QuickSetup runs the three-step onboarding pipeline. Steps are
// independent: a failed step is recorded and the next one still runs.
func (s *ContextService) QuickSetup(ctx context.Context, fileKey string) (domain.SetupReport, error) {
	report := domain.SetupReport{FileKey: fileKey}
	if fileKey == "" {
		return report, domain.ErrEmptyFileKey
	}

	// 1. Process the file
	if _, err := s.GetOrExtract(ctx, fileKey); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("process file: %v", err))
	} else {
		report.Steps.FileProcessed = true
	}

	// 2. Capture a screenshot and attach it to the stored document
	if screenshot, err := s.attachScreenshot(ctx, fileKey); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("capture screenshot: %v", err))
	} else {
		report.Steps.ScreenshotCaptured = true
		report.Screenshot = screenshot
	}

	// 3. Generate the summary
	if summary, err := s.store.Summary(ctx, fileKey, ""); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("generate summary: %v", err))
	} else {
		report.Steps.SummaryGenerated = true
		report.Summary = summary
	}

	return report, nil
}

// attachScreenshot captures a file-level screenshot and records its URL
// on the stored document.
func (s *ContextService) attachScreenshot(ctx context.Context, fileKey string) (*domain.ScreenshotDescriptor, error) {
	if s.screenshots == nil {
		return nil, domain.ErrScreenshotUnavailable
	}

	screenshot, err := s.screenshots.Capture(ctx, fileKey, "", domain.ScreenshotOptions{})
	if err != nil {
		return nil, err
	}

	patch := domain.ContextPatch{Metadata: &domain.MetadataPatch{ThumbnailURL: screenshot.URL}}
	if _, err := s.store.Update(ctx, fileKey, "", patch, domain.UpdateOptions{}); err != nil {
		return nil, fmt.Errorf("attach screenshot: %w", err)
	}
	return screenshot, nil
}
