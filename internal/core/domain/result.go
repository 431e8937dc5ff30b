package domain

// Default tuning values for façade operations.
const (
	// DefaultBatchConcurrency is the per-chunk parallelism of batch
	// processing when the caller does not override it.
	DefaultBatchConcurrency = 3

	// NodeDocumentConfidence is the fixed confidence of node-scoped
	// documents produced by the significant-node fan-out.
	NodeDocumentConfidence = 0.8
)

// GetOptions configure a store lookup. The zero value is the default
// behaviour: consult the TTL cache and repopulate it on backing-store reads.
type GetOptions struct {
	// SkipCache bypasses the TTL cache entirely: the lookup goes straight
	// to the backing store and does not repopulate the cache.
	SkipCache bool
}

// ExtractOptions configure an extract-and-store run. The zero value is the
// default behaviour: persist the assembled document and flush side-writes.
type ExtractOptions struct {
	// SkipStore computes the context document without persisting it.
	// Deferred side-writes are dropped as well.
	SkipStore bool
}

// UpdateOptions configure a merge update. The zero value is the default
// behaviour: shallow-merge the patch over the stored document.
type UpdateOptions struct {
	// Replace applies the patch to an empty document and stores the
	// result wholesale instead of merging over the stored state.
	Replace bool
}

// BatchOptions configure a batch processing run.
type BatchOptions struct {
	// MaxConcurrent is the chunk size: within a chunk all extractions
	// run concurrently, chunks run sequentially. Defaults to
	// DefaultBatchConcurrency.
	MaxConcurrent int
}

// GetResult is the outcome of a store lookup. "Not found" is a normal
// value here, not an error: Found is false and Document is nil.
type GetResult struct {
	// Found reports whether a document exists for the requested key.
	Found bool `json:"found"`

	// Cached is true when the result came from the TTL cache rather
	// than the backing store.
	Cached bool `json:"cached"`

	// Document is the stored document, nil when Found is false.
	Document *ContextDocument `json:"document,omitempty"`
}

// ExtractionResult is the outcome of one extract-and-store run.
type ExtractionResult struct {
	// FileKey identifies the processed file.
	FileKey string `json:"fileKey"`

	// Document is the assembled context document.
	Document *ContextDocument `json:"document,omitempty"`

	// Stored reports whether the document was persisted.
	Stored bool `json:"stored"`

	// Cached is true when GetOrExtract satisfied the call from storage
	// without re-running the pipeline.
	Cached bool `json:"cached"`

	// DeferredWrites counts node-scoped side-writes flushed after the
	// main document stored.
	DeferredWrites int `json:"deferredWrites,omitempty"`

	// DeferredFailures counts side-writes that failed. Side-write
	// failures never fail the parent extraction.
	DeferredFailures int `json:"deferredFailures,omitempty"`
}

// BatchItemResult is the per-key outcome of a batch run. Every input key
// produces exactly one item regardless of other items' outcomes.
type BatchItemResult struct {
	// FileKey is the input key this item reports on.
	FileKey string `json:"fileKey"`

	// Success is false when this key's extraction failed.
	Success bool `json:"success"`

	// Confidence is the resulting document's confidence on success.
	Confidence float64 `json:"confidence,omitempty"`

	// NodeCount is the resulting document's node count on success.
	NodeCount int `json:"nodeCount,omitempty"`

	// Error carries the failure message when Success is false.
	Error string `json:"error,omitempty"`
}

// BatchReport is the outcome of a batch processing run.
type BatchReport struct {
	// ID uniquely identifies this batch run.
	ID string `json:"id"`

	// Total is the number of input keys; always equals len(Results).
	Total int `json:"total"`

	// Successful counts items with Success true.
	Successful int `json:"successful"`

	// Failed counts items with Success false.
	Failed int `json:"failed"`

	// Results holds one entry per input key, in input order.
	Results []BatchItemResult `json:"results"`
}

// SetupSteps records the independent outcomes of the quick-setup pipeline.
// A failed step never aborts the remaining steps.
type SetupSteps struct {
	// FileProcessed is true when the file extracted (or was already stored).
	FileProcessed bool `json:"fileProcessed"`

	// ScreenshotCaptured is true when a screenshot descriptor was
	// captured and attached to the stored document.
	ScreenshotCaptured bool `json:"screenshotCaptured"`

	// SummaryGenerated is true when the summary projection succeeded.
	SummaryGenerated bool `json:"summaryGenerated"`
}

// SetupReport is the outcome of a quick-setup run.
type SetupReport struct {
	// FileKey identifies the file being set up.
	FileKey string `json:"fileKey"`

	// Steps records each step's outcome independently.
	Steps SetupSteps `json:"steps"`

	// Errors collects per-step failure messages, in step order.
	Errors []string `json:"errors,omitempty"`

	// Screenshot is the captured descriptor, when step two succeeded.
	Screenshot *ScreenshotDescriptor `json:"screenshot,omitempty"`

	// Summary is the document summary, when step three succeeded.
	Summary *ContextSummary `json:"summary,omitempty"`
}

// ScreenshotOptions configure a visual capture request.
type ScreenshotOptions struct {
	// Format is the image format ("png", "jpg", "svg"). Defaults to "png".
	Format string

	// Scale is the render scale factor. Defaults to 2.
	Scale float64
}

// ScreenshotDescriptor is the opaque visual-asset descriptor returned by
// the screenshot service. Capture mechanics are out of scope; only the
// descriptor is attached to context documents.
type ScreenshotDescriptor struct {
	// URL locates the rendered image.
	URL string `json:"url"`

	// Format is the image format actually rendered.
	Format string `json:"format"`

	// Scale is the render scale factor actually used.
	Scale float64 `json:"scale"`

	// Width is the image width in pixels, when known.
	Width int `json:"width,omitempty"`

	// Height is the image height in pixels, when known.
	Height int `json:"height,omitempty"`
}

// ContextPatch is a partial document used by merge updates. Nil slices and
// nil pointers mean "leave the stored value unchanged"; non-nil slices
// replace the stored array wholesale.
type ContextPatch struct {
	// Confidence replaces the stored confidence when set.
	Confidence *float64 `json:"confidence,omitempty"`

	// Nodes replaces the stored nodes array when non-nil.
	Nodes []NodeInfo `json:"nodes,omitempty"`

	// Styles replaces the stored styles array when non-nil.
	Styles []StyleInfo `json:"styles,omitempty"`

	// Components replaces the stored components array when non-nil.
	Components []ComponentInfo `json:"components,omitempty"`

	// Extractors replaces the stored extractors list when non-nil.
	Extractors []string `json:"extractors,omitempty"`

	// Metadata merges field-by-field over the stored metadata; empty
	// fields leave the stored value unchanged.
	Metadata *MetadataPatch `json:"metadata,omitempty"`
}

// MetadataPatch is a partial metadata update. Empty strings mean "leave
// the stored value unchanged".
type MetadataPatch struct {
	FileName     string `json:"fileName,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Version      string `json:"version,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	EditorType   string `json:"editorType,omitempty"`
	Source       string `json:"source,omitempty"`
}

// Apply merges the patch over a stored document, returning the merged
// copy. Shallow semantics: scalar fields overwrite, arrays replace
// wholesale, absent fields keep their stored values.
func (p *ContextPatch) Apply(stored ContextDocument) ContextDocument {
	merged := stored
	if p == nil {
		return merged
	}
	if p.Confidence != nil {
		merged.Confidence = *p.Confidence
	}
	if p.Nodes != nil {
		merged.Nodes = p.Nodes
	}
	if p.Styles != nil {
		merged.Styles = p.Styles
	}
	if p.Components != nil {
		merged.Components = p.Components
	}
	if p.Extractors != nil {
		merged.Extractors = p.Extractors
	}
	if p.Metadata != nil {
		merged.Metadata = p.Metadata.apply(merged.Metadata)
	}
	return merged
}

func (p *MetadataPatch) apply(stored Metadata) Metadata {
	merged := stored
	if p.FileName != "" {
		merged.FileName = p.FileName
	}
	if p.LastModified != "" {
		merged.LastModified = p.LastModified
	}
	if p.Version != "" {
		merged.Version = p.Version
	}
	if p.ThumbnailURL != "" {
		merged.ThumbnailURL = p.ThumbnailURL
	}
	if p.EditorType != "" {
		merged.EditorType = p.EditorType
	}
	if p.Source != "" {
		merged.Source = p.Source
	}
	return merged
}
