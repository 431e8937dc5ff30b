package domain

import "time"

// TimestampLayout is the wire format for all document timestamps.
// Timestamps are stored as strings because documents round-trip through
// JSON backing stores that have no native time type.
const TimestampLayout = time.RFC3339

// ContextDocument is the unit of storage: the normalised, confidence-scored
// representation of one extracted file's (or node's) design context.
type ContextDocument struct {
	// FileKey identifies the source design file. Never empty.
	FileKey string `json:"fileKey"`

	// NodeID is set only for node-scoped documents produced by the
	// significant-node fan-out. Empty for file-scoped documents.
	NodeID string `json:"nodeId,omitempty"`

	// Confidence estimates how complete the extraction is. Always in [0,1].
	Confidence float64 `json:"confidence"`

	// Nodes is the flat list of visited nodes in document order.
	Nodes []NodeInfo `json:"nodes"`

	// Styles is derived from the source's flat style table, sorted by ID.
	Styles []StyleInfo `json:"styles"`

	// Components is derived from the source's flat component table, sorted by ID.
	Components []ComponentInfo `json:"components"`

	// Extractors lists the extractor kinds actually applied during the walk.
	Extractors []string `json:"extractors"`

	// Metadata carries file-level fields and storage timestamps.
	Metadata Metadata `json:"metadata"`
}

// Metadata holds file-level fields copied from the Document Source plus
// timestamps stamped by the Context Store.
type Metadata struct {
	// FileName is the display name of the source file. "Unknown" when the
	// source omitted it.
	FileName string `json:"fileName"`

	// LastModified is the source's own modification timestamp, verbatim.
	LastModified string `json:"lastModified,omitempty"`

	// Version is the source file version. Defaults to "1.0".
	Version string `json:"version"`

	// ThumbnailURL points at a visual asset for the file or node.
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// EditorType is the source editor surface. Defaults to "design".
	EditorType string `json:"editorType"`

	// Source names the adapter that supplied the raw payload.
	Source string `json:"source,omitempty"`

	// Extracted is stamped on node-scoped documents at walk time.
	Extracted string `json:"extracted,omitempty"`

	// Stored is stamped by the Context Store on every full write.
	Stored string `json:"stored,omitempty"`

	// Updated is stamped by the Context Store on every merge update.
	Updated string `json:"updated,omitempty"`
}

// ContextKey builds the storage/cache key for a document identity.
// File-scoped documents key by fileKey alone; node-scoped documents
// append "-" and the node ID.
func ContextKey(fileKey, nodeID string) string {
	if nodeID == "" {
		return fileKey
	}
	return fileKey + "-" + nodeID
}

// Key returns the storage/cache key for this document.
func (d *ContextDocument) Key() string {
	return ContextKey(d.FileKey, d.NodeID)
}

// Validate checks the document invariants that must hold before storage.
func (d *ContextDocument) Validate() error {
	if d.FileKey == "" {
		return ErrEmptyFileKey
	}
	if d.Confidence < 0 || d.Confidence > 1 {
		return ErrConfidenceRange
	}
	return nil
}

// StoredAt parses the stored timestamp, falling back to updated.
// Returns the zero time when neither is present or parseable.
func (d *ContextDocument) StoredAt() time.Time {
	for _, raw := range []string{d.Metadata.Stored, d.Metadata.Updated} {
		if raw == "" {
			continue
		}
		if ts, err := time.Parse(TimestampLayout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Summary projects the document into its lightweight summary form,
// dropping the node/style/component arrays.
func (d *ContextDocument) Summary() ContextSummary {
	return ContextSummary{
		FileKey:        d.FileKey,
		NodeID:         d.NodeID,
		Confidence:     d.Confidence,
		NodeCount:      len(d.Nodes),
		StyleCount:     len(d.Styles),
		ComponentCount: len(d.Components),
		Stored:         d.Metadata.Stored,
		Updated:        d.Metadata.Updated,
	}
}

// ContextSummary is the cheap projection returned by summary lookups.
type ContextSummary struct {
	// FileKey identifies the summarised document.
	FileKey string `json:"fileKey"`

	// NodeID is set for node-scoped documents.
	NodeID string `json:"nodeId,omitempty"`

	// Confidence mirrors the document's confidence score.
	Confidence float64 `json:"confidence"`

	// NodeCount is len(nodes) of the full document.
	NodeCount int `json:"nodeCount"`

	// StyleCount is len(styles) of the full document.
	StyleCount int `json:"styleCount"`

	// ComponentCount is len(components) of the full document.
	ComponentCount int `json:"componentCount"`

	// Stored is the last full-write timestamp.
	Stored string `json:"stored,omitempty"`

	// Updated is the last merge-update timestamp.
	Updated string `json:"updated,omitempty"`
}
