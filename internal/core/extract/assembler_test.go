package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// TestAssemble_MetadataFallbacks tests that a nil payload still yields a
// valid document with fallback metadata.
func TestAssemble_MetadataFallbacks(t *testing.T) {
	doc := Assemble("file-1", nil, WalkResult{}, "api")

	assert.Equal(t, "file-1", doc.FileKey)
	assert.Equal(t, "Unknown", doc.Metadata.FileName)
	assert.Equal(t, "1.0", doc.Metadata.Version)
	assert.Equal(t, "design", doc.Metadata.EditorType)
	assert.Empty(t, doc.Metadata.LastModified)
	assert.Empty(t, doc.Metadata.ThumbnailURL)
	assert.Equal(t, "api", doc.Metadata.Source)
	assert.Zero(t, doc.Confidence)
	require.NoError(t, doc.Validate())

	_, err := time.Parse(domain.TimestampLayout, doc.Metadata.Extracted)
	require.NoError(t, err)
}

// TestAssemble_CopiesHeaderFields tests that declared header fields win
// over fallbacks.
func TestAssemble_CopiesHeaderFields(t *testing.T) {
	raw := &domain.RawFile{
		Name:         "Design System",
		LastModified: "2026-01-10T12:00:00Z",
		Version:      "42",
		ThumbnailURL: "https://cdn.example.com/thumb.png",
		EditorType:   "whiteboard",
	}

	doc := Assemble("file-1", raw, WalkResult{}, "file")

	assert.Equal(t, "Design System", doc.Metadata.FileName)
	assert.Equal(t, "2026-01-10T12:00:00Z", doc.Metadata.LastModified)
	assert.Equal(t, "42", doc.Metadata.Version)
	assert.Equal(t, "https://cdn.example.com/thumb.png", doc.Metadata.ThumbnailURL)
	assert.Equal(t, "whiteboard", doc.Metadata.EditorType)
	assert.Equal(t, "file", doc.Metadata.Source)
}

// TestAssemble_SortsStylesAndComponents tests that the flat tables are
// flattened into lists sorted by ID.
func TestAssemble_SortsStylesAndComponents(t *testing.T) {
	raw := &domain.RawFile{
		Styles: map[string]domain.RawStyle{
			"s:9": {Name: "Heading", StyleType: "TEXT"},
			"s:1": {Name: "Primary", StyleType: "FILL", Description: "Brand colour"},
			"s:5": {Name: "Shadow", StyleType: "EFFECT"},
		},
		Components: map[string]domain.RawComponent{
			"c:2": {Name: "Button", ComponentSetID: "set:1"},
			"c:1": {Name: "Avatar", Description: "User avatar"},
		},
	}

	doc := Assemble("file-1", raw, WalkResult{}, "api")

	require.Len(t, doc.Styles, 3)
	assert.Equal(t, "s:1", doc.Styles[0].ID)
	assert.Equal(t, "s:5", doc.Styles[1].ID)
	assert.Equal(t, "s:9", doc.Styles[2].ID)
	assert.Equal(t, "Primary", doc.Styles[0].Name)
	assert.Equal(t, "FILL", doc.Styles[0].Type)
	assert.Equal(t, "Brand colour", doc.Styles[0].Description)

	require.Len(t, doc.Components, 2)
	assert.Equal(t, "c:1", doc.Components[0].ID)
	assert.Equal(t, "c:2", doc.Components[1].ID)
	assert.Equal(t, "set:1", doc.Components[1].ComponentSetID)
}

// TestAssemble_StampsConfidence tests that the assembler delegates
// scoring and stamps the result.
func TestAssemble_StampsConfidence(t *testing.T) {
	raw := &domain.RawFile{
		Name:         "Landing",
		LastModified: "2026-01-10T12:00:00Z",
		Styles:       map[string]domain.RawStyle{"s:1": {Name: "Primary"}},
	}
	walk := WalkResult{Nodes: []domain.NodeInfo{{ID: "1:1", Type: "FRAME", Depth: 0}}}

	doc := Assemble("file-1", raw, walk, "api")

	// nodes +0.30, styles +0.15, named file +0.05, lastModified +0.05
	assert.InDelta(t, 0.55, doc.Confidence, 1e-9)
	assert.Equal(t, Score(doc), doc.Confidence)
}

// TestPipeline_FrameTextVector tests the walk-assemble-score pipeline on
// a small header tree.
func TestPipeline_FrameTextVector(t *testing.T) {
	walker := NewWalker(NewRegistry())
	raw := &domain.RawFile{
		Name: "Homepage",
		Document: &domain.RawNode{
			ID: "1:1", Type: "FRAME", Name: "Header",
			Children: []*domain.RawNode{
				{ID: "1:2", Type: "TEXT", Name: "Title", Characters: "Hello"},
				{ID: "1:3", Type: "VECTOR", Name: "Logo"},
			},
		},
	}

	walk := walker.Walk("file-1", raw.Document)
	doc := Assemble("file-1", raw, walk, "api")

	require.Len(t, doc.Nodes, 3)

	var text *domain.NodeInfo
	for i := range doc.Nodes {
		if doc.Nodes[i].Text != nil {
			text = &doc.Nodes[i]
		}
	}
	require.NotNil(t, text)
	assert.Equal(t, "Hello", text.Text.Content)

	assert.GreaterOrEqual(t, doc.Confidence, 0.3)
	assert.Contains(t, doc.Extractors, "frame")
	assert.Contains(t, doc.Extractors, "text")
	assert.Contains(t, doc.Extractors, "vector")

	// The named, visible frame root fans out a node-scoped document.
	require.Len(t, walk.Deferred, 1)
	assert.Equal(t, "1:1", walk.Deferred[0].NodeID)
}
