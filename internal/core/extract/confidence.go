package extract

import "github.com/custodia-labs/designctx-cli/internal/core/domain"

// Additive confidence weights. The sum is clamped to [0,1]; identical
// input always produces an identical score.
const (
	weightHasNodes      = 0.30
	weightHasComponents = 0.20
	weightHasStyles     = 0.15
	weightHasText       = 0.10
	weightHasFrames     = 0.10
	weightNamedFile     = 0.05
	weightLastModified  = 0.05
	weightManyNodes     = 0.05

	manyNodesThreshold = 10
)

// Score computes the confidence for an assembled document from what the
// extraction actually recovered.
func Score(doc domain.ContextDocument) float64 {
	score := 0.0

	if len(doc.Nodes) > 0 {
		score += weightHasNodes
	}
	if len(doc.Components) > 0 {
		score += weightHasComponents
	}
	if len(doc.Styles) > 0 {
		score += weightHasStyles
	}

	hasText, hasFrame := false, false
	for _, node := range doc.Nodes {
		if node.Text != nil {
			hasText = true
		}
		if node.Frame != nil {
			hasFrame = true
		}
		if hasText && hasFrame {
			break
		}
	}
	if hasText {
		score += weightHasText
	}
	if hasFrame {
		score += weightHasFrames
	}

	if doc.Metadata.FileName != "" && doc.Metadata.FileName != "Unknown" {
		score += weightNamedFile
	}
	if doc.Metadata.LastModified != "" {
		score += weightLastModified
	}
	if len(doc.Nodes) > manyNodesThreshold {
		score += weightManyNodes
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}
