package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// MaxDepth bounds the traversal. Children below this depth are not
// visited; the node at the bound is still recorded.
const MaxDepth = 20

// DeferredWrite is a node-scoped side-write collected during the walk.
// The façade flushes deferred writes after the main document stores;
// individual failures are logged and never fail the parent extraction.
type DeferredWrite struct {
	// NodeID identifies the significant node.
	NodeID string

	// Document is the lightweight node-scoped document to store.
	Document domain.ContextDocument
}

// WalkResult is the accumulated output of one traversal.
type WalkResult struct {
	// Nodes is the flat node list in document order.
	Nodes []domain.NodeInfo

	// Deferred holds the node-scoped side-writes for significant nodes.
	Deferred []DeferredWrite

	// Extractors lists the kinds that actually ran, in first-applied order.
	Extractors []string
}

// Walker performs the depth-bounded traversal, dispatching each node to
// the extractor registry.
type Walker struct {
	registry *Registry
}

// NewWalker creates a walker over the given registry.
func NewWalker(registry *Registry) *Walker {
	return &Walker{registry: registry}
}

// Walk traverses the tree rooted at root and accumulates the flat node
// list, applied extractor kinds and deferred side-writes. A nil root
// yields an empty result: malformed input degrades, it does not fail.
func (w *Walker) Walk(fileKey string, root *domain.RawNode) WalkResult {
	var res WalkResult
	state := &walkState{seen: make(map[Kind]bool), ids: make(map[string]bool)}
	w.walk(fileKey, root, 0, &res, state)
	return res
}

// walkState carries per-walk bookkeeping across recursive calls.
type walkState struct {
	seen map[Kind]bool
	ids  map[string]bool
	anon int
}

// uniqueID reserves id for the current walk. Raw trees are untrusted
// and may declare the same id on several nodes; collisions get a
// numeric suffix so node IDs and side-write keys stay unique within
// one document.
func (s *walkState) uniqueID(id string) string {
	if !s.ids[id] {
		s.ids[id] = true
		return id
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", id, n)
		if !s.ids[candidate] {
			s.ids[candidate] = true
			return candidate
		}
	}
}

func (w *Walker) walk(fileKey string, node *domain.RawNode, depth int, res *WalkResult, state *walkState) {
	if node == nil || depth > MaxDepth {
		return
	}

	info := w.buildBase(node, depth, state)

	kind, applied := w.registry.Apply(node, &info)
	if applied && !state.seen[kind] {
		state.seen[kind] = true
		res.Extractors = append(res.Extractors, kind.String())
	}

	res.Nodes = append(res.Nodes, info)

	if isSignificant(node) {
		res.Deferred = append(res.Deferred, deferredWrite(fileKey, info, kind, applied))
	}

	for _, child := range node.Children {
		w.walk(fileKey, child, depth+1, res, state)
	}
}

// buildBase constructs the base NodeInfo every node receives regardless
// of its type. Missing IDs are synthesised and duplicate source IDs
// suffixed to keep node IDs unique within one document; missing names
// fall back to "TYPE_id".
func (w *Walker) buildBase(node *domain.RawNode, depth int, state *walkState) domain.NodeInfo {
	id := node.ID
	if id == "" {
		id = fmt.Sprintf("anon_%d", state.anon)
		state.anon++
	}
	id = state.uniqueID(id)

	name := node.Name
	if name == "" {
		name = fmt.Sprintf("%s_%s", node.Type, id)
	}

	info := domain.NodeInfo{
		ID:      id,
		Type:    node.Type,
		Name:    name,
		Visible: node.IsVisible(),
		Locked:  node.Locked,
		Depth:   depth,
	}
	if node.AbsoluteBoundingBox != nil {
		bounds := *node.AbsoluteBoundingBox
		info.Bounds = &bounds
	}
	return info
}

// isSignificant reports whether a node qualifies for its own node-scoped
// document: a visible COMPONENT/FRAME/GROUP whose source-declared name is
// non-empty and not underscore-prefixed.
func isSignificant(node *domain.RawNode) bool {
	switch strings.ToUpper(node.Type) {
	case "COMPONENT", "FRAME", "GROUP":
	default:
		return false
	}
	if node.Name == "" || strings.HasPrefix(node.Name, "_") {
		return false
	}
	return node.IsVisible()
}

// deferredWrite builds the lightweight node-scoped document for one
// significant node.
func deferredWrite(fileKey string, info domain.NodeInfo, kind Kind, applied bool) DeferredWrite {
	doc := domain.ContextDocument{
		FileKey:    fileKey,
		NodeID:     info.ID,
		Confidence: domain.NodeDocumentConfidence,
		Nodes:      []domain.NodeInfo{info},
		Metadata: domain.Metadata{
			Extracted: time.Now().UTC().Format(domain.TimestampLayout),
		},
	}
	if applied {
		doc.Extractors = []string{kind.String()}
	}
	return DeferredWrite{NodeID: info.ID, Document: doc}
}
