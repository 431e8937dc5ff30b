package extract

import "strings"

// Kind identifies one extractor in the registry. The set is closed: node
// types resolve to a kind through the lookup table below, and unknown
// types fall back to KindUnknown, which contributes nothing.
type Kind string

// Known extractor kinds.
const (
	// KindFrame extracts auto-layout attributes.
	KindFrame Kind = "frame"

	// KindComponent extracts component-definition linkage.
	KindComponent Kind = "component"

	// KindInstance extracts instance linkage and overrides.
	KindInstance Kind = "instance"

	// KindText extracts characters and typography.
	KindText Kind = "text"

	// KindVector extracts stroke and corner attributes.
	KindVector Kind = "vector"

	// KindStyle extracts fills, strokes and effects from generic
	// fill-bearing nodes.
	KindStyle Kind = "style"

	// KindUnknown is the fallback for unrecognised node types.
	KindUnknown Kind = ""
)

// String returns the kind name recorded in ContextDocument.Extractors.
func (k Kind) String() string {
	return string(k)
}

// kindsByType maps lowercased node types to extractor kinds.
var kindsByType = map[string]Kind{
	"frame":             KindFrame,
	"component":         KindComponent,
	"component_set":     KindComponent,
	"instance":          KindInstance,
	"text":              KindText,
	"vector":            KindVector,
	"line":              KindVector,
	"star":              KindVector,
	"polygon":           KindVector,
	"boolean_operation": KindVector,
	"rectangle":         KindStyle,
	"ellipse":           KindStyle,
	"section":           KindStyle,
}

// KindFor resolves a node's declared type to its extractor kind.
// Lookup is case-insensitive; unrecognised types yield KindUnknown.
func KindFor(nodeType string) Kind {
	return kindsByType[strings.ToLower(nodeType)]
}
