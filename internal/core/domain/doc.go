// Package domain defines the core business entities for designctx.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContextDocument: The normalised, confidence-scored design context
//   - NodeInfo: One visited node of the design tree
//   - StyleInfo / ComponentInfo: Entries from the source's flat tables
//   - RawFile / RawNode: The untrusted payload from a Document Source
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
