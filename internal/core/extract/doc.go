// Package extract implements the extraction pipeline that turns a raw
// design tree into a normalised context document.
//
// The pipeline runs in four stages, leaves first:
//
//   - Registry: closed per-kind dispatch adding type-specific attributes
//   - Walker: depth-bounded traversal accumulating a flat node list and
//     deferred node-scoped side-writes
//   - Assemble: combines walker output, flat style/component tables and
//     file metadata into one domain.ContextDocument
//   - Score: the [0,1] confidence heuristic over the assembled document
//
// All stages are pure in-process computation: no I/O, no suspension.
// Malformed input degrades the result (fewer nodes, lower confidence)
// instead of failing.
package extract
