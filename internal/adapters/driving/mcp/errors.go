// Package mcp provides an MCP (Model Context Protocol) server adapter for
// designctx. It lets AI assistants like Claude extract, read and search
// design context directly.
package mcp

import "errors"

// Required-port errors returned by Ports.Validate.
var (
	ErrMissingContextService = errors.New("mcp: context service is required")
	ErrMissingStoreService   = errors.New("mcp: store service is required")
	ErrMissingSearchService  = errors.New("mcp: search service is required")
)
