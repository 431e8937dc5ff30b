package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_context tool.
type SearchInput struct {
	Query     string   `json:"query" jsonschema:"text to match against node, component and style names"`
	FileKeys  []string `json:"fileKeys,omitempty" jsonschema:"restrict the search to these file keys"`
	NodeTypes []string `json:"nodeTypes,omitempty" jsonschema:"restrict node matching to these node types"`
	Limit     int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// SearchOutput is the output schema for the search_context tool.
type SearchOutput struct {
	Results      []domain.SearchHit `json:"results"`
	TotalResults int                `json:"totalResults"`
	Suggestion   string             `json:"suggestion,omitempty"`
}

// GetInput is the input schema for the get_context tool.
type GetInput struct {
	FileKey string `json:"fileKey" jsonschema:"the design file key"`
	NodeID  string `json:"nodeId,omitempty" jsonschema:"node ID for node-scoped context"`
	Fresh   bool   `json:"fresh,omitempty" jsonschema:"re-extract when the stored context is stale or missing"`
}

// GetOutput is the output schema for the get_context tool.
type GetOutput struct {
	Found    bool                    `json:"found"`
	Cached   bool                    `json:"cached,omitempty"`
	Document *domain.ContextDocument `json:"document,omitempty"`
}

// ExtractInput is the input schema for the extract_context tool.
type ExtractInput struct {
	FileKey string `json:"fileKey" jsonschema:"the design file key to extract"`
	Force   bool   `json:"force,omitempty" jsonschema:"re-extract even when context is already stored"`
}

// BatchInput is the input schema for the process_batch tool.
type BatchInput struct {
	FileKeys      []string `json:"fileKeys" jsonschema:"design file keys to process"`
	MaxConcurrent int      `json:"maxConcurrent,omitempty" jsonschema:"files processed concurrently per chunk (default 3)"`
}

// SetupInput is the input schema for the quick_setup tool.
type SetupInput struct {
	FileKey string `json:"fileKey" jsonschema:"the design file key to set up"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_context",
		Description: "Search stored design context for nodes, components and styles",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_context",
		Description: "Read stored design context for a file or node",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_context",
		Description: "Extract and store design context for a file",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "process_batch",
		Description: "Extract design context for multiple files",
	}, s.handleBatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "quick_setup",
		Description: "Process a design file, capture a screenshot and generate a summary",
	}, s.handleSetup)
}

// handleSearch handles the search_context tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		FileKeys:  input.FileKeys,
		NodeTypes: input.NodeTypes,
		Limit:     input.Limit,
	}

	report, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, SearchOutput{
		Results:      report.Results,
		TotalResults: report.TotalResults,
		Suggestion:   report.Suggestion,
	}, nil
}

// handleGet handles the get_context tool invocation. A missing document
// is a normal result with found false, never a tool error.
func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, GetOutput, error) {
	if input.Fresh {
		result, err := s.ports.Context.EnrichedContext(ctx, input.FileKey, input.NodeID)
		if err != nil {
			return nil, GetOutput{}, err
		}
		return nil, GetOutput{Found: true, Cached: result.Cached, Document: result.Document}, nil
	}

	result, err := s.ports.Store.Get(ctx, input.FileKey, input.NodeID, domain.GetOptions{})
	if err != nil {
		return nil, GetOutput{}, err
	}
	return nil, GetOutput{Found: result.Found, Cached: result.Cached, Document: result.Document}, nil
}

// handleExtract handles the extract_context tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, domain.ExtractionResult, error) {
	var result domain.ExtractionResult
	var err error
	if input.Force {
		result, err = s.ports.Context.ExtractAndStore(ctx, input.FileKey, domain.ExtractOptions{})
	} else {
		result, err = s.ports.Context.GetOrExtract(ctx, input.FileKey)
	}
	if err != nil {
		return nil, domain.ExtractionResult{}, err
	}
	return nil, result, nil
}

// handleBatch handles the process_batch tool invocation.
func (s *Server) handleBatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BatchInput,
) (*mcp.CallToolResult, domain.BatchReport, error) {
	report, err := s.ports.Context.ProcessBatch(ctx, input.FileKeys, domain.BatchOptions{
		MaxConcurrent: input.MaxConcurrent,
	})
	if err != nil {
		return nil, domain.BatchReport{}, err
	}
	return nil, report, nil
}

// handleSetup handles the quick_setup tool invocation.
func (s *Server) handleSetup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SetupInput,
) (*mcp.CallToolResult, domain.SetupReport, error) {
	report, err := s.ports.Context.QuickSetup(ctx, input.FileKey)
	if err != nil {
		return nil, domain.SetupReport{}, err
	}
	return nil, report, nil
}
