package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for designctx resources.
	uriScheme = "designctx://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing every stored context document.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "contexts",
		Name:        "contexts",
		Description: "Summaries of all stored context documents",
		MIMEType:    "application/json",
	}, s.handleContextsResource)

	// Template for one context document by storage key.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "contexts/{key}",
		Name:        "context-document",
		Description: "Full context document for one file or node",
		MIMEType:    "application/json",
	}, s.handleContextResource)
}

// handleContextsResource lists summaries of every stored document.
func (s *Server) handleContextsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Backing == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	docs, err := s.ports.Backing.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contexts: %w", err)
	}

	type contextInfo struct {
		Key        string  `json:"key"`
		FileKey    string  `json:"fileKey"`
		NodeID     string  `json:"nodeId,omitempty"`
		FileName   string  `json:"fileName,omitempty"`
		Confidence float64 `json:"confidence"`
		NodeCount  int     `json:"nodeCount"`
	}

	infos := make([]contextInfo, len(docs))
	for i := range docs {
		doc := &docs[i]
		infos[i] = contextInfo{
			Key:        doc.Key(),
			FileKey:    doc.FileKey,
			NodeID:     doc.NodeID,
			FileName:   doc.Metadata.FileName,
			Confidence: doc.Confidence,
			NodeCount:  len(doc.Nodes),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling contexts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleContextResource returns one full context document by storage key.
func (s *Server) handleContextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Backing == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	key := extractContextKey(req.Params.URI)
	if key == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Backing.Get(ctx, key)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling context: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractContextKey extracts the storage key from a URI like
// designctx://contexts/{key}.
func extractContextKey(uri string) string {
	const prefix = uriScheme + "contexts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
