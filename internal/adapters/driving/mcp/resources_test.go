package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

func TestExtractContextKey(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "file-scoped key",
			uri:      "designctx://contexts/file-123",
			expected: "file-123",
		},
		{
			name:     "node-scoped key",
			uri:      "designctx://contexts/file-123-1:2",
			expected: "file-123-1:2",
		},
		{
			name:     "invalid prefix",
			uri:      "file://contexts/file-123",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractContextKey(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleContextsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil backing store returns empty list", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)

		req := makeReadResourceRequest("designctx://contexts")
		result, err := server.handleContextsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("lists stored documents", func(t *testing.T) {
		ports := validPorts()
		ports.Backing = &mockBacking{docs: map[string]*domain.ContextDocument{
			"file-1": {
				FileKey:    "file-1",
				Confidence: 0.8,
				Nodes:      []domain.NodeInfo{{ID: "1:1", Type: "FRAME", Name: "Welcome"}},
				Metadata:   domain.Metadata{FileName: "Onboarding"},
			},
		}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("designctx://contexts")
		result, err := server.handleContextsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "file-1")
		assert.Contains(t, result.Contents[0].Text, "Onboarding")
		assert.Contains(t, result.Contents[0].Text, `"nodeCount": 1`)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		ports := validPorts()
		ports.Backing = &mockBacking{err: errors.New("database error")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("designctx://contexts")
		_, err = server.handleContextsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing contexts")
	})
}

func TestServer_handleContextResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil backing store returns not found", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)

		req := makeReadResourceRequest("designctx://contexts/file-1")
		_, err = server.handleContextResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		ports := validPorts()
		ports.Backing = &mockBacking{docs: map[string]*domain.ContextDocument{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("designctx://other/file-1")
		_, err = server.handleContextResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("returns full document", func(t *testing.T) {
		ports := validPorts()
		ports.Backing = &mockBacking{docs: map[string]*domain.ContextDocument{
			"file-1-1:1": {
				FileKey:    "file-1",
				NodeID:     "1:1",
				Confidence: 0.8,
				Nodes:      []domain.NodeInfo{{ID: "1:1", Type: "FRAME", Name: "Welcome"}},
			},
		}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("designctx://contexts/file-1-1:1")
		result, err := server.handleContextResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"fileKey": "file-1"`)
		assert.Contains(t, result.Contents[0].Text, "Welcome")
	})

	t.Run("unknown key returns not found", func(t *testing.T) {
		ports := validPorts()
		ports.Backing = &mockBacking{docs: map[string]*domain.ContextDocument{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("designctx://contexts/ghost")
		_, err = server.handleContextResource(ctx, req)

		require.Error(t, err)
	})
}
