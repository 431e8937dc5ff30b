package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("creates server with valid ports", func(t *testing.T) {
		server, err := NewServer(validPorts())

		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("rejects missing context service", func(t *testing.T) {
		ports := validPorts()
		ports.Context = nil

		_, err := NewServer(ports)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingContextService)
	})

	t.Run("rejects missing store service", func(t *testing.T) {
		ports := validPorts()
		ports.Store = nil

		_, err := NewServer(ports)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingStoreService)
	})

	t.Run("rejects missing search service", func(t *testing.T) {
		ports := validPorts()
		ports.Search = nil

		_, err := NewServer(ports)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("backing store is optional", func(t *testing.T) {
		ports := validPorts()
		ports.Backing = nil

		_, err := NewServer(ports)

		assert.NoError(t, err)
	})
}
