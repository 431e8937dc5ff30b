package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/designctx-cli/internal/adapters/driving/httpapi"
)

var (
	serveAddr  string
	serveToken string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serves the REST API for context extraction, storage and search.

Pass --token to require a Bearer token on every request; without it the
server runs in open mode (local use only).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":7333", "listen address")
	serveCmd.Flags().StringVar(&serveToken, "token", "", "require this Bearer token on API requests")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if contextService == nil || storeService == nil || searchService == nil {
		return errors.New("services not configured")
	}

	ports := &httpapi.Ports{
		Context: contextService,
		Store:   storeService,
		Search:  searchService,
	}

	server, err := httpapi.NewServer(serveAddr, ports, serveToken)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "HTTP API listening on %s\n", serveAddr)
	return server.Run(cmd.Context())
}
