package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

var (
	getNode    string
	getNoCache bool
	getJSON    bool
	getFresh   bool
)

var getCmd = &cobra.Command{
	Use:   "get [file-key]",
	Short: "Read stored context for a design file",
	Long: `Reads the stored context document for a file, cache first.

Pass --node to read a node-scoped document, --no-cache to go straight to
the backing store, or --fresh to re-extract when the stored context is
stale or missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getNode, "node", "", "node ID for node-scoped context")
	getCmd.Flags().BoolVar(&getNoCache, "no-cache", false, "bypass the TTL cache")
	getCmd.Flags().BoolVar(&getFresh, "fresh", false, "re-extract stale or missing context")
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output the full document as JSON")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	if storeService == nil {
		return errors.New("store service not configured")
	}

	fileKey := args[0]
	ctx := cmd.Context()

	if getFresh {
		if contextService == nil {
			return errors.New("context service not configured")
		}
		result, err := contextService.EnrichedContext(ctx, fileKey, getNode)
		if err != nil {
			return fmt.Errorf("get failed: %w", err)
		}
		return outputDocument(cmd, result.Document, result.Cached)
	}

	result, err := storeService.Get(ctx, fileKey, getNode, domain.GetOptions{SkipCache: getNoCache})
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}
	if !result.Found {
		cmd.Printf("No stored context for %s. Run 'designctx process %s' first.\n",
			domain.ContextKey(fileKey, getNode), fileKey)
		return nil
	}
	return outputDocument(cmd, result.Document, result.Cached)
}

func outputDocument(cmd *cobra.Command, doc *domain.ContextDocument, cached bool) error {
	if getJSON {
		return printJSON(cmd, doc)
	}

	cmd.Printf("Context: %s\n", doc.Key())
	if cached {
		cmd.Println("  (served from cache)")
	}
	printDocumentBrief(cmd, doc)
	if doc.Metadata.Stored != "" {
		cmd.Printf("  Stored:     %s\n", doc.Metadata.Stored)
	}
	if doc.Metadata.Updated != "" {
		cmd.Printf("  Updated:    %s\n", doc.Metadata.Updated)
	}
	return nil
}
