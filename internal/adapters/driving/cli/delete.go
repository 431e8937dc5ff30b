package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

var deleteNode string

var deleteCmd = &cobra.Command{
	Use:   "delete [file-key]",
	Short: "Delete stored context for a design file",
	Long: `Removes the stored context document and evicts its cache entry.
Deleting context that does not exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteNode, "node", "", "node ID for node-scoped context")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if storeService == nil {
		return errors.New("store service not configured")
	}

	fileKey := args[0]
	if err := storeService.Delete(cmd.Context(), fileKey, deleteNode); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	cmd.Printf("Deleted context for %s.\n", domain.ContextKey(fileKey, deleteNode))
	return nil
}
