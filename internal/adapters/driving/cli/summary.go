package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	summaryNode string
	summaryJSON bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file-key]",
	Short: "Show a lightweight summary of stored context",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryNode, "node", "", "node ID for node-scoped context")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output the summary as JSON")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if storeService == nil {
		return errors.New("store service not configured")
	}

	fileKey := args[0]
	summary, err := storeService.Summary(cmd.Context(), fileKey, summaryNode)
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	if summaryJSON {
		return printJSON(cmd, summary)
	}

	cmd.Printf("Summary: %s\n", summary.FileKey)
	if summary.NodeID != "" {
		cmd.Printf("  Node:       %s\n", summary.NodeID)
	}
	cmd.Printf("  Confidence: %.2f\n", summary.Confidence)
	cmd.Printf("  Nodes:      %d\n", summary.NodeCount)
	cmd.Printf("  Styles:     %d\n", summary.StyleCount)
	cmd.Printf("  Components: %d\n", summary.ComponentCount)
	if summary.Stored != "" {
		cmd.Printf("  Stored:     %s\n", summary.Stored)
	}
	if summary.Updated != "" {
		cmd.Printf("  Updated:    %s\n", summary.Updated)
	}
	return nil
}
