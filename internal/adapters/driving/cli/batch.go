package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

var (
	batchMaxConcurrent int
	batchJSON          bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [file-key...]",
	Short: "Process multiple design files",
	Long: `Processes every given file key, a chunk at a time. Files within a
chunk run concurrently; one file's failure never aborts the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchMaxConcurrent, "max-concurrent", "c", domain.DefaultBatchConcurrency, "files processed concurrently per chunk")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "output the batch report as JSON")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	report, err := contextService.ProcessBatch(cmd.Context(), args, domain.BatchOptions{
		MaxConcurrent: batchMaxConcurrent,
	})
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if batchJSON {
		return printJSON(cmd, report)
	}

	cmd.Printf("Batch %s:\n\n", report.ID)
	for i := range report.Results {
		item := &report.Results[i]
		if item.Success {
			cmd.Printf("  ok   %s (confidence %.2f, %d nodes)\n", item.FileKey, item.Confidence, item.NodeCount)
		} else {
			cmd.Printf("  FAIL %s: %s\n", item.FileKey, item.Error)
		}
	}
	cmd.Printf("\n%d of %d succeeded, %d failed.\n", report.Successful, report.Total, report.Failed)

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", report.Failed, report.Total)
	}
	return nil
}
