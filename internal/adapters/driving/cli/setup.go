package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup [file-key]",
	Short: "Run the quick-setup pipeline for a design file",
	Long: `Runs the three onboarding steps for a file: process it, capture a
screenshot, and generate a summary. Each step's failure is reported
independently; a failed step never stops the next one.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	report, err := contextService.QuickSetup(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	cmd.Printf("Setup for %s:\n", report.FileKey)
	cmd.Printf("  Process file:       %s\n", stepStatus(report.Steps.FileProcessed))
	cmd.Printf("  Capture screenshot: %s\n", stepStatus(report.Steps.ScreenshotCaptured))
	cmd.Printf("  Generate summary:   %s\n", stepStatus(report.Steps.SummaryGenerated))

	if report.Screenshot != nil {
		cmd.Printf("\n  Screenshot: %s\n", report.Screenshot.URL)
	}
	if report.Summary != nil {
		cmd.Printf("  Confidence: %.2f (%d nodes)\n", report.Summary.Confidence, report.Summary.NodeCount)
	}
	for _, msg := range report.Errors {
		cmd.Printf("\n  Warning: %s\n", msg)
	}
	return nil
}

func stepStatus(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
