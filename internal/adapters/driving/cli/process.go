package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

var (
	processForce bool
	processJSON  bool
)

var processCmd = &cobra.Command{
	Use:   "process [file-key]",
	Short: "Extract and store context for a design file",
	Long: `Fetches the raw design tree, runs the extraction pipeline and stores
the resulting context document.

When context for the file is already stored it is returned as-is; pass
--force to re-extract regardless.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVarP(&processForce, "force", "f", false, "re-extract even when context is already stored")
	processCmd.Flags().BoolVar(&processJSON, "json", false, "output the full document as JSON")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	fileKey := args[0]
	ctx := cmd.Context()

	var result domain.ExtractionResult
	var err error
	if processForce {
		result, err = contextService.ExtractAndStore(ctx, fileKey, domain.ExtractOptions{})
	} else {
		result, err = contextService.GetOrExtract(ctx, fileKey)
	}
	if err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	if processJSON {
		return printJSON(cmd, result.Document)
	}

	if result.Cached {
		cmd.Printf("Context for %s already stored.\n", fileKey)
	} else {
		cmd.Printf("Processed %s.\n", fileKey)
	}
	printDocumentBrief(cmd, result.Document)
	if result.DeferredWrites > 0 {
		cmd.Printf("  Node contexts: %d stored", result.DeferredWrites)
		if result.DeferredFailures > 0 {
			cmd.Printf(" (%d failed)", result.DeferredFailures)
		}
		cmd.Println()
	}
	return nil
}

// printDocumentBrief writes the short human-readable form of a document.
func printDocumentBrief(cmd *cobra.Command, doc *domain.ContextDocument) {
	if doc == nil {
		return
	}
	cmd.Printf("  File:       %s\n", doc.Metadata.FileName)
	cmd.Printf("  Confidence: %.2f\n", doc.Confidence)
	cmd.Printf("  Nodes:      %d\n", len(doc.Nodes))
	cmd.Printf("  Styles:     %d\n", len(doc.Styles))
	cmd.Printf("  Components: %d\n", len(doc.Components))
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
