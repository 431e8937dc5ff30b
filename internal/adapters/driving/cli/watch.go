package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-extract context when exported files change",
	Long: `Watches the configured export directory and re-runs extraction for
every file that changes. Only available with a file source; API sources
cannot report changes.

Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}
	if watchableSource == nil {
		return fmt.Errorf("watch: %w (set source.type to file)", domain.ErrWatchNotSupported)
	}

	ctx := cmd.Context()
	changes, err := watchableSource.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	cmd.Println("Watching for changes. Press Ctrl+C to stop.")
	for change := range changes {
		cmd.Printf("Change detected: %s\n", change.FileKey)
		result, err := contextService.ExtractAndStore(ctx, change.FileKey, domain.ExtractOptions{})
		if err != nil {
			cmd.Printf("  re-extract failed: %v\n", err)
			continue
		}
		if result.Document != nil {
			cmd.Printf("  re-extracted (confidence %.2f, %d nodes)\n",
				result.Document.Confidence, len(result.Document.Nodes))
		}
	}
	return nil
}
