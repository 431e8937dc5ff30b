// Package cli implements the designctx command-line interface using cobra.
// Commands talk to the core exclusively through the driving ports; the
// composition root injects concrete services with SetServices before
// Execute runs.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driving"
	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// Injected services. Nil services make their commands fail with a clear
// message instead of panicking.
var (
	contextService  driving.ContextService
	storeService    driving.StoreService
	searchService   driving.SearchService
	settingsService driving.SettingsService
	watchableSource driven.WatchableSource
	backingStore    driven.BackingStore
)

var (
	version = "dev"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "designctx",
	Short: "Design context extraction and caching",
	Long: `designctx extracts structured context from design files and keeps it
in a local, TTL-cached store.

Process a file once, then read, search, and update its context without
touching the design API again until it goes stale.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services bundles everything the commands need.
type Services struct {
	Context  driving.ContextService
	Store    driving.StoreService
	Search   driving.SearchService
	Settings driving.SettingsService

	// Watcher is non-nil only when the configured source supports
	// change notification.
	Watcher driven.WatchableSource

	// Backing feeds the MCP contexts listing resource.
	Backing driven.BackingStore
}

// SetServices injects the service implementations. Call before Execute.
func SetServices(s Services) {
	contextService = s.Context
	storeService = s.Store
	searchService = s.Search
	settingsService = s.Settings
	watchableSource = s.Watcher
	backingStore = s.Backing
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so
// long-running commands stop on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
