package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change how designctx talks to the design API, where context
is stored, and how the cache behaves.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one setting by key",
	Long: `Sets a single setting addressed by its config key, for example:

  designctx settings set api.token <token>
  designctx settings set source.type file
  designctx settings set cache.ttl_seconds 600`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	if settings.API.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	} else {
		cmd.Printf("  Base URL: (not set)\n")
	}
	if settings.API.Token != "" {
		cmd.Printf("  Token: %s\n", maskToken(settings.API.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	cmd.Printf("  Timeout: %ds\n", settings.API.TimeoutSeconds)
	cmd.Printf("  Rate limit: %d requests/minute\n", settings.API.RequestsPerMinute)
	cmd.Println()

	cmd.Println("[Source]")
	cmd.Printf("  Type: %s\n", settings.Source.Type.Description())
	if settings.Source.Type.SupportsWatch() {
		cmd.Printf("  Export dir: %s\n", settings.Source.ExportDir)
	}
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  TTL: %ds\n", settings.Cache.TTLSeconds)
	cmd.Printf("  Max entries: %d\n", settings.Cache.MaxEntries)
	cmd.Println()

	cmd.Println("[Store]")
	cmd.Printf("  Backend: %s\n", settings.Store.Backend.Description())
	if settings.Store.DataDir != "" {
		cmd.Printf("  Data dir: %s\n", settings.Store.DataDir)
	}
	cmd.Printf("  Stale after: %ds\n", settings.Store.StaleAfterSeconds)
	cmd.Println()

	cmd.Println("[Batch]")
	cmd.Printf("  Max concurrent: %d\n", settings.Batch.MaxConcurrent)
	cmd.Println()

	cmd.Println("[Screenshot]")
	cmd.Printf("  Format: %s\n", settings.Screenshot.Format)
	cmd.Printf("  Scale: %.2g\n", settings.Screenshot.Scale)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s.\n", key)
	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
