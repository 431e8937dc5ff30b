// Command designctx extracts, stores and searches design-file context.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	configfile "github.com/custodia-labs/designctx-cli/internal/adapters/driven/config/file"
	screenshotapi "github.com/custodia-labs/designctx-cli/internal/adapters/driven/screenshot/httpapi"
	sourcefile "github.com/custodia-labs/designctx-cli/internal/adapters/driven/source/file"
	sourceapi "github.com/custodia-labs/designctx-cli/internal/adapters/driven/source/httpapi"
	"github.com/custodia-labs/designctx-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/designctx-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/designctx-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
	"github.com/custodia-labs/designctx-cli/internal/core/services"
	"github.com/custodia-labs/designctx-cli/internal/core/store"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	backing, closeBacking, err := buildBackingStore(settings)
	if err != nil {
		return err
	}
	defer closeBacking()

	contextStore := store.New(backing, store.Options{
		TTL:        time.Duration(settings.Cache.TTLSeconds) * time.Second,
		MaxEntries: settings.Cache.MaxEntries,
		StaleAfter: time.Duration(settings.Store.StaleAfterSeconds) * time.Second,
	})

	source, watcher := buildSource(settings)
	screenshots := buildScreenshotService(settings)

	contextService := services.NewContextService(source, contextStore, screenshots)
	searchService := services.NewSearchService(backing)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Context:  contextService,
		Store:    contextStore,
		Search:   searchService,
		Settings: settingsService,
		Watcher:  watcher,
		Backing:  backing,
	})

	return cli.ExecuteContext(ctx)
}

// buildBackingStore selects the configured persistence backend.
func buildBackingStore(settings *domain.AppSettings) (driven.BackingStore, func(), error) {
	if settings.Store.Backend == domain.StorageBackendMemory {
		return memory.NewContextStore(), func() {}, nil
	}

	sqliteStore, err := sqlite.NewStore(settings.Store.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening context store: %w", err)
	}
	return sqliteStore, func() { sqliteStore.Close() }, nil //nolint:errcheck
}

// buildSource selects the configured Document Source. The watcher return
// is non-nil only for file sources, which can report changes.
func buildSource(settings *domain.AppSettings) (driven.DocumentSource, driven.WatchableSource) {
	if settings.Source.Type == domain.SourceTypeFile {
		fileSource := sourcefile.NewSource(settings.Source.ExportDir)
		return fileSource, fileSource
	}

	return sourceapi.NewSource(sourceapi.Config{
		BaseURL:           settings.API.BaseURL,
		Token:             settings.API.Token,
		Timeout:           time.Duration(settings.API.TimeoutSeconds) * time.Second,
		RequestsPerMinute: settings.API.RequestsPerMinute,
	}), nil
}

// buildScreenshotService wires visual capture when the API is configured.
// File sources have no screenshot endpoint, so setup runs degrade
// gracefully without one.
func buildScreenshotService(settings *domain.AppSettings) driven.ScreenshotService {
	if settings.API.BaseURL == "" {
		return nil
	}
	return screenshotapi.NewService(screenshotapi.Config{
		BaseURL: settings.API.BaseURL,
		Token:   settings.API.Token,
	})
}
