package services

import (
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAPIBaseURL       = "api.base_url"
	keyAPIToken         = "api.token"
	keyAPITimeout       = "api.timeout_seconds"
	keyAPIRatePerMinute = "api.requests_per_minute"
	keySourceType       = "source.type"
	keySourceExportDir  = "source.export_dir"
	keyCacheTTL         = "cache.ttl_seconds"
	keyCacheMaxEntries  = "cache.max_entries"
	keyStoreBackend     = "store.backend"
	keyStoreDataDir     = "store.data_dir"
	keyStoreStaleAfter  = "store.stale_after_seconds"
	keyBatchConcurrency = "batch.max_concurrent"
	keyScreenshotFormat = "screenshot.format"
	keyScreenshotScale  = "screenshot.scale"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings with defaults applied for
// every key the config store does not carry.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:           s.configStore.GetString(keyAPIBaseURL),
			Token:             s.configStore.GetString(keyAPIToken),
			TimeoutSeconds:    s.getInt(keyAPITimeout, defaults.API.TimeoutSeconds),
			RequestsPerMinute: s.getInt(keyAPIRatePerMinute, defaults.API.RequestsPerMinute),
		},
		Source: domain.SourceSettings{
			Type:      s.getSourceType(defaults.Source.Type),
			ExportDir: s.configStore.GetString(keySourceExportDir),
		},
		Cache: domain.CacheSettings{
			TTLSeconds: s.getInt(keyCacheTTL, defaults.Cache.TTLSeconds),
			MaxEntries: s.getInt(keyCacheMaxEntries, defaults.Cache.MaxEntries),
		},
		Store: domain.StoreSettings{
			Backend:           s.getStorageBackend(defaults.Store.Backend),
			DataDir:           s.configStore.GetString(keyStoreDataDir),
			StaleAfterSeconds: s.getInt(keyStoreStaleAfter, defaults.Store.StaleAfterSeconds),
		},
		Batch: domain.BatchSettings{
			MaxConcurrent: s.getInt(keyBatchConcurrency, defaults.Batch.MaxConcurrent),
		},
		Screenshot: domain.ScreenshotSettings{
			Format: s.getString(keyScreenshotFormat, defaults.Screenshot.Format),
			Scale:  s.getFloat(keyScreenshotScale, defaults.Screenshot.Scale),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}

	values := map[string]any{
		keyAPIBaseURL:       settings.API.BaseURL,
		keyAPITimeout:       settings.API.TimeoutSeconds,
		keyAPIRatePerMinute: settings.API.RequestsPerMinute,
		keySourceType:       settings.Source.Type.String(),
		keySourceExportDir:  settings.Source.ExportDir,
		keyCacheTTL:         settings.Cache.TTLSeconds,
		keyCacheMaxEntries:  settings.Cache.MaxEntries,
		keyStoreBackend:     settings.Store.Backend.String(),
		keyStoreDataDir:     settings.Store.DataDir,
		keyStoreStaleAfter:  settings.Store.StaleAfterSeconds,
		keyBatchConcurrency: settings.Batch.MaxConcurrent,
		keyScreenshotFormat: settings.Screenshot.Format,
		keyScreenshotScale:  settings.Screenshot.Scale,
	}
	for key, value := range values {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	// The token is only written when present so a plain Save never
	// clears stored credentials.
	if settings.API.Token != "" {
		if err := s.configStore.Set(keyAPIToken, settings.API.Token); err != nil {
			return fmt.Errorf("save %s: %w", keyAPIToken, err)
		}
	}

	return nil
}

// Set validates and persists one setting addressed by its config key.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyAPIBaseURL, keyAPIToken, keySourceExportDir, keyStoreDataDir, keyScreenshotFormat:
		return s.configStore.Set(key, value)

	case keySourceType:
		sourceType := domain.SourceType(value)
		if !sourceType.IsValid() {
			return fmt.Errorf("invalid source type %q (expected api or file)", value)
		}
		return s.configStore.Set(key, value)

	case keyStoreBackend:
		backend := domain.StorageBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("invalid storage backend %q (expected sqlite or memory)", value)
		}
		return s.configStore.Set(key, value)

	case keyAPITimeout, keyAPIRatePerMinute, keyCacheTTL, keyCacheMaxEntries, keyStoreStaleAfter, keyBatchConcurrency:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("setting %s expects an integer: %w", key, err)
		}
		if n <= 0 {
			return fmt.Errorf("setting %s must be positive", key)
		}
		return s.configStore.Set(key, n)

	case keyScreenshotScale:
		scale, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("setting %s expects a number: %w", key, err)
		}
		if scale <= 0 {
			return fmt.Errorf("setting %s must be positive", key)
		}
		return s.configStore.Set(key, scale)

	default:
		return fmt.Errorf("unknown setting %q", key)
	}
}

// Validate checks that the currently stored settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validateSettings(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// validateSettings checks every settings section in a stable order.
func validateSettings(settings *domain.AppSettings) error {
	sections := []struct {
		name  string
		check func() error
	}{
		{"api", func() error { return validateAPISettings(&settings.API) }},
		{"source", func() error { return validateSourceSettings(&settings.Source) }},
		{"cache", func() error { return validateCacheSettings(&settings.Cache) }},
		{"store", func() error { return validateStoreSettings(&settings.Store) }},
		{"batch", func() error { return validateBatchSettings(&settings.Batch) }},
		{"screenshot", func() error { return validateScreenshotSettings(&settings.Screenshot) }},
	}
	for _, section := range sections {
		if err := section.check(); err != nil {
			return fmt.Errorf("%s settings: %w", section.name, err)
		}
	}
	return nil
}

func validateAPISettings(c *domain.APISettings) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, is.URL),
		validation.Field(&c.TimeoutSeconds, validation.Min(1), validation.Max(600)),
		validation.Field(&c.RequestsPerMinute, validation.Min(1), validation.Max(6000)),
	)
}

func validateSourceSettings(c *domain.SourceSettings) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Type, validation.Required,
			validation.In(domain.SourceTypeAPI, domain.SourceTypeFile)),
		validation.Field(&c.ExportDir,
			validation.Required.When(c.Type == domain.SourceTypeFile).
				Error("export_dir is required for file sources")),
	)
}

func validateCacheSettings(c *domain.CacheSettings) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TTLSeconds, validation.Min(1), validation.Max(86400)),
		validation.Field(&c.MaxEntries, validation.Min(1), validation.Max(1<<20)),
	)
}

func validateStoreSettings(c *domain.StoreSettings) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required,
			validation.In(domain.StorageBackendSQLite, domain.StorageBackendMemory)),
		validation.Field(&c.StaleAfterSeconds, validation.Min(1)),
	)
}

func validateBatchSettings(c *domain.BatchSettings) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MaxConcurrent, validation.Min(1), validation.Max(32)),
	)
}

func validateScreenshotSettings(c *domain.ScreenshotSettings) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.In("png", "jpg", "svg")),
		validation.Field(&c.Scale, validation.Min(0.25), validation.Max(4.0)),
	)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSourceType(defaultVal domain.SourceType) domain.SourceType {
	val := s.configStore.GetString(keySourceType)
	if val == "" {
		return defaultVal
	}
	sourceType := domain.SourceType(val)
	if !sourceType.IsValid() {
		return defaultVal
	}
	return sourceType
}

func (s *SettingsService) getStorageBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(keyStoreBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
