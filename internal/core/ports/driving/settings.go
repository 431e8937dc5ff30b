package driving

import "github.com/custodia-labs/designctx-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set validates and persists one setting addressed by its config key
	// (e.g. "cache.ttl_seconds"). The value is parsed per the key's type.
	Set(key, value string) error

	// Validate checks that the currently stored settings are usable.
	Validate() error

	// GetDefaults returns the built-in default settings.
	GetDefaults() domain.AppSettings
}
