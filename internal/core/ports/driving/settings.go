package driving

import "github.com/quill-labs/tscribe-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetProvider configures the generation provider.
	SetProvider(provider domain.AIProvider, model, apiKey string) error

	// SetBackend configures the transcript store backend and its path.
	SetBackend(backend domain.StoreBackend, path string) error

	// SetNoContextPolicy configures the no-matching-excerpts behaviour.
	SetNoContextPolicy(policy domain.NoContextPolicy) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Validate checks if current settings are complete and consistent.
	Validate() error

	// ValidateProvider validates the generation configuration by pinging
	// the provider.
	ValidateProvider() error
}
