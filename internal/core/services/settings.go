package services

import (
	"fmt"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAIProvider = "ai.provider"
	keyAIModel    = "ai.model"
	keyAIAPIKey   = "ai.api_key"

	keyStoreBackend = "store.backend"
	keyStorePath    = "store.path"

	keyNoContext = "ask.no_context"

	keyChunkMaxLength = "retrieval.chunk_max_length"
	keyMaxChunks      = "retrieval.max_chunks"
	keyMaxTotalChars  = "retrieval.max_total_chars"

	keyKeywordWeight = "scoring.keyword_weight"
	keyTitleWeight   = "scoring.title_weight"
	keyPhraseBonus   = "scoring.phrase_bonus"
	keyMinKeywordLen = "scoring.min_keyword_len"

	keyComparisonPhrases = "intent.comparison_phrases"
)

// SettingsService manages application settings backed by the config store.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings, filling gaps with defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Provider:   s.getProvider(defaults.Provider),
		Model:      s.configStore.GetString(keyAIModel),
		APIKey:     s.configStore.GetString(keyAIAPIKey),
		Backend:    s.getBackend(defaults.Backend),
		CorpusPath: s.configStore.GetString(keyStorePath),
		NoContext:  s.getNoContext(defaults.NoContext),
		Retrieval: domain.RetrievalSettings{
			ChunkMaxLength: s.configStore.GetInt(keyChunkMaxLength),
			MaxChunks:      s.configStore.GetInt(keyMaxChunks),
			MaxTotalChars:  s.configStore.GetInt(keyMaxTotalChars),
		}.Normalise(),
		Scoring: domain.ScoringWeights{
			Keyword:       s.configStore.GetFloat(keyKeywordWeight),
			Title:         s.configStore.GetFloat(keyTitleWeight),
			PhraseBonus:   s.configStore.GetFloat(keyPhraseBonus),
			MinKeywordLen: s.configStore.GetInt(keyMinKeywordLen),
		}.Normalise(),
	}

	return settings, nil
}

// ComparisonPhrases returns the configured comparison cue phrases, or nil
// to use the classifier defaults.
func (s *SettingsService) ComparisonPhrases() []string {
	return s.configStore.GetStringSlice(keyComparisonPhrases)
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	pairs := []struct {
		key   string
		value any
	}{
		{keyAIProvider, settings.Provider.String()},
		{keyAIModel, settings.Model},
		{keyStoreBackend, string(settings.Backend)},
		{keyStorePath, settings.CorpusPath},
		{keyNoContext, string(settings.NoContext)},
		{keyChunkMaxLength, settings.Retrieval.ChunkMaxLength},
		{keyMaxChunks, settings.Retrieval.MaxChunks},
		{keyMaxTotalChars, settings.Retrieval.MaxTotalChars},
		{keyKeywordWeight, settings.Scoring.Keyword},
		{keyTitleWeight, settings.Scoring.Title},
		{keyPhraseBonus, settings.Scoring.PhraseBonus},
		{keyMinKeywordLen, settings.Scoring.MinKeywordLen},
	}

	for _, p := range pairs {
		if err := s.configStore.Set(p.key, p.value); err != nil {
			return fmt.Errorf("save %s: %w", p.key, err)
		}
	}

	// Never overwrite a stored key with an empty one.
	if settings.APIKey != "" {
		if err := s.configStore.Set(keyAIAPIKey, settings.APIKey); err != nil {
			return fmt.Errorf("save %s: %w", keyAIAPIKey, err)
		}
	}

	return nil
}

// SetProvider configures the generation provider.
func (s *SettingsService) SetProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("provider %q: %w", provider, domain.ErrUnsupportedType)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Provider = provider
	settings.Model = model
	settings.APIKey = apiKey
	return s.Save(settings)
}

// SetBackend configures the transcript store backend and its path.
func (s *SettingsService) SetBackend(backend domain.StoreBackend, path string) error {
	if !backend.IsValid() {
		return fmt.Errorf("backend %q: %w", backend, domain.ErrUnsupportedType)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Backend = backend
	settings.CorpusPath = path
	return s.Save(settings)
}

// SetNoContextPolicy configures the no-matching-excerpts behaviour.
func (s *SettingsService) SetNoContextPolicy(policy domain.NoContextPolicy) error {
	if !policy.IsValid() {
		return fmt.Errorf("policy %q: %w", policy, domain.ErrUnsupportedType)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.NoContext = policy
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Validate checks if current settings are complete and consistent.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Provider.IsValid() {
		return fmt.Errorf("provider %q: %w", settings.Provider, domain.ErrUnsupportedType)
	}
	if settings.Provider.RequiresAPIKey() && settings.APIKey == "" {
		return fmt.Errorf("%s requires an API key: %w", settings.Provider, domain.ErrLLMUnavailable)
	}
	if !settings.Backend.IsValid() {
		return fmt.Errorf("backend %q: %w", settings.Backend, domain.ErrUnsupportedType)
	}

	return nil
}

// ValidateProvider validates the generation configuration by pinging the
// provider.
func (s *SettingsService) ValidateProvider() error {
	if s.aiValidator == nil {
		return nil
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	return s.aiValidator.ValidateGenerator(settings.Provider, settings.Model, settings.APIKey)
}

// getProvider reads a provider with fallback.
func (s *SettingsService) getProvider(fallback domain.AIProvider) domain.AIProvider {
	v := domain.AIProvider(s.configStore.GetString(keyAIProvider))
	if !v.IsValid() {
		return fallback
	}
	return v
}

// getBackend reads a store backend with fallback.
func (s *SettingsService) getBackend(fallback domain.StoreBackend) domain.StoreBackend {
	v := domain.StoreBackend(s.configStore.GetString(keyStoreBackend))
	if !v.IsValid() {
		return fallback
	}
	return v
}

// getNoContext reads the no-context policy with fallback.
func (s *SettingsService) getNoContext(fallback domain.NoContextPolicy) domain.NoContextPolicy {
	v := domain.NoContextPolicy(s.configStore.GetString(keyNoContext))
	if !v.IsValid() {
		return fallback
	}
	return v
}
