package driven

import "github.com/quill-labs/tscribe-cli/internal/core/domain"

// AIConfigValidator validates generation provider configurations.
// Implementations verify that configurations are valid by testing
// connectivity to the underlying AI service.
type AIConfigValidator interface {
	// ValidateGenerator validates a generation configuration by pinging
	// the provider. Returns nil if the configuration is valid.
	ValidateGenerator(provider domain.AIProvider, model, apiKey string) error
}
