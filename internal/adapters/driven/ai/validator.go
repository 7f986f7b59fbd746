package ai

import (
	"context"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator validates generation provider configurations.
type ConfigValidator struct{}

// NewConfigValidator creates a new AI config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateGenerator validates a generation configuration by pinging the
// provider with a short timeout.
func (v *ConfigValidator) ValidateGenerator(provider domain.AIProvider, model, apiKey string) error {
	gen, err := CreateGenerator(domain.AppSettings{
		Provider: provider,
		Model:    model,
		APIKey:   apiKey,
	})
	if err != nil {
		return err
	}
	if gen == nil {
		return nil
	}
	defer gen.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return gen.Ping(ctx)
}
