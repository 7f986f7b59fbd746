// Package ai provides factory functions for creating generation adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/llm/gemini"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/llm/ollama"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/llm/openai"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateGenerator creates the appropriate generator based on settings.
// Returns nil (not an error) when no provider is configured, so callers
// can run search-only without a generation service.
func CreateGenerator(settings domain.AppSettings) (driven.Generator, error) {
	if settings.Provider == "" {
		return nil, nil
	}
	if settings.Provider.RequiresAPIKey() && settings.APIKey == "" {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderGemini:
		return gemini.NewGenerator(gemini.Config{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	case domain.AIProviderOpenAI:
		return openai.NewGenerator(openai.Config{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	case domain.AIProviderOllama:
		return ollama.NewGenerator(ollama.Config{
			Model: settings.Model,
		}), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", settings.Provider)
	}
}

// CreateAndValidateGenerator creates a generator and validates connectivity.
// Returns the generator if successful, or an error with guidance.
func CreateAndValidateGenerator(settings domain.AppSettings) (driven.Generator, error) {
	gen, err := CreateGenerator(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'tscribe settings provider' to fix",
			domain.ErrLLMUnavailable, err)
	}
	if gen == nil {
		return nil, nil
	}

	// Validate connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := gen.Ping(ctx); err != nil {
		_ = gen.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'tscribe settings provider' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return gen, nil
}
