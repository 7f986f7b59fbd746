package driven

import "context"

// Generator is the text completion service that answers assembled prompts.
// This is an optional service - when nil, the ask pipeline is disabled and
// only direct search is available.
//
// Implementations may include:
//   - Gemini (Google generateContent API)
//   - OpenAI (chat completions)
//   - Ollama (local models)
type Generator interface {
	// Generate produces a completion for the prompt. A blocked or empty
	// model reply is NOT an error: it is reported through the result so
	// the caller can turn it into user-facing prose. Only transport and
	// API failures return an error.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (*GenerationResult, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// request. Used at startup to verify credentials before serving.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}

// GenerationResult is the interpreted shape of a model reply.
type GenerationResult struct {
	// Text is the extracted answer text. Empty when the reply was
	// blocked or contained no usable candidates.
	Text string

	// FinishReason is the provider's stop reason ("STOP", "MAX_TOKENS",
	// "SAFETY", ...). Empty when the provider reported none.
	FinishReason string

	// Blocked is true when the provider declined to answer, e.g. a
	// safety policy block.
	Blocked bool

	// BlockReason carries the provider's block explanation, if any.
	BlockReason string
}
