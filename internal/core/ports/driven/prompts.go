package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Returns the prompt content and any error encountered.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptAnswer frames a single-context question. The template expects
	// %s (context blocks) and %s (question) placeholders.
	PromptAnswer = "answer"

	// PromptCompare frames a two-timeframe comparison. The template
	// expects %s (timeframe description), %s (context blocks) and
	// %s (question) placeholders.
	PromptCompare = "compare"

	// PromptNoContext frames a question for which no transcript excerpts
	// matched. The template expects a %s (question) placeholder.
	PromptNoContext = "no_context"
)

// PromptStoreAware is an optional interface for services that can use
// custom prompts. If the store is never set, embedded defaults are used.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	SetPromptStore(store PromptStore)
}
