package domain

const unknownDescription = "Unknown"

// AIProvider identifies a generation service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is the Google Gemini cloud API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderOpenAI, AIProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderGemini || p == AIProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Gemini (cloud)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// NoContextPolicy controls what happens when no transcript excerpts match
// a query. Historical behaviour diverged here, so it is configurable.
type NoContextPolicy string

// Available no-context policies.
const (
	// NoContextAskAnyway still calls the generation service with a
	// prompt stating that no excerpts were found. Degrades gracefully:
	// the model may answer from general knowledge. This is the default.
	NoContextAskAnyway NoContextPolicy = "ask_anyway"

	// NoContextCannedReply short-circuits with a fixed message and
	// never calls the generation service.
	NoContextCannedReply NoContextPolicy = "canned_reply"
)

// IsValid returns true if the policy is recognised.
func (p NoContextPolicy) IsValid() bool {
	return p == NoContextAskAnyway || p == NoContextCannedReply
}

// Default retrieval and scoring values.
const (
	DefaultChunkMaxLength = 800
	DefaultMaxChunks      = 15
	DefaultMaxTotalChars  = 14000

	DefaultKeywordWeight = 1.0
	DefaultTitleWeight   = 0.5
	DefaultPhraseBonus   = 1.0
	DefaultMinKeywordLen = 3
)

// RetrievalSettings bounds how much context is gathered for one prompt.
type RetrievalSettings struct {
	// ChunkMaxLength is the maximum chunk length in characters.
	ChunkMaxLength int

	// MaxChunks caps how many chunks one prompt may include.
	MaxChunks int

	// MaxTotalChars is the context window budget: the total character
	// count of all excerpts in one assembled prompt.
	MaxTotalChars int
}

// DefaultRetrievalSettings returns the standard retrieval bounds.
func DefaultRetrievalSettings() RetrievalSettings {
	return RetrievalSettings{
		ChunkMaxLength: DefaultChunkMaxLength,
		MaxChunks:      DefaultMaxChunks,
		MaxTotalChars:  DefaultMaxTotalChars,
	}
}

// Normalise replaces non-positive values with defaults.
func (s RetrievalSettings) Normalise() RetrievalSettings {
	d := DefaultRetrievalSettings()
	if s.ChunkMaxLength <= 0 {
		s.ChunkMaxLength = d.ChunkMaxLength
	}
	if s.MaxChunks <= 0 {
		s.MaxChunks = d.MaxChunks
	}
	if s.MaxTotalChars <= 0 {
		s.MaxTotalChars = d.MaxTotalChars
	}
	return s
}

// StoreBackend identifies a transcript store implementation.
type StoreBackend string

// Available store backends.
const (
	// StoreBackendJSON reads the corpus from a single JSON index file.
	StoreBackendJSON StoreBackend = "json"

	// StoreBackendSQLite reads the corpus from the SQLite archive.
	StoreBackendSQLite StoreBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StoreBackend) IsValid() bool {
	return b == StoreBackendJSON || b == StoreBackendSQLite
}

// AppSettings holds all user-configurable application settings.
type AppSettings struct {
	// Provider is the generation service provider.
	Provider AIProvider

	// Model is the generation model name. Empty means provider default.
	Model string

	// APIKey is the credential for cloud providers.
	APIKey string

	// Backend selects the transcript store implementation.
	Backend StoreBackend

	// CorpusPath points at the JSON index file or SQLite data directory.
	CorpusPath string

	// NoContext is the policy for queries with no matching excerpts.
	NoContext NoContextPolicy

	// Retrieval bounds context gathering.
	Retrieval RetrievalSettings

	// Scoring holds the relevance heuristic weights.
	Scoring ScoringWeights
}

// DefaultAppSettings returns settings suitable for first run.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Provider:  AIProviderGemini,
		Backend:   StoreBackendJSON,
		NoContext: NoContextAskAnyway,
		Retrieval: DefaultRetrievalSettings(),
		Scoring:   DefaultScoringWeights(),
	}
}

// ScoringWeights are the tunable constants of the relevance heuristic.
// Historical variants disagreed on exact values (title bonus has been
// anywhere from 0.5 to 2), so they are configuration, not law.
type ScoringWeights struct {
	// Keyword is the score added per query keyword found in the chunk.
	Keyword float64

	// Title is the score added per query keyword found in the parent
	// record's title.
	Title float64

	// PhraseBonus is the flat score added when the whole query occurs
	// verbatim in the chunk.
	PhraseBonus float64

	// MinKeywordLen drops shorter tokens to suppress stop-word noise.
	MinKeywordLen int
}

// DefaultScoringWeights returns the standard scoring weights.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Keyword:       DefaultKeywordWeight,
		Title:         DefaultTitleWeight,
		PhraseBonus:   DefaultPhraseBonus,
		MinKeywordLen: DefaultMinKeywordLen,
	}
}

// Normalise replaces non-positive values with defaults.
func (w ScoringWeights) Normalise() ScoringWeights {
	d := DefaultScoringWeights()
	if w.Keyword <= 0 {
		w.Keyword = d.Keyword
	}
	if w.Title <= 0 {
		w.Title = d.Title
	}
	if w.PhraseBonus < 0 {
		w.PhraseBonus = d.PhraseBonus
	}
	if w.MinKeywordLen <= 0 {
		w.MinKeywordLen = d.MinKeywordLen
	}
	return w
}
