package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
	"github.com/quill-labs/tscribe-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// Generation defaults for the ask pipeline.
const (
	defaultAskMaxTokens   = 1024
	defaultAskTemperature = 0.4
)

// User-facing messages for degenerate generation outcomes. These are
// answers, not errors: the caller is a human expecting prose.
const (
	msgBlockedSafety = "The model declined to answer this question because it was flagged by its safety policy. Try rephrasing the question."

	msgNoExcerpts = "No matching transcript excerpts were found for this question."
)

// AskService orchestrates the question-answering pipeline:
// classify intent, select context, assemble the prompt, call the
// generation service once, and interpret the reply.
type AskService struct {
	corpus     *domain.Corpus
	classifier *IntentClassifier
	selector   *Selector
	assembler  *PromptAssembler
	generator  driven.Generator
	links      driven.LinkBuilder
	retrieval  domain.RetrievalSettings
	noContext  domain.NoContextPolicy
}

// NewAskService creates an ask service. The generator may be nil, in
// which case Ask fails with domain.ErrLLMUnavailable; the link builder
// may be nil, in which case sources carry no URL.
func NewAskService(
	corpus *domain.Corpus,
	classifier *IntentClassifier,
	selector *Selector,
	assembler *PromptAssembler,
	generator driven.Generator,
	links driven.LinkBuilder,
	retrieval domain.RetrievalSettings,
	noContext domain.NoContextPolicy,
) *AskService {
	if !noContext.IsValid() {
		noContext = domain.NoContextAskAnyway
	}
	return &AskService{
		corpus:     corpus,
		classifier: classifier,
		selector:   selector,
		assembler:  assembler,
		generator:  generator,
		links:      links,
		retrieval:  retrieval.Normalise(),
		noContext:  noContext,
	}
}

// Ask answers a natural-language question about the transcript corpus.
func (s *AskService) Ask(ctx context.Context, query string) (*domain.Answer, error) {
	logger.Section("Ask Execution")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query: %w", domain.ErrInvalidInput)
	}
	if s.corpus.Len() == 0 {
		return nil, domain.ErrDataUnavailable
	}
	if s.generator == nil {
		return nil, domain.ErrLLMUnavailable
	}

	intent := s.classifier.Classify(query)

	selected := s.selectContext(intent, query)
	logger.Info("Context: %d chunks selected (comparison=%t)", len(selected), intent.Comparison)

	if len(selected) == 0 && s.noContext == domain.NoContextCannedReply {
		return &domain.Answer{Text: msgNoExcerpts}, nil
	}

	prompt := s.assembler.Assemble(query, intent, Chronological(selected))
	logger.Debug("Prompt length: %d chars", len(prompt))

	// The single suspension point of the pipeline. No retries here: a
	// failure surfaces to the caller, and retry policy belongs to the
	// collaborator boundary.
	result, err := s.generator.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   defaultAskMaxTokens,
		Temperature: defaultAskTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generation service: %w", err)
	}

	return &domain.Answer{
		Text:    interpretResult(result),
		Sources: buildSources(selected, s.links),
	}, nil
}

// selectContext runs the context selector once for a plain question, or
// twice with a shared budget for a comparison.
func (s *AskService) selectContext(intent domain.Intent, query string) []domain.ScoredChunk {
	r := s.retrieval

	if !intent.Comparison {
		return s.selector.Select(s.corpus, query, nil, r.MaxChunks, r.MaxTotalChars)
	}

	a := s.selector.Select(s.corpus, intent.Keywords, intent.RangeA, r.MaxChunks, r.MaxTotalChars)
	b := s.selector.Select(s.corpus, intent.Keywords, intent.RangeB, r.MaxChunks, r.MaxTotalChars)
	return s.selector.Merge(a, b, r.MaxChunks, r.MaxTotalChars)
}

// interpretResult maps a generation result to displayable answer text.
// Blocked and empty outcomes become explanatory prose, never errors.
func interpretResult(result *driven.GenerationResult) string {
	if result == nil {
		return "The model returned no usable response."
	}

	if result.Blocked {
		reason := result.BlockReason
		if reason == "" {
			reason = result.FinishReason
		}
		if strings.Contains(strings.ToUpper(reason), "SAFETY") {
			return msgBlockedSafety
		}
		if reason == "" {
			reason = "unspecified"
		}
		return fmt.Sprintf("The model declined to answer (reason: %s).", reason)
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		reason := result.FinishReason
		if reason == "" {
			reason = "unspecified"
		}
		return fmt.Sprintf("The model returned no usable response (stop reason: %s).", reason)
	}

	return text
}

// buildSources derives the citation list from the chunks actually sent,
// not from anything the model claims. Deduplicated by (title, date) in
// first-seen order.
func buildSources(chunks []domain.ScoredChunk, links driven.LinkBuilder) []domain.Source {
	type key struct{ title, date string }

	seen := make(map[key]bool)
	var sources []domain.Source

	for _, c := range chunks {
		k := key{title: c.Title, date: c.DateLabel}
		if seen[k] {
			continue
		}
		seen[k] = true

		var url string
		if links != nil {
			url = links.LookupURL(c.Title)
		}
		sources = append(sources, domain.Source{
			Title:     c.Title,
			DateLabel: c.DateLabel,
			URL:       url,
		})
	}

	return sources
}
