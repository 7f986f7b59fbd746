package services

import (
	"fmt"
	"strings"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// Ensure PromptAssembler can take customised prompts.
var _ driven.PromptStoreAware = (*PromptAssembler)(nil)

// defaultAnswerPrompt frames a single-context question.
const defaultAnswerPrompt = `You are a research assistant answering questions about a collection of video transcripts.
Answer the question using the transcript excerpts below. Be concise and cite the transcript titles and dates you draw your answer from.
If the excerpts do not contain the answer, say so.

Transcript excerpts:
%s

Question: %s

Answer:`

// defaultComparePrompt frames a two-timeframe comparison.
const defaultComparePrompt = `You are a research assistant analysing a collection of video transcripts.
The user wants to compare what was said across two time periods: %s.
Using the transcript excerpts below, describe what changed between the periods. Cite the transcript titles and dates for every claim, and organise the answer by period.

Transcript excerpts:
%s

Question: %s

Analysis:`

// defaultNoContextPrompt frames a question with no matching excerpts.
const defaultNoContextPrompt = `You are a research assistant for a collection of video transcripts.
No matching transcript excerpts were found for the question below. Tell the user that the transcripts contain nothing on this topic, then answer briefly from general knowledge if you can, clearly marking it as such.

Question: %s

Answer:`

// PromptAssembler builds the instruction text sent to the generation
// model. Pure text construction: the network call belongs to the caller.
type PromptAssembler struct {
	promptStore driven.PromptStore
}

// NewPromptAssembler creates a prompt assembler using embedded default
// templates.
func NewPromptAssembler() *PromptAssembler {
	return &PromptAssembler{}
}

// SetPromptStore sets the prompt store for loading customisable templates.
// If not set, the assembler uses the embedded defaults.
func (a *PromptAssembler) SetPromptStore(store driven.PromptStore) {
	a.promptStore = store
}

// Assemble builds the final prompt for a query. The context chunks must
// already be in the order they should appear (chronological).
//
// Branches: no context at all falls back to the no-excerpts framing;
// comparison intent gets the analysis framing with a timeframe
// description; everything else gets the plain question framing.
func (a *PromptAssembler) Assemble(query string, intent domain.Intent, context []domain.ScoredChunk) string {
	if len(context) == 0 {
		return fmt.Sprintf(a.loadPrompt(driven.PromptNoContext, defaultNoContextPrompt), query)
	}

	blocks := RenderBlocks(context)

	if intent.Comparison {
		template := a.loadPrompt(driven.PromptCompare, defaultComparePrompt)
		return fmt.Sprintf(template, describeTimeframes(intent), blocks, query)
	}

	template := a.loadPrompt(driven.PromptAnswer, defaultAnswerPrompt)
	return fmt.Sprintf(template, blocks, query)
}

// RenderBlocks renders each chunk as a labelled transcript block.
func RenderBlocks(chunks []domain.ScoredChunk) string {
	blocks := make([]string, len(chunks))
	for i, c := range chunks {
		blocks[i] = fmt.Sprintf("--- Transcript: %s (%s) ---\n%s", c.Title, c.DateLabel, c.Text)
	}
	return strings.Join(blocks, "\n\n")
}

// describeTimeframes turns the derived date split into prose for the
// comparison instruction.
func describeTimeframes(intent domain.Intent) string {
	switch {
	case len(intent.Years) >= 2:
		return fmt.Sprintf("up to and including %d, versus %d onwards",
			intent.Years[0], intent.Years[len(intent.Years)-1])
	case len(intent.Years) == 1:
		return fmt.Sprintf("before and during %d, versus after %d",
			intent.Years[0], intent.Years[0])
	default:
		return "the two timeframes implied by the question"
	}
}

// loadPrompt loads a template from the store, falling back to the default.
func (a *PromptAssembler) loadPrompt(name, fallback string) string {
	if a.promptStore == nil {
		return fallback
	}
	prompt, err := a.promptStore.Load(name)
	if err != nil || prompt == "" {
		return fallback
	}
	return prompt
}
