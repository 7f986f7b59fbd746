package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to match against transcript excerpts"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	From  string `json:"from,omitempty" jsonschema:"only include transcripts on or after this date (YYYY-MM-DD)"`
	To    string `json:"to,omitempty" jsonschema:"only include transcripts before this date (YYYY-MM-DD, exclusive)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	TranscriptID string   `json:"transcript_id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Score        float64  `json:"score"`
	Highlights   []string `json:"highlights,omitempty"`
	Excerpt      string   `json:"excerpt,omitempty"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the natural-language question to answer from the transcripts"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string          `json:"answer"`
	Sources []domain.Source `json:"sources,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the transcript corpus for excerpts matching a query",
	}, s.handleSearch)

	if s.ports.Ask != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ask",
			Description: "Answer a question using relevant transcript excerpts as context",
		}, s.handleAsk)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	opts := domain.SearchOptions{Limit: limit}
	if input.From != "" || input.To != "" {
		rng, err := parseToolDateRange(input.From, input.To)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		opts.Range = rng
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			TranscriptID: results[i].Record.ID,
			Title:        results[i].Record.Title,
			Date:         results[i].Record.DateLabel(),
			Score:        results[i].Score,
			Highlights:   results[i].Highlights,
			Excerpt:      results[i].Chunk.Text,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Ask.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		Answer:  answer.Text,
		Sources: answer.Sources,
	}, nil
}

// parseToolDateRange builds a half-open range from optional from/to strings.
func parseToolDateRange(from, to string) (*domain.DateRange, error) {
	rng := &domain.DateRange{}
	if from != "" {
		t := domain.ParseTranscriptDate(from)
		if t == nil {
			return nil, fmt.Errorf("invalid from date %q: %w", from, domain.ErrInvalidInput)
		}
		rng.Start = t
	}
	if to != "" {
		t := domain.ParseTranscriptDate(to)
		if t == nil {
			return nil, fmt.Errorf("invalid to date %q: %w", to, domain.ErrInvalidInput)
		}
		rng.End = t
	}
	return rng, nil
}
