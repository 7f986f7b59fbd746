package mcp

import (
	"context"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	record  *domain.TranscriptRecord
	records []domain.TranscriptRecord
	err     error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) ([]domain.SearchResult, error) {
	return m.results, m.err
}

func (m *mockSearchService) Get(_ context.Context, _ string) (*domain.TranscriptRecord, error) {
	return m.record, m.err
}

func (m *mockSearchService) List(_ context.Context) ([]domain.TranscriptRecord, error) {
	return m.records, m.err
}

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	answer *domain.Answer
	err    error
}

func (m *mockAskService) Ask(_ context.Context, _ string) (*domain.Answer, error) {
	return m.answer, m.err
}
