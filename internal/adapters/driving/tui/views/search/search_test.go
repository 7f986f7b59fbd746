package search

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// mockSearchService implements driving.SearchService for tests.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	queries []string
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	_ domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	return m.results, m.err
}

func (m *mockSearchService) Get(_ context.Context, _ string) (*domain.TranscriptRecord, error) {
	return nil, m.err
}

func (m *mockSearchService) List(_ context.Context) ([]domain.TranscriptRecord, error) {
	return nil, m.err
}

func sampleResults() []domain.SearchResult {
	return []domain.SearchResult{
		{
			Record:     domain.TranscriptRecord{ID: "rec-1", Title: "Gold Update"},
			Chunk:      domain.Chunk{RecordID: "rec-1", Text: "Gold closed higher."},
			Score:      0.9,
			Highlights: []string{"gold closed higher"},
		},
		{
			Record: domain.TranscriptRecord{ID: "rec-2", Title: "Silver Outlook"},
			Chunk:  domain.Chunk{RecordID: "rec-2", Text: "Silver followed gold."},
			Score:  0.7,
		},
	}
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})

	require.NotNil(t, view)
	assert.True(t, view.InputFocused())
	assert.False(t, view.Ready())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})

	view, _ = view.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.True(t, view.Ready())
	assert.Equal(t, 100, view.Width())
	assert.Equal(t, 40, view.Height())
}

func TestView_SubmitSearch(t *testing.T) {
	svc := &mockSearchService{results: sampleResults()}
	view := NewView(nil, nil, svc)
	view.SetDimensions(80, 24)
	view.SetQuery("gold")

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	assert.Len(t, completed.Results, 2)
	assert.Equal(t, []string{"gold"}, svc.queries)
	assert.False(t, view.InputFocused())
}

func TestView_SubmitSearch_Empty(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, view.InputFocused())
}

func TestView_SearchCompleted_SetsResults(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)

	view, _ = view.Update(messages.SearchCompleted{Results: sampleResults()})

	assert.Len(t, view.Results(), 2)
	assert.Equal(t, 0, view.SelectedIndex())
	assert.NoError(t, view.Err())
}

func TestView_SearchCompleted_Error(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)

	searchErr := errors.New("store unavailable")
	view, _ = view.Update(messages.SearchCompleted{Err: searchErr})

	assert.Equal(t, searchErr, view.Err())
}

func TestView_ResultsMode_Navigation(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)
	view, _ = view.Update(messages.SearchCompleted{Results: sampleResults()})

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.SelectedIndex())

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_ResultsMode_EnterOpensTranscript(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)
	view, _ = view.Update(messages.SearchCompleted{Results: sampleResults()})

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	selected, ok := msg.(messages.TranscriptSelected)
	require.True(t, ok)
	assert.Equal(t, "rec-1", selected.Record.ID)
}

func TestView_ResultsMode_NewSearch(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)
	view, _ = view.Update(messages.SearchCompleted{Results: sampleResults()})

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, view.InputFocused())
	assert.Equal(t, "", view.Query())
}

func TestView_Esc_ReturnsToMenu(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_PerformSearch_NoService(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.SetDimensions(80, 24)

	cmd := view.performSearch("gold")
	msg := cmd()

	errMsg, ok := msg.(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, ErrNoSearchService)
}

func TestView_View_RendersResults(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)
	view, _ = view.Update(messages.SearchCompleted{Results: sampleResults()})

	out := view.View()

	assert.Contains(t, out, "Gold Update")
	assert.Contains(t, out, "2 results")
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, nil, &mockSearchService{})
	view.SetDimensions(80, 24)
	view.SetQuery("gold")
	view, _ = view.Update(messages.SearchCompleted{Results: sampleResults()})

	view.Reset()

	assert.True(t, view.InputFocused())
	assert.Empty(t, view.Query())
	assert.Empty(t, view.Results())
}
