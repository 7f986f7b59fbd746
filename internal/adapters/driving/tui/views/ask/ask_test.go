package ask

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// mockAskService implements driving.AskService for tests.
type mockAskService struct {
	answer    *domain.Answer
	err       error
	questions []string
}

func (m *mockAskService) Ask(_ context.Context, question string) (*domain.Answer, error) {
	m.questions = append(m.questions, question)
	return m.answer, m.err
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, &mockAskService{})

	require.NotNil(t, view)
	assert.True(t, view.InputFocused())
	assert.False(t, view.Waiting())
}

func TestView_SubmitQuestion(t *testing.T) {
	svc := &mockAskService{
		answer: &domain.Answer{
			Text: "Gold closed higher.",
			Sources: []domain.Source{
				{Title: "Gold Update", DateLabel: "2023-01-05"},
			},
		},
	}
	view := NewView(nil, nil, svc)
	view.SetDimensions(80, 24)
	view.input.SetValue("What happened to gold?")

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, view.Waiting())
	assert.False(t, view.InputFocused())

	msg := cmd()
	completed, ok := msg.(messages.AskCompleted)
	require.True(t, ok)
	assert.Equal(t, "Gold closed higher.", completed.Answer.Text)
	assert.Equal(t, []string{"What happened to gold?"}, svc.questions)
}

func TestView_SubmitQuestion_Empty(t *testing.T) {
	view := NewView(nil, nil, &mockAskService{})
	view.SetDimensions(80, 24)

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, view.Waiting())
}

func TestView_AskCompleted_RendersAnswerAndSources(t *testing.T) {
	view := NewView(nil, nil, &mockAskService{})
	view.SetDimensions(80, 24)

	view, _ = view.Update(messages.AskCompleted{
		Answer: &domain.Answer{
			Text: "Gold closed higher.",
			Sources: []domain.Source{
				{Title: "Gold Update", DateLabel: "2023-01-05", URL: "https://example.com/watch"},
			},
		},
	})

	assert.False(t, view.Waiting())
	require.NotNil(t, view.Answer())

	out := view.View()
	assert.Contains(t, out, "Gold closed higher.")
	assert.Contains(t, out, "Sources:")
	assert.Contains(t, out, "Gold Update (2023-01-05)")
	assert.Contains(t, out, "https://example.com/watch")
}

func TestView_AskCompleted_Error(t *testing.T) {
	view := NewView(nil, nil, &mockAskService{})
	view.SetDimensions(80, 24)

	view, _ = view.Update(messages.AskCompleted{Err: domain.ErrLLMUnavailable})

	assert.ErrorIs(t, view.Err(), domain.ErrLLMUnavailable)
	assert.Contains(t, view.View(), "Error:")
}

func TestView_PerformAsk_NoService(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.SetDimensions(80, 24)

	cmd := view.performAsk("What happened to gold?")
	msg := cmd()

	completed, ok := msg.(messages.AskCompleted)
	require.True(t, ok)
	assert.ErrorIs(t, completed.Err, ErrNoAskService)
}

func TestView_NewQuestion(t *testing.T) {
	view := NewView(nil, nil, &mockAskService{})
	view.SetDimensions(80, 24)
	view, _ = view.Update(messages.AskCompleted{
		Answer: &domain.Answer{Text: "Gold closed higher."},
	})
	view.focusInput = false

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, view.InputFocused())
	assert.Nil(t, view.Answer())
	assert.Empty(t, view.Question())
}

func TestView_Esc_ReturnsToMenu(t *testing.T) {
	view := NewView(nil, nil, &mockAskService{})
	view.SetDimensions(80, 24)

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, nil, &mockAskService{})
	view.SetDimensions(80, 24)
	view, _ = view.Update(messages.AskCompleted{
		Answer: &domain.Answer{Text: "Gold closed higher."},
	})

	view.Reset()

	assert.True(t, view.InputFocused())
	assert.Nil(t, view.Answer())
	assert.False(t, view.Waiting())
}
