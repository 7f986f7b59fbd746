package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(NewPorts(&mockSearchService{}, &mockAskService{}))
	require.NoError(t, err)
	return app
}

func TestNewApp(t *testing.T) {
	t.Run("valid ports", func(t *testing.T) {
		app := newTestApp(t)
		assert.Equal(t, messages.ViewMenu, app.CurrentView())
		assert.False(t, app.Ready())
	})

	t.Run("missing search service", func(t *testing.T) {
		app, err := NewApp(&Ports{})
		require.Error(t, err)
		assert.Nil(t, app)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("ask is optional", func(t *testing.T) {
		app, err := NewApp(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)
		assert.NotNil(t, app)
	})
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app := newTestApp(t)

	_, _ = app.Update(messages.ViewChanged{View: messages.ViewSearch})
	assert.Equal(t, messages.ViewSearch, app.CurrentView())

	_, _ = app.Update(messages.ViewChanged{View: messages.ViewAsk})
	assert.Equal(t, messages.ViewAsk, app.CurrentView())

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewTranscripts})
	assert.Equal(t, messages.ViewTranscripts, app.CurrentView())
	// Switching to transcripts triggers a load command.
	assert.NotNil(t, cmd)
}

func TestApp_Update_TranscriptSelected(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewSearch

	record := domain.TranscriptRecord{ID: "rec-1", Title: "Gold Update", Text: "Gold closed higher."}
	_, _ = app.Update(messages.TranscriptSelected{Record: record})

	assert.Equal(t, messages.ViewTranscript, app.CurrentView())
	require.NotNil(t, app.transcriptView.Record())
	assert.Equal(t, "rec-1", app.transcriptView.Record().ID)
}

func TestApp_Update_SearchCompleted(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewSearch
	app.searchView.SetDimensions(80, 24)

	results := []domain.SearchResult{
		{Record: domain.TranscriptRecord{Title: "Gold Update"}, Score: 0.9},
	}
	_, _ = app.Update(messages.SearchCompleted{Results: results})

	assert.Len(t, app.Results(), 1)
	assert.NoError(t, app.Err())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewSearch

	testErr := errors.New("search failed")
	_, _ = app.Update(messages.ErrorOccurred{Err: testErr})

	assert.Equal(t, testErr, app.Err())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_View_NotReady(t *testing.T) {
	app := newTestApp(t)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_Menu(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := app.View()

	assert.Contains(t, view, "tscribe")
	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "Ask")
	assert.Contains(t, view, "Transcripts")
}

func TestApp_View_Help(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app.currentView = messages.ViewHelp

	view := app.View()

	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "ctrl+c")
}

func TestApp_HelpEscReturnsToMenu(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app.currentView = messages.ViewHelp

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_SetDimensions(t *testing.T) {
	app := newTestApp(t)

	app.SetDimensions(120, 50)

	assert.True(t, app.Ready())
	assert.Equal(t, 120, app.width)
	assert.Equal(t, 50, app.height)
}
