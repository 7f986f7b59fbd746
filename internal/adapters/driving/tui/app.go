package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/styles"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/views/ask"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/views/menu"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/views/search"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/views/transcript"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/views/transcripts"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the styled search view component.
	searchView *search.View

	// askView is the question-and-answer view component.
	askView *ask.View

	// transcriptsView is the transcript list view component.
	transcriptsView *transcripts.View

	// transcriptView is the transcript text view component.
	transcriptView *transcript.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		menuView:        menu.NewView(s),
		searchView:      search.NewView(s, nil, ports.Search),
		askView:         ask.NewView(s, nil, ports.Ask),
		transcriptsView: transcripts.NewView(s, ports.Search),
		transcriptView:  transcript.NewView(s, ports.Search),
		currentView:     messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tscribe - Transcript Search"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.askView.SetDimensions(msg.Width, msg.Height)
		a.transcriptsView.SetDimensions(msg.Width, msg.Height)
		a.transcriptView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
			a.err = a.askView.Err()
			return a, cmd

		case messages.ViewTranscripts:
			a.transcriptsView, cmd = a.transcriptsView.Update(msg)
			return a, cmd

		case messages.ViewTranscript:
			a.transcriptView, cmd = a.transcriptView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.AskCompleted:
		a.askView, cmd = a.askView.Update(msg)
		a.err = a.askView.Err()
		return a, cmd

	case messages.TranscriptsLoaded:
		a.transcriptsView, cmd = a.transcriptsView.Update(msg)
		return a, cmd

	case messages.TranscriptLoaded:
		a.transcriptView, cmd = a.transcriptView.Update(msg)
		return a, cmd

	case messages.TranscriptSelected:
		// Navigate to the transcript viewer; esc returns to wherever
		// the selection came from.
		backView := a.currentView
		a.currentView = messages.ViewTranscript
		return a, a.transcriptView.SetRecord(msg.Record, backView)

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewAsk:
			a.askView.Reset()
			return a, a.askView.Init()
		case messages.ViewTranscripts:
			return a, a.transcriptsView.Init()
		case messages.ViewMenu, messages.ViewHelp, messages.ViewTranscript:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
		case messages.ViewTranscript:
			a.transcriptView, cmd = a.transcriptView.Update(msg)
		case messages.ViewMenu, messages.ViewTranscripts, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewAsk:
		a.askView, cmd = a.askView.Update(msg)
	case messages.ViewTranscripts:
		a.transcriptsView, cmd = a.transcriptsView.Update(msg)
	case messages.ViewTranscript:
		a.transcriptView, cmd = a.transcriptView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewAsk:
		return a.askView.View()
	case messages.ViewTranscripts:
		return a.transcriptsView.View()
	case messages.ViewTranscript:
		return a.transcriptView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Enter search query
  enter       Submit search
  esc         Back to Menu

Ask:
  (type)      Enter a question
  enter       Submit question
  n           New question
  esc         Back to Menu

Results:
  j/k, ↑/↓    Navigate results
  enter       Open transcript
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.searchView.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.askView.SetDimensions(width, height)
}
