// Package ask provides the question-and-answer view for the TUI.
package ask

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/components/input"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/components/status"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/keymap"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/styles"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
)

// View represents the ask view with a question input and answer display.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	statusbar *status.Bar

	askService driving.AskService
	ctx        context.Context

	answer       *domain.Answer
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	waiting      bool
	focusInput   bool
}

// NewView creates a new ask view.
func NewView(s *styles.Styles, km *keymap.KeyMap, askService driving.AskService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQueryInput(s, "Ask", "Ask a question..."),
		statusbar:  status.NewBar(s, km),
		askService: askService,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AskCompleted:
		v.handleAskCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.waiting = false
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Enter in input mode submits the question
	if msg.Type == tea.KeyEnter && v.focusInput {
		question := v.input.Value()
		if question == "" || v.waiting {
			return v, nil
		}
		v.waiting = true
		v.focusInput = false
		v.input.Blur()
		v.statusbar.SetState(status.StateThinking)
		return v, v.performAsk(question)
	}

	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Answer mode: scroll and start a new question
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "n":
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		v.answer = nil
		v.lines = nil
		v.scrollOffset = 0
		v.err = nil
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
	}

	return v, nil
}

// performAsk asks the question off the UI goroutine.
func (v *View) performAsk(question string) tea.Cmd {
	return func() tea.Msg {
		if v.askService == nil {
			return messages.AskCompleted{Err: ErrNoAskService}
		}

		answer, err := v.askService.Ask(v.ctx, question)
		return messages.AskCompleted{Answer: answer, Err: err}
	}
}

// handleAskCompleted processes the answer.
func (v *View) handleAskCompleted(msg messages.AskCompleted) {
	v.waiting = false
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.answer = msg.Answer
	v.scrollOffset = 0
	v.wrapAnswer()
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("Answered")
}

// wrapAnswer wraps the answer text and sources to the view width.
func (v *View) wrapAnswer() {
	v.lines = nil
	if v.answer == nil {
		return
	}

	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	for _, raw := range strings.Split(v.answer.Text, "\n") {
		line := raw
		for len(line) > contentWidth {
			v.lines = append(v.lines, line[:contentWidth])
			line = line[contentWidth:]
		}
		v.lines = append(v.lines, line)
	}

	if len(v.answer.Sources) > 0 {
		v.lines = append(v.lines, "", "Sources:")
		for _, src := range v.answer.Sources {
			v.lines = append(v.lines, fmt.Sprintf("  - %s (%s)", src.Title, src.DateLabel))
			if src.URL != "" {
				v.lines = append(v.lines, "    "+src.URL)
			}
		}
	}
}

// visibleLines returns the number of answer lines that fit on screen.
func (v *View) visibleLines() int {
	// Reserve lines for header, input, status bar, and padding
	available := v.height - 9
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the ask view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("tscribe")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	switch {
	case v.waiting:
		sections = append(sections, v.styles.Muted.Render("Thinking..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case len(v.lines) > 0:
		visible := v.visibleLines()
		var b strings.Builder
		for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visible; i++ {
			b.WriteString(v.styles.Normal.Render(v.lines[i]))
			b.WriteString("\n")
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	default:
		sections = append(sections, v.styles.Muted.Render("Ask a question about the transcripts."))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.wrapAnswer()
}

// Question returns the current question text.
func (v *View) Question() string {
	return v.input.Value()
}

// Answer returns the last answer.
func (v *View) Answer() *domain.Answer {
	return v.answer
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Waiting reports whether a question is in flight.
func (v *View) Waiting() bool {
	return v.waiting
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.answer = nil
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.waiting = false
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}
