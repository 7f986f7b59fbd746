// Package transcript provides the transcript viewer component for the TUI.
package transcript

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/tui/styles"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
)

// View is the scrollable transcript text view.
type View struct {
	styles        *styles.Styles
	searchService driving.SearchService

	record       *domain.TranscriptRecord
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool

	// backView is where esc returns to (search results or transcript list).
	backView messages.ViewType
}

// NewView creates a new transcript view.
func NewView(s *styles.Styles, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		searchService: searchService,
		backView:      messages.ViewTranscripts,
	}
}

// SetRecord sets the transcript and loads its full text if needed.
func (v *View) SetRecord(record domain.TranscriptRecord, backView messages.ViewType) tea.Cmd {
	v.record = &record
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.backView = backView

	// Records from a search hit already carry the full text.
	if record.Text != "" {
		v.wrapText(record.Text)
		return nil
	}
	return v.loadText()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// loadText returns a command that loads the transcript text.
func (v *View) loadText() tea.Cmd {
	return func() tea.Msg {
		if v.record == nil || v.searchService == nil {
			return messages.TranscriptLoaded{Err: fmt.Errorf("search service not available")}
		}

		v.loading = true
		record, err := v.searchService.Get(context.Background(), v.record.ID)
		return messages.TranscriptLoaded{
			RecordID: v.record.ID,
			Record:   record,
			Err:      err,
		}
	}
}

// Update handles messages for the transcript view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		if v.record != nil {
			v.wrapText(v.record.Text)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TranscriptLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.record = msg.Record
			v.wrapText(msg.Record.Text)
			v.err = nil
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case "pgdown", "ctrl+d":
		maxOffset := v.maxScrollOffset()
		v.scrollOffset += v.visibleLines()
		if v.scrollOffset > maxOffset {
			v.scrollOffset = maxOffset
		}
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	case "esc":
		back := v.backView
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
		}
	}

	return v, nil
}

// wrapText wraps the transcript text to fit the view width.
func (v *View) wrapText(text string) {
	if text == "" {
		v.lines = nil
		return
	}

	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	rawLines := strings.Split(text, "\n")
	v.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		if len(line) <= contentWidth {
			v.lines = append(v.lines, line)
			continue
		}
		for len(line) > contentWidth {
			v.lines = append(v.lines, line[:contentWidth])
			line = line[contentWidth:]
		}
		if line != "" {
			v.lines = append(v.lines, line)
		}
	}
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 6
	available := v.height - reserved
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

// View renders the transcript view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	title := "Transcript"
	if v.record != nil {
		title = fmt.Sprintf("%s (%s)", v.record.Title, v.record.DateLabel())
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	// Separator
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading transcript..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("(No text)"))
		b.WriteString("\n\n")
	default:
		visibleLines := v.visibleLines()
		for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visibleLines; i++ {
			b.WriteString(v.styles.Normal.Render(v.lines[i]))
			b.WriteString("\n")
		}

		// Scroll position indicator
		if len(v.lines) > visibleLines {
			b.WriteString("\n")
			percentage := 0
			if v.maxScrollOffset() > 0 {
				percentage = v.scrollOffset * 100 / v.maxScrollOffset()
			}
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
				percentage,
				v.scrollOffset+1,
				minInt(v.scrollOffset+visibleLines, len(v.lines)),
				len(v.lines))))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	if v.record != nil {
		v.wrapText(v.record.Text)
	}
}

// Record returns the current transcript record.
func (v *View) Record() *domain.TranscriptRecord {
	return v.record
}

// Lines returns the wrapped text lines.
func (v *View) Lines() []string {
	return v.lines
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
