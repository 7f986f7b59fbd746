// Package transcripts provides the transcript list view component for the TUI.
package transcripts

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

// View is the transcript list view.
type View struct {
	styles        *styles.Styles
	searchService driving.SearchService

	records      []domain.TranscriptRecord
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new transcripts view.
func NewView(s *styles.Styles, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		searchService: searchService,
		records:       []domain.TranscriptRecord{},
	}
}

// Init initialises the view and loads the transcript list.
func (v *View) Init() tea.Cmd {
	v.selected = 0
	v.scrollOffset = 0
	v.err = nil
	return v.loadTranscripts()
}

// loadTranscripts returns a command that loads all transcripts.
func (v *View) loadTranscripts() tea.Cmd {
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.TranscriptsLoaded{Err: fmt.Errorf("search service not available")}
		}

		v.loading = true
		records, err := v.searchService.List(context.Background())
		return messages.TranscriptsLoaded{Records: records, Err: err}
	}
}

// Update handles messages for the transcripts view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TranscriptsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.records = msg.Records
			v.err = nil
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			if v.selected < v.scrollOffset {
				v.scrollOffset = v.selected
			}
		}
	case "down", "j":
		if v.selected < len(v.records)-1 {
			v.selected++
			if v.selected >= v.scrollOffset+v.visibleLines() {
				v.scrollOffset = v.selected - v.visibleLines() + 1
			}
		}
	case "enter":
		if v.selected >= 0 && v.selected < len(v.records) {
			record := v.records[v.selected]
			return v, func() tea.Msg {
				return messages.TranscriptSelected{Record: record}
			}
		}
	case "r":
		return v, v.loadTranscripts()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// visibleLines returns the number of rows that can be displayed.
func (v *View) visibleLines() int {
	available := v.height - 7
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the transcripts view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Transcripts"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading transcripts..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render("No transcripts indexed. Run 'tscribe index build' first."))
	default:
		visible := v.visibleLines()
		end := v.scrollOffset + visible
		if end > len(v.records) {
			end = len(v.records)
		}
		for i := v.scrollOffset; i < end; i++ {
			rec := v.records[i]
			line := fmt.Sprintf("%s (%s)", rec.Title, rec.DateLabel())
			if i == v.selected {
				b.WriteString(v.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(v.styles.Normal.Render("  " + line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d of %d", v.selected+1, len(v.records))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] open  [r] reload  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Records returns the loaded transcript records.
func (v *View) Records() []domain.TranscriptRecord {
	return v.records
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedRecord returns the currently selected record, or nil if none.
func (v *View) SelectedRecord() *domain.TranscriptRecord {
	if len(v.records) == 0 || v.selected < 0 || v.selected >= len(v.records) {
		return nil
	}
	return &v.records[v.selected]
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
