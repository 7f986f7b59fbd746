// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SearchRequested is a command to perform a search.
type SearchRequested struct {
	Query   string
	Options domain.SearchOptions
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Results []domain.SearchResult
	Err     error
}

// AskCompleted carries an answer back to the model.
type AskCompleted struct {
	Answer *domain.Answer
	Err    error
}

// ResultSelected is sent when a search result is selected.
type ResultSelected struct {
	Index int
}

// TranscriptsLoaded carries the full transcript list from the service.
type TranscriptsLoaded struct {
	Records []domain.TranscriptRecord
	Err     error
}

// TranscriptSelected signals a transcript was chosen for viewing.
type TranscriptSelected struct {
	Record domain.TranscriptRecord
}

// TranscriptLoaded carries the full text of a transcript.
type TranscriptLoaded struct {
	RecordID string
	Record   *domain.TranscriptRecord
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewAsk is the question-and-answer view.
	ViewAsk
	// ViewTranscripts lists all indexed transcripts.
	ViewTranscripts
	// ViewTranscript shows the full text of one transcript.
	ViewTranscript
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewAsk:
		return "ask"
	case ViewTranscripts:
		return "transcripts"
	case ViewTranscript:
		return "transcript"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
