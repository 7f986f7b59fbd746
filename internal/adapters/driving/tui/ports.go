// Package tui provides an interactive terminal user interface for tscribe.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides direct transcript search.
	Search driving.SearchService

	// Ask answers questions with retrieved transcript context.
	// Optional: without it the Ask view reports that no provider is
	// configured.
	Ask driving.AskService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchService, ask driving.AskService) *Ports {
	return &Ports{
		Search: search,
		Ask:    ask,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
