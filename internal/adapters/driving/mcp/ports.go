package mcp

import (
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides direct transcript search.
	Search driving.SearchService

	// Ask answers questions with retrieved transcript context.
	Ask driving.AskService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Ask is optional: without a configured provider the server still
	// exposes search and the transcript resources.
	return nil
}
