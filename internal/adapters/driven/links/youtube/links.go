// Package youtube builds lookup URLs for cited transcripts.
package youtube

import (
	"net/url"

	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// Ensure LinkBuilder implements the interface.
var _ driven.LinkBuilder = (*LinkBuilder)(nil)

// searchURL is the YouTube search endpoint.
const searchURL = "https://www.youtube.com/results?search_query="

// LinkBuilder turns transcript titles into YouTube search URLs. Video IDs
// are not preserved through the index, so a search link is the honest
// pointer back to the source.
type LinkBuilder struct{}

// New creates a new YouTube link builder.
func New() *LinkBuilder {
	return &LinkBuilder{}
}

// LookupURL returns a YouTube search URL for the title. Empty titles
// produce an empty URL so callers can omit the field.
func (b *LinkBuilder) LookupURL(title string) string {
	if title == "" {
		return ""
	}
	return searchURL + url.QueryEscape(title)
}
