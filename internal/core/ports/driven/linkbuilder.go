package driven

// LinkBuilder produces an external lookup URL for a cited transcript.
// Implementations template the title into a search endpoint; no network
// call is involved.
type LinkBuilder interface {
	// LookupURL returns a URL where the source video can be found.
	LookupURL(title string) string
}
