package driven

// CaptionNormaliser converts a raw subtitle payload into clean prose.
type CaptionNormaliser interface {
	// Normalise strips cue timings, markup, and repeated caption lines
	// from a raw subtitle document and returns the plain transcript text.
	Normalise(raw string) (string, error)
}
