// Package vtt cleans WebVTT subtitle files into plain transcript text.
package vtt

import (
	"regexp"
	"strings"

	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.CaptionNormaliser = (*Normaliser)(nil)

var (
	// timestampRe matches cue timing lines, e.g.
	// "00:00:00.000 --> 00:00:05.000 align:start position:0%".
	timestampRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}\s+-->\s+\d{2}:\d{2}:\d{2}\.\d{3}`)

	// sequenceRe matches cue identifier lines that are bare numbers.
	sequenceRe = regexp.MustCompile(`^\d+$`)

	// tagRe matches inline markup like <c>, </c> and <v Name>.
	tagRe = regexp.MustCompile(`<[^>]+>`)

	// spaceRe consolidates runs of whitespace.
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normaliser converts raw WebVTT content to a single line of clean text.
//
// Auto-generated captions repeat each segment across overlapping cues, so
// consecutive duplicate segments are dropped, not just markup.
type Normaliser struct{}

// New creates a new VTT normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise strips VTT headers, cue timings, NOTE comments, STYLE blocks
// and inline tags, de-duplicates consecutive identical segments, and joins
// what remains into one whitespace-normalised string.
func (n *Normaliser) Normalise(raw string) (string, error) {
	var segments []string
	var lastAdded string
	inStyleBlock := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		// Skip known header/metadata/empty lines
		if line == "" || line == "WEBVTT" ||
			strings.HasPrefix(strings.ToLower(line), "kind:") ||
			strings.HasPrefix(strings.ToLower(line), "language:") {
			if inStyleBlock && line == "" {
				inStyleBlock = false
			}
			continue
		}
		if strings.HasPrefix(line, "NOTE") {
			continue
		}
		if strings.HasPrefix(line, "STYLE") {
			inStyleBlock = true
			continue
		}
		if inStyleBlock {
			continue
		}
		if timestampRe.MatchString(line) {
			continue
		}
		if sequenceRe.MatchString(line) {
			continue
		}

		segment := strings.TrimSpace(tagRe.ReplaceAllString(line, ""))
		if segment != "" && segment != lastAdded {
			segments = append(segments, segment)
			lastAdded = segment
		}
	}

	text := strings.Join(segments, " ")
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	return text, nil
}
