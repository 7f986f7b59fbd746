package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or empty input, such as a
	// blank query. Rejected before any processing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDataUnavailable indicates the transcript corpus failed to load
	// because the underlying resource is missing or malformed. This is a
	// configuration-level failure: the process must not silently proceed
	// with an empty corpus.
	ErrDataUnavailable = errors.New("transcript data unavailable")

	// ErrLLMUnavailable indicates no generation service is configured.
	// Asking questions is disabled; direct search still works.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrUnsupportedType indicates an unknown provider or store backend.
	ErrUnsupportedType = errors.New("unsupported type")
)
