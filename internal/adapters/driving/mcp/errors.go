// Package mcp provides an MCP (Model Context Protocol) server adapter for
// tscribe. It lets AI assistants search the transcript corpus and ask
// questions against it.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
