package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for tscribe resources.
	uriScheme = "tscribe://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing the corpus.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "transcripts",
		Name:        "transcripts",
		Description: "List of all indexed transcripts",
		MIMEType:    "application/json",
	}, s.handleTranscriptsResource)

	// Template for transcript text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "transcripts/{transcriptId}",
		Name:        "transcript-text",
		Description: "Full cleaned text of a specific transcript",
		MIMEType:    "text/plain",
	}, s.handleTranscriptTextResource)
}

// handleTranscriptsResource returns a list of all indexed transcripts.
func (s *Server) handleTranscriptsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Search.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			records = nil
		} else {
			return nil, fmt.Errorf("listing transcripts: %w", err)
		}
	}

	// Build simplified transcript list.
	type transcriptInfo struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Date  string `json:"date"`
	}

	infos := make([]transcriptInfo, len(records))
	for i := range records {
		infos[i] = transcriptInfo{
			ID:    records[i].ID,
			Title: records[i].Title,
			Date:  records[i].DateLabel(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling transcripts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTranscriptTextResource returns the text of a specific transcript.
func (s *Server) handleTranscriptTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract transcriptId from URI: tscribe://transcripts/{transcriptId}
	id := extractTranscriptID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Search.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting transcript: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     record.Text,
		}},
	}, nil
}

// extractTranscriptID extracts the ID from a URI like tscribe://transcripts/{transcriptId}.
func extractTranscriptID(uri string) string {
	const prefix = uriScheme + "transcripts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
