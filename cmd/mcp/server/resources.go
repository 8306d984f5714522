package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// Register the match resource template
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"match://{match_id}",
			"Individual CultureMatch match",
			mcp.WithTemplateDescription(
				"Fetch a specific match by its ID. Use this to get full match "+
					"details including the compatibility score, shared media "+
					"items with both users' ratings, the generated icebreaker, "+
					"and the consent status."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleMatchResource,
	)
}

func (s *Server) handleMatchResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	// Extract match_id from the URI (format: match://{match_id})
	uri := request.Params.URI
	if !strings.HasPrefix(uri, "match://") {
		return nil, fmt.Errorf("invalid match URI format: %s", uri)
	}

	matchID := strings.TrimPrefix(uri, "match://")
	if matchID == "" {
		return nil, fmt.Errorf("missing match_id in URI: %s", uri)
	}

	match, err := s.client.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}

	data, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
