package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/culturematch/culturematch/cmd/mcp/client"
)

func (s *Server) handleListMatches(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	status := ""
	if v, ok := args["status"].(string); ok {
		status = v
	}
	page, pageSize := parsePagination(args)

	matches, err := s.client.ListMatches(ctx, status, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list matches: %v", err)), nil
	}

	return formatMatchesResult(matches)
}

func (s *Server) handleGetMatch(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	matchID, ok := args["match_id"].(string)
	if !ok || matchID == "" {
		return mcp.NewToolResultError("match_id is required"), nil
	}

	match, err := s.client.GetMatch(ctx, matchID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get match: %v", err)), nil
	}

	return formatMatchResult(match)
}

func (s *Server) handleDiscoverMatches(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	limit := 0
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = int(l)
	}

	matches, err := s.client.DiscoverMatches(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to discover matches: %v", err)), nil
	}

	if len(matches) == 0 {
		return mcp.NewToolResultText("No new matches found. Log more interactions to improve your taste profile."), nil
	}

	return formatMatchesResult(matches)
}

func (s *Server) handleRespondToMatch(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	matchID, ok := args["match_id"].(string)
	if !ok || matchID == "" {
		return mcp.NewToolResultError("match_id is required"), nil
	}

	accept, ok := args["accept"].(bool)
	if !ok {
		return mcp.NewToolResultError("accept is required (true or false)"), nil
	}

	match, err := s.client.RespondToMatch(ctx, matchID, accept)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to respond to match: %v", err)), nil
	}

	action := "accepted"
	if !accept {
		action = "rejected"
	}
	msg := fmt.Sprintf("Successfully %s match %s (status now '%s')", action, matchID, match.Status)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleLogInteraction(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	params, errResult := parseLogInteractionParams(request.Params.Arguments)
	if errResult != nil {
		return errResult, nil
	}

	interaction, err := s.client.LogInteraction(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to log interaction: %v", err)), nil
	}

	msg := fmt.Sprintf("Successfully logged '%s' as %s (media ID %s)",
		params.Title, params.Kind, interaction.MediaID)
	return mcp.NewToolResultText(msg), nil
}

func parseLogInteractionParams(args map[string]any) (client.LogInteractionParams, *mcp.CallToolResult) {
	var params client.LogInteractionParams

	var ok bool
	if params.ExternalID, ok = args["external_id"].(string); !ok || params.ExternalID == "" {
		return params, mcp.NewToolResultError("external_id is required")
	}
	if params.MediaType, ok = args["media_type"].(string); !ok || params.MediaType == "" {
		return params, mcp.NewToolResultError("media_type is required")
	}
	if params.Title, ok = args["title"].(string); !ok || params.Title == "" {
		return params, mcp.NewToolResultError("title is required")
	}
	if params.Kind, ok = args["interaction_kind"].(string); !ok || params.Kind == "" {
		return params, mcp.NewToolResultError("interaction_kind is required")
	}

	if rating, ok := args["rating"].(float64); ok {
		params.Rating = &rating
	}
	if review, ok := args["review_text"].(string); ok {
		params.ReviewText = review
	}
	if genres, ok := args["genres"].(string); ok && genres != "" {
		params.Genres = splitAndTrim(genres)
	}

	return params, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func (s *Server) handleRemoveInteraction(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	mediaID, ok := args["media_id"].(string)
	if !ok || mediaID == "" {
		return mcp.NewToolResultError("media_id is required"), nil
	}

	kind, ok := args["interaction_kind"].(string)
	if !ok || kind == "" {
		return mcp.NewToolResultError("interaction_kind is required"), nil
	}

	if err := s.client.RemoveInteraction(ctx, mediaID, kind); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove interaction: %v", err)), nil
	}

	msg := fmt.Sprintf("Successfully removed %s interaction for media %s", kind, mediaID)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleSubmitVibeCheck(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	raw, ok := args["answers"].(string)
	if !ok || raw == "" {
		return mcp.NewToolResultError("answers is required"), nil
	}

	var answers map[string]string
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answers must be a JSON object of strings: %v", err)), nil
	}

	if err := s.client.SubmitVibeCheck(ctx, answers); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to submit vibe check: %v", err)), nil
	}

	msg := fmt.Sprintf("Successfully submitted %d vibe check answer(s); taste vector rebuilt", len(answers))
	return mcp.NewToolResultText(msg), nil
}

func parsePagination(args map[string]any) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p, ok := args["page"].(float64); ok && p > 0 {
		page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), 100)
	}
	return page, pageSize
}

func formatMatchesResult(matches []client.Match) (*mcp.CallToolResult, error) {
	if len(matches) == 0 {
		return mcp.NewToolResultText("No matches found."), nil
	}

	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format matches: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d match(es):\n\n%s", len(matches), string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatMatchResult(match *client.Match) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format match: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
