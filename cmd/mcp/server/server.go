// Package server provides the MCP server implementation.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/culturematch/culturematch/cmd/mcp/client"
)

// Server is the MCP server for CultureMatch.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"culturematch",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// list_matches - List the user's matches
	s.mcpServer.AddTool(mcp.NewTool("list_matches",
		mcp.WithDescription(
			"List your matches, best compatibility first. "+
				"Each match includes the compatibility score, shared media "+
				"items, the icebreaker, and the consent status."),
		mcp.WithString("status",
			mcp.Description("Only include matches with this status: 'pending', 'accepted', 'rejected', or 'matched'"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of matches per page (default: 20, max: 100)"),
		),
	), s.handleListMatches)

	// get_match - Get full match details
	s.mcpServer.AddTool(mcp.NewTool("get_match",
		mcp.WithDescription("Get full details of a specific match by its ID."),
		mcp.WithString("match_id",
			mcp.Required(),
			mcp.Description("The ID of the match to retrieve"),
		),
	), s.handleGetMatch)

	// discover_matches - Run match discovery
	s.mcpServer.AddTool(mcp.NewTool("discover_matches",
		mcp.WithDescription(
			"Run match discovery for your taste profile and return any new "+
				"matches created. Requires a completed vibe check."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of matches to create (default: 10)"),
		),
	), s.handleDiscoverMatches)

	// respond_to_match - Accept or reject a match
	s.mcpServer.AddTool(mcp.NewTool("respond_to_match",
		mcp.WithDescription(
			"Accept or reject a match. A match becomes mutual only once "+
				"both users accept; rejecting is final."),
		mcp.WithString("match_id",
			mcp.Required(),
			mcp.Description("The ID of the match to respond to"),
		),
		mcp.WithBoolean("accept",
			mcp.Required(),
			mcp.Description("Whether to accept (true) or reject (false) the match"),
		),
	), s.handleRespondToMatch)

	// log_interaction - Record a media interaction
	s.mcpServer.AddTool(mcp.NewTool("log_interaction",
		mcp.WithDescription(
			"Log a media interaction (a favorite, a top-4 pick, or a logged "+
				"item with an optional rating). This feeds your taste profile "+
				"and future matches."),
		mcp.WithString("external_id",
			mcp.Required(),
			mcp.Description("External catalogue ID of the media item"),
		),
		mcp.WithString("media_type",
			mcp.Required(),
			mcp.Description("Media type: 'movie', 'artist', 'track', or 'album'"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the media item"),
		),
		mcp.WithString("interaction_kind",
			mcp.Required(),
			mcp.Description("Interaction kind: 'logged', 'top4', 'anthem', or 'favorite'"),
		),
		mcp.WithNumber("rating",
			mcp.Description("Optional rating from 0.5 to 5.0 in half-star steps"),
		),
		mcp.WithString("review_text",
			mcp.Description("Optional short review"),
		),
		mcp.WithString("genres",
			mcp.Description("Comma-separated list of genres (e.g., 'Sci-Fi,Action')"),
		),
	), s.handleLogInteraction)

	// remove_interaction - Delete a media interaction
	s.mcpServer.AddTool(mcp.NewTool("remove_interaction",
		mcp.WithDescription("Remove a previously logged interaction, freeing a top-4 slot if it held one."),
		mcp.WithString("media_id",
			mcp.Required(),
			mcp.Description("The internal media ID of the interaction to remove"),
		),
		mcp.WithString("interaction_kind",
			mcp.Required(),
			mcp.Description("Interaction kind: 'logged', 'top4', 'anthem', or 'favorite'"),
		),
	), s.handleRemoveInteraction)

	// submit_vibe_check - Store vibe check answers
	s.mcpServer.AddTool(mcp.NewTool("submit_vibe_check",
		mcp.WithDescription(
			"Submit vibe check answers. This rebuilds your taste vector and "+
				"is required before match discovery."),
		mcp.WithString("answers",
			mcp.Required(),
			mcp.Description("JSON object mapping question IDs to answers (e.g., '{\"friday_night\": \"at the cinema\"}')"),
		),
	), s.handleSubmitVibeCheck)
}
