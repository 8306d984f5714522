// Package main provides the entry point for the CultureMatch MCP server.
//
// This MCP server allows AI agents (Claude Code, Cursor, Cline, Windsurf) to
// interact with CultureMatch programmatically: browse matches, run discovery,
// respond to matches, and maintain the taste profile.
//
// Configuration:
//
//	CULTUREMATCH_API_URL   - Base URL of the API (default: https://api.culturematch.app)
//	CULTUREMATCH_API_TOKEN - Bearer access token for authentication (required)
//
// Usage with Claude Code:
//
//	claude mcp add culturematch --transport stdio \
//	  --env CULTUREMATCH_API_TOKEN=xxx \
//	  -- /path/to/culturematch-mcp
package main

import (
	"log"
	"os"

	"github.com/culturematch/culturematch/cmd/mcp/client"
	"github.com/culturematch/culturematch/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("CULTUREMATCH_API_URL")
	if apiURL == "" {
		apiURL = "https://api.culturematch.app"
	}

	apiToken := os.Getenv("CULTUREMATCH_API_TOKEN")
	if apiToken == "" {
		log.Fatal("CULTUREMATCH_API_TOKEN environment variable is required")
	}

	apiClient := client.NewClient(apiURL, apiToken)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
