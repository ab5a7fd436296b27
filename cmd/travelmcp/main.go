// Command travelmcp exposes the travel planner's tools as an MCP server
// over stdio, so MCP clients can call the flight, hotel, itinerary, and
// trip-summary tools directly.
//
// Usage:
//
//	go run ./cmd/travelmcp
//
// Configuration for Claude Desktop (claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "voyage-travel-tools": {
//	            "command": "go",
//	            "args": ["run", "./cmd/travelmcp"],
//	            "cwd": "/path/to/voyage"
//	        }
//	    }
//	}
package main

import (
	"log"

	"github.com/voyageui/voyage/mcp"
	"github.com/voyageui/voyage/planner"
)

func main() {
	if err := mcp.ServeStdio(planner.NewToolRegistry(),
		mcp.WithName("voyage-travel-tools"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}
