// Package mcp exposes voyage tools over the Model Context Protocol.
//
// The integration runs in both directions:
//
//   - Server: publish a [tool.Registry] as an MCP server so MCP clients can
//     discover and call the travel tools.
//   - Client: connect to an MCP server and consume its tools through
//     [RemoteRegistry].
//
// # Serving the travel tools
//
//	registry := planner.NewToolRegistry()
//
//	// Serve over stdio (for subprocess-based MCP clients).
//	if err := mcp.ServeStdio(registry); err != nil {
//	    log.Fatal(err)
//	}
//
// # Consuming an MCP server
//
//	remote, err := mcp.NewRemoteRegistry(ctx, "./travelmcp", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer remote.Close()
//
//	for _, t := range remote.Tools() {
//	    registry.MustRegister(t, remote.Handler(t.Name))
//	}
package mcp

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/voyageui/voyage"
)

// ToMCPTool converts a voyage Tool to an MCP Tool. The Tool.Parameters JSON
// schema becomes the MCP tool's RawInputSchema.
func ToMCPTool(t voyage.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.Parameters)
}

// ToMCPTools converts a slice of voyage Tools to MCP Tools.
func ToMCPTools(tools []voyage.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = ToMCPTool(t)
	}
	return result
}

// FromMCPTool converts an MCP Tool to a voyage Tool. The JSON schema is taken
// from RawInputSchema when present, otherwise from the structured InputSchema.
func FromMCPTool(t mcp.Tool) voyage.Tool {
	var schema json.RawMessage

	if len(t.RawInputSchema) > 0 {
		schema = t.RawInputSchema
	} else {
		data, err := json.Marshal(t.InputSchema)
		if err == nil {
			schema = data
		}
	}

	return voyage.Tool{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  schema,
	}
}

// FromMCPTools converts a slice of MCP Tools to voyage Tools.
func FromMCPTools(tools []mcp.Tool) []voyage.Tool {
	result := make([]voyage.Tool, len(tools))
	for i, t := range tools {
		result[i] = FromMCPTool(t)
	}
	return result
}

// ToMCPCallToolRequest converts a voyage ToolCall to an MCP CallToolRequest.
func ToMCPCallToolRequest(call voyage.ToolCall) mcp.CallToolRequest {
	var args any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			// Not valid JSON, pass the string through.
			args = call.Arguments
		}
	}

	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      call.Name,
			Arguments: args,
		},
	}
}

// FromMCPCallToolResult converts an MCP CallToolResult to a voyage ToolResult.
// Text content blocks are concatenated; a nil result is treated as an error.
func FromMCPCallToolResult(callID string, result *mcp.CallToolResult) voyage.ToolResult {
	if result == nil {
		return voyage.ToolResult{
			ToolCallID: callID,
			Content:    "",
			IsError:    true,
		}
	}

	var textParts []string
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			textParts = append(textParts, content.Text)
		case *mcp.TextContent:
			textParts = append(textParts, content.Text)
		default:
			if data, err := json.Marshal(content); err == nil {
				textParts = append(textParts, string(data))
			}
		}
	}

	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			textParts = append(textParts, string(data))
		}
	}

	return voyage.ToolResult{
		ToolCallID: callID,
		Content:    strings.Join(textParts, "\n"),
		IsError:    result.IsError,
	}
}

// ToMCPCallToolResult converts a voyage ToolResult to an MCP CallToolResult.
func ToMCPCallToolResult(result voyage.ToolResult) *mcp.CallToolResult {
	if result.IsError {
		return mcp.NewToolResultError(result.Content)
	}
	return mcp.NewToolResultText(result.Content)
}
