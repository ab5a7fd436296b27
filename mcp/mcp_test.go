package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/planner"
	"github.com/voyageui/voyage/tool"
)

func TestToMCPTool(t *testing.T) {
	t.Run("converts voyage tool to MCP tool", func(t *testing.T) {
		schema := json.RawMessage(`{"type":"object","properties":{"city":{"type":"string"}}}`)
		src := voyage.Tool{
			Name:        "search_hotels",
			Description: "Return hotel options",
			Parameters:  schema,
		}

		mcpTool := ToMCPTool(src)

		assert.Equal(t, "search_hotels", mcpTool.Name)
		assert.Equal(t, "Return hotel options", mcpTool.Description)
		assert.Equal(t, schema, mcpTool.RawInputSchema)
	})

	t.Run("handles nil parameters", func(t *testing.T) {
		src := voyage.Tool{Name: "simple", Description: "Simple tool"}

		mcpTool := ToMCPTool(src)

		assert.Equal(t, "simple", mcpTool.Name)
		assert.Equal(t, "Simple tool", mcpTool.Description)
	})
}

func TestToMCPTools(t *testing.T) {
	tools := planner.NewToolRegistry().Tools()

	mcpTools := ToMCPTools(tools)

	require.Len(t, mcpTools, len(tools))
	names := make([]string, len(mcpTools))
	for i, mt := range mcpTools {
		names[i] = mt.Name
	}
	assert.Contains(t, names, "search_flights")
	assert.Contains(t, names, "summarize_trip_plan")
}

func TestFromMCPTool(t *testing.T) {
	t.Run("converts MCP tool with raw schema", func(t *testing.T) {
		schema := json.RawMessage(`{"type":"object"}`)
		mcpTool := mcp.NewToolWithRawSchema("search_flights", "Return flight options", schema)

		got := FromMCPTool(mcpTool)

		assert.Equal(t, "search_flights", got.Name)
		assert.Equal(t, "Return flight options", got.Description)
		assert.JSONEq(t, `{"type":"object"}`, string(got.Parameters))
	})

	t.Run("converts MCP tool with structured schema", func(t *testing.T) {
		mcpTool := mcp.NewTool("search_hotels",
			mcp.WithDescription("Return hotel options"),
			mcp.WithString("city", mcp.Required(), mcp.Description("City to stay in")),
		)

		got := FromMCPTool(mcpTool)

		assert.Equal(t, "search_hotels", got.Name)
		assert.Equal(t, "Return hotel options", got.Description)
		assert.NotNil(t, got.Parameters)
	})
}

func TestToMCPCallToolRequest(t *testing.T) {
	t.Run("parses JSON arguments", func(t *testing.T) {
		call := voyage.ToolCall{
			ID:        "call_123",
			Name:      "search_flights",
			Arguments: `{"origin": "SEA", "travelers": 2}`,
		}

		req := ToMCPCallToolRequest(call)

		assert.Equal(t, "search_flights", req.Params.Name)
		args, ok := req.Params.Arguments.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "SEA", args["origin"])
		assert.Equal(t, float64(2), args["travelers"])
	})

	t.Run("handles empty arguments", func(t *testing.T) {
		call := voyage.ToolCall{ID: "call_456", Name: "noargs"}

		req := ToMCPCallToolRequest(call)

		assert.Equal(t, "noargs", req.Params.Name)
		assert.Nil(t, req.Params.Arguments)
	})
}

func TestFromMCPCallToolResult(t *testing.T) {
	t.Run("converts text result", func(t *testing.T) {
		mcpResult := mcp.NewToolResultText(`[{"flight_id":"FL-001"}]`)

		result := FromMCPCallToolResult("call_123", mcpResult)

		assert.Equal(t, "call_123", result.ToolCallID)
		assert.Equal(t, `[{"flight_id":"FL-001"}]`, result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("converts error result", func(t *testing.T) {
		mcpResult := mcp.NewToolResultError("end_date must be on or after start_date")

		result := FromMCPCallToolResult("call_456", mcpResult)

		assert.Equal(t, "call_456", result.ToolCallID)
		assert.Equal(t, "end_date must be on or after start_date", result.Content)
		assert.True(t, result.IsError)
	})

	t.Run("handles nil result", func(t *testing.T) {
		result := FromMCPCallToolResult("call_789", nil)

		assert.Equal(t, "call_789", result.ToolCallID)
		assert.Equal(t, "", result.Content)
		assert.True(t, result.IsError)
	})
}

func TestToMCPCallToolResult(t *testing.T) {
	t.Run("converts success result", func(t *testing.T) {
		mcpResult := ToMCPCallToolResult(voyage.ToolResult{
			ToolCallID: "call_123",
			Content:    "done",
		})

		assert.False(t, mcpResult.IsError)
		require.Len(t, mcpResult.Content, 1)
	})

	t.Run("converts error result", func(t *testing.T) {
		mcpResult := ToMCPCallToolResult(voyage.ToolResult{
			ToolCallID: "call_456",
			Content:    "boom",
			IsError:    true,
		})

		assert.True(t, mcpResult.IsError)
	})
}

func startInProcessClient(t *testing.T, registry *tool.Registry, opts ...ServerOption) *client.Client {
	t.Helper()

	srv := NewServer(registry, opts...)
	c, err := client.NewInProcessClient(srv)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))
	t.Cleanup(func() { c.Close() })

	_, err = c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "test-client",
				Version: "1.0.0",
			},
		},
	})
	require.NoError(t, err)

	return c
}

// TestServerIntegration drives the server through an in-process MCP client.
func TestServerIntegration(t *testing.T) {
	t.Run("exposes travel tools", func(t *testing.T) {
		c := startInProcessClient(t, planner.NewToolRegistry(),
			WithName("travel-tools-test"),
			WithVersion("1.0.0"),
		)

		result, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
		require.NoError(t, err)

		names := make([]string, len(result.Tools))
		for i, tl := range result.Tools {
			names[i] = tl.Name
		}
		assert.Len(t, names, 4)
		assert.Contains(t, names, "search_flights")
		assert.Contains(t, names, "search_hotels")
		assert.Contains(t, names, "build_daily_itinerary")
		assert.Contains(t, names, "summarize_trip_plan")
	})

	t.Run("calls tools and returns results", func(t *testing.T) {
		c := startInProcessClient(t, planner.NewToolRegistry())

		result, err := c.CallTool(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "search_flights",
				Arguments: map[string]any{
					"origin":         "SEA",
					"destination":    "Tokyo",
					"departure_date": "2026-03-01",
					"travelers":      2,
				},
			},
		})
		require.NoError(t, err)

		assert.False(t, result.IsError)
		require.Len(t, result.Content, 1)
		textContent, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)

		var flights []voyage.Flight
		require.NoError(t, json.Unmarshal([]byte(textContent.Text), &flights))
		assert.Equal(t, planner.SearchFlights(planner.SearchFlightsArgs{
			Origin: "SEA", Destination: "Tokyo", DepartureDate: "2026-03-01", Travelers: 2,
		}), flights)
	})

	t.Run("handles tool errors gracefully", func(t *testing.T) {
		c := startInProcessClient(t, planner.NewToolRegistry())

		result, err := c.CallTool(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "build_daily_itinerary",
				Arguments: map[string]any{
					"destination": "Tokyo",
					"start_date":  "2026-03-05",
					"end_date":    "2026-03-01",
				},
			},
		})
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})
}

// TestRemoteRegistryIntegration tests RemoteRegistry against an in-process server.
func TestRemoteRegistryIntegration(t *testing.T) {
	newRemote := func(t *testing.T, registry *tool.Registry) *RemoteRegistry {
		t.Helper()

		srv := NewServer(registry)
		c, err := client.NewInProcessClient(srv)
		require.NoError(t, err)

		remote, err := NewRemoteRegistryFromClient(context.Background(), c)
		require.NoError(t, err)
		t.Cleanup(func() { remote.Close() })
		return remote
	}

	t.Run("discovers remote tools", func(t *testing.T) {
		remote := newRemote(t, planner.NewToolRegistry())

		assert.Equal(t, 4, remote.Len())
		assert.True(t, remote.Has("search_hotels"))

		hotelTool, ok := remote.GetTool("search_hotels")
		require.True(t, ok)
		assert.Equal(t, "search_hotels", hotelTool.Name)
		assert.NotEmpty(t, hotelTool.Description)
	})

	t.Run("executes remote tools", func(t *testing.T) {
		remote := newRemote(t, planner.NewToolRegistry())

		result, err := remote.Execute(context.Background(), voyage.ToolCall{
			ID:        "call_123",
			Name:      "search_hotels",
			Arguments: `{"city":"Tokyo","check_in_date":"2026-03-01","check_out_date":"2026-03-05"}`,
		})
		require.NoError(t, err)

		assert.Equal(t, "call_123", result.ToolCallID)
		assert.False(t, result.IsError)

		var hotels []voyage.Hotel
		require.NoError(t, json.Unmarshal([]byte(result.Content), &hotels))
		assert.Len(t, hotels, 4)
	})

	t.Run("handler bridges into a local registry", func(t *testing.T) {
		remote := newRemote(t, planner.NewToolRegistry())

		local := tool.NewRegistry()
		for _, rt := range remote.Tools() {
			require.NoError(t, local.Register(rt, remote.Handler(rt.Name)))
		}

		result, err := local.Execute(context.Background(), voyage.ToolCall{
			ID:        "call_456",
			Name:      "summarize_trip_plan",
			Arguments: `{"flights":[],"hotels":[],"itinerary":[]}`,
		})
		require.NoError(t, err)
		assert.False(t, result.IsError)

		var summary planner.TripSummary
		require.NoError(t, json.Unmarshal([]byte(result.Content), &summary))
		assert.Equal(t, 65.0, summary.EstimatedCostBreakdownUSD.TotalEstimate)
	})

	t.Run("refreshes tool list", func(t *testing.T) {
		remote := newRemote(t, planner.NewToolRegistry())

		require.NoError(t, remote.Refresh(context.Background()))
		assert.Equal(t, 4, remote.Len())
	})
}
