package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/tool"
)

// RemoteRegistry provides access to tools hosted by an MCP server. It mirrors
// the read side of [tool.Registry] but proxies execution to the remote server.
//
// RemoteRegistry is safe for concurrent use. The tool list is cached locally
// and can be refreshed with [RemoteRegistry.Refresh].
type RemoteRegistry struct {
	client *client.Client
	mu     sync.RWMutex
	tools  map[string]voyage.Tool
}

// NewRemoteRegistry creates a RemoteRegistry connected to an MCP server via
// stdio. The command is the path to the MCP server executable, and args are
// passed to it.
//
// Example:
//
//	remote, err := mcp.NewRemoteRegistry(ctx, "./travelmcp", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer remote.Close()
func NewRemoteRegistry(ctx context.Context, command string, env []string, args ...string) (*RemoteRegistry, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}

	return newRemoteRegistryFromClient(ctx, c)
}

// NewRemoteRegistrySSE creates a RemoteRegistry connected to an MCP server
// via SSE.
func NewRemoteRegistrySSE(ctx context.Context, baseURL string) (*RemoteRegistry, error) {
	c, err := client.NewSSEMCPClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSE MCP client: %w", err)
	}

	return newRemoteRegistryFromClient(ctx, c)
}

// NewRemoteRegistryFromClient creates a RemoteRegistry from an existing MCP
// client. The session is initialized and the tool list fetched before return.
func NewRemoteRegistryFromClient(ctx context.Context, c *client.Client) (*RemoteRegistry, error) {
	return newRemoteRegistryFromClient(ctx, c)
}

func newRemoteRegistryFromClient(ctx context.Context, c *client.Client) (*RemoteRegistry, error) {
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start MCP client: %w", err)
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "voyage-mcp-client",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	r := &RemoteRegistry{
		client: c,
		tools:  make(map[string]voyage.Tool),
	}

	if err := r.Refresh(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	return r, nil
}

// Close closes the connection to the MCP server.
func (r *RemoteRegistry) Close() error {
	return r.client.Close()
}

// Refresh fetches the current list of tools from the MCP server. Call it
// again if the server's tool set changes.
func (r *RemoteRegistry) Refresh(ctx context.Context) error {
	result, err := r.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools = make(map[string]voyage.Tool, len(result.Tools))
	for _, t := range result.Tools {
		r.tools[t.Name] = FromMCPTool(t)
	}

	return nil
}

// Tools returns all tools available from the MCP server.
func (r *RemoteRegistry) Tools() []voyage.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]voyage.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	return tools
}

// GetTool retrieves a tool definition by name.
func (r *RemoteRegistry) GetTool(name string) (voyage.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

// Names returns the names of all available tools.
func (r *RemoteRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Len returns the number of available tools.
func (r *RemoteRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Has returns true if the remote server offers a tool with the given name.
func (r *RemoteRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Execute calls a tool on the remote MCP server. Transport failures are
// reported as error results so a model-driven loop can recover.
func (r *RemoteRegistry) Execute(ctx context.Context, call voyage.ToolCall) (voyage.ToolResult, error) {
	req := ToMCPCallToolRequest(call)

	result, err := r.client.CallTool(ctx, req)
	if err != nil {
		return voyage.ToolResult{
			ToolCallID: call.ID,
			Content:    err.Error(),
			IsError:    true,
		}, nil
	}

	return FromMCPCallToolResult(call.ID, result), nil
}

// Handler adapts a remote tool into a tool.Handler so it can be registered
// alongside local tools in a tool.Registry.
func (r *RemoteRegistry) Handler(name string) tool.Handler {
	return func(ctx context.Context, call voyage.ToolCall) (string, error) {
		call.Name = name
		result, err := r.Execute(ctx, call)
		if err != nil {
			return "", err
		}
		if result.IsError {
			return "", errors.New(result.Content)
		}
		return result.Content, nil
	}
}
