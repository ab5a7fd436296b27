package tool

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/voyageui/voyage"
)

// registeredTool combines a tool definition with its handler.
type registeredTool struct {
	tool    voyage.Tool
	handler Handler
}

// Registry manages registered tools and their handlers.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]registeredTool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]registeredTool),
	}
}

// Register adds a tool with its handler to the registry.
// Returns an error if a tool with the same name is already registered.
func (r *Registry) Register(tool voyage.Tool, handler Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return &ErrToolAlreadyRegistered{Name: tool.Name}
	}

	r.tools[tool.Name] = registeredTool{
		tool:    tool,
		handler: handler,
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(tool voyage.Tool, handler Handler) {
	if err := r.Register(tool, handler); err != nil {
		panic(err)
	}
}

// Get retrieves a handler by tool name.
// Returns the handler and true if found, or nil and false if not found.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return rt.handler, true
}

// GetTool retrieves a tool definition by name.
// Returns the tool and true if found, or empty tool and false if not found.
func (r *Registry) GetTool(name string) (voyage.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.tools[name]
	if !ok {
		return voyage.Tool{}, false
	}
	return rt.tool, true
}

// Tools returns all registered tool definitions.
// This is used to pass the tools to the ChatProvider.
func (r *Registry) Tools() []voyage.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]voyage.Tool, 0, len(r.tools))
	for _, rt := range r.tools {
		tools = append(tools, rt.tool)
	}
	return tools
}

// Names returns the names of all registered tools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Execute runs the handler for a tool call and returns a ToolResult.
// If the tool is not found, returns ErrToolNotFound.
// If the handler returns an error, the error is captured in ToolResult.IsError
// and the error message is returned as the content (allowing the model to recover).
func (r *Registry) Execute(ctx context.Context, call voyage.ToolCall) (voyage.ToolResult, error) {
	r.mu.RLock()
	rt, ok := r.tools[call.Name]
	r.mu.RUnlock()

	if !ok {
		return voyage.ToolResult{}, &ErrToolNotFound{Name: call.Name}
	}

	content, err := rt.handler(ctx, call)
	if err != nil {
		// Return error as tool result so model can potentially recover
		return voyage.ToolResult{
			ToolCallID: call.ID,
			Content:    err.Error(),
			IsError:    true,
		}, nil
	}

	return voyage.ToolResult{
		ToolCallID: call.ID,
		Content:    content,
		IsError:    false,
	}, nil
}

// Registration holds a tool and its handler for fluent registration.
type Registration struct {
	Tool    voyage.Tool
	Handler Handler
}

// Func creates a Registration with automatic schema generation from the typed handler.
// Panics if schema generation fails.
//
// Example:
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("search_flights", "Search flight options", searchHandler),
//	)
func Func[T any](name, description string, fn TypedHandler[T]) Registration {
	schema := voyage.MustSchemaFor[T]()
	handler := func(ctx context.Context, call voyage.ToolCall) (string, error) {
		var args T
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", err
		}
		return fn(ctx, args)
	}
	return Registration{
		Tool: voyage.Tool{
			Name:        name,
			Description: description,
			Parameters:  schema,
		},
		Handler: handler,
	}
}

// WithTool creates a Registration from an existing Tool and Handler.
// Use this when you have pre-built tool definitions.
func WithTool(t voyage.Tool, h Handler) Registration {
	return Registration{
		Tool:    t,
		Handler: h,
	}
}

// Add registers one or more tools to the registry.
// Panics if any tool is already registered.
// Returns the registry for fluent chaining.
func (r *Registry) Add(regs ...Registration) *Registry {
	for _, reg := range regs {
		r.MustRegister(reg.Tool, reg.Handler)
	}
	return r
}
