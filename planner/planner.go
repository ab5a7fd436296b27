package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/session"
	"github.com/voyageui/voyage/store"
	"github.com/voyageui/voyage/tool"
	"github.com/voyageui/voyage/trigger"
)

// SystemPrompt is the planner's standing instruction set. It names the
// custom components so the model prefers them over free-form markup.
const SystemPrompt = `You are Travel Planner Pro, an expert itinerary assistant.

When useful, call tools to gather flights, hotels, and itinerary options.
Always return concise but structured plans with:
- Flight recommendation
- Hotel recommendation
- Day-by-day itinerary
- Estimated budget summary

If user constraints are missing, ask one short clarification question.

When presenting travel recommendations, prefer these custom components when data is available:
- FlightList for multiple flight options.
- HotelCardGrid for multiple hotel options.
- ItineraryTimeline for day-by-day plans.
- BudgetBreakdown for cost summaries.

Use exact property names defined by each component schema and avoid adding unknown fields.`

// ChatMessage is the prompt shape the chat frontend sends.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	ID      string `json:"id,omitempty"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Prompt     ChatMessage `json:"prompt"`
	ThreadID   string      `json:"threadId"`
	ResponseID string      `json:"responseId,omitempty"`
}

const defaultMaxSteps = 8

// Planner runs tool-calling conversations against a chat provider, one
// history per thread.
type Planner struct {
	provider voyage.ChatProvider
	registry *tool.Registry
	logger   *slog.Logger
	maxSteps int
	adapter  store.Adapter
	sessions *session.Manager

	mu        sync.Mutex
	histories map[string]*store.MessageStore
}

// Option configures a Planner.
type Option func(*Planner)

// WithRegistry replaces the default travel tool registry.
func WithRegistry(registry *tool.Registry) Option {
	return func(p *Planner) {
		p.registry = registry
	}
}

// WithLogger sets the planner's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithMaxSteps bounds the number of model round-trips per user turn.
func WithMaxSteps(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.maxSteps = n
		}
	}
}

// WithAdapter sets the persistence backend for thread histories.
func WithAdapter(adapter store.Adapter) Option {
	return func(p *Planner) {
		p.adapter = adapter
	}
}

// New creates a Planner backed by the given chat provider.
func New(provider voyage.ChatProvider, opts ...Option) *Planner {
	p := &Planner{
		provider:  provider,
		registry:  NewToolRegistry(),
		logger:    slog.Default(),
		maxSteps:  defaultMaxSteps,
		adapter:   store.NewMemoryAdapter(),
		sessions:  session.NewManager(),
		histories: make(map[string]*store.MessageStore),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the planner's tool registry.
func (p *Planner) Registry() *tool.Registry {
	return p.registry
}

// Sessions returns the per-thread selection sessions.
func (p *Planner) Sessions() *session.Manager {
	return p.sessions
}

// history returns the message store for a thread, creating it on first use.
func (p *Planner) history(threadID string) *store.MessageStore {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.histories[threadID]
	if !ok {
		h = store.NewMessageStore(p.adapter)
		p.histories[threadID] = h
	}
	return h
}

// Threads returns the number of threads with history.
func (p *Planner) Threads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.histories)
}

// ProcessMessage runs the agent loop for one user turn. Text chunks are
// passed to emit as the model produces them; the call returns once the turn
// completes or fails. Tool calls are executed between model rounds until the
// model answers without requesting tools.
func (p *Planner) ProcessMessage(ctx context.Context, threadID, userMessage string, emit func(chunk string) error) error {
	if parsed, err := trigger.Parse(userMessage); err == nil {
		p.logger.Info("component trigger received",
			"thread", threadID, "action", string(parsed.Action))
		p.recordSelection(threadID, parsed)
	}

	hist := p.history(threadID)
	hist.Append(voyage.Message{
		ID:      voyage.GenerateMessageID(),
		Role:    voyage.RoleUser,
		Content: userMessage,
	})

	for step := 1; step <= p.maxSteps; step++ {
		messages := append(
			[]voyage.Message{{Role: voyage.RoleSystem, Content: SystemPrompt}},
			hist.Messages()...,
		)

		events, err := p.provider.ChatStream(ctx, messages, voyage.WithTools(p.registry.Tools()...))
		if err != nil {
			return err
		}

		var final *voyage.Response
		for ev := range events {
			if ev.Err != nil {
				return ev.Err
			}
			if ev.Delta != "" {
				if err := emit(ev.Delta); err != nil {
					return err
				}
			}
			if ev.Done {
				final = ev.Response
			}
		}
		if final == nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.New("planner: stream ended without a final response")
		}

		if len(final.ToolCalls) == 0 {
			hist.Append(voyage.Message{
				ID:      voyage.GenerateMessageID(),
				Role:    voyage.RoleAssistant,
				Content: final.Content,
			})
			p.sync(ctx, threadID, hist)
			return nil
		}

		hist.Append(voyage.Message{
			Role:      voyage.RoleAssistant,
			Content:   final.Content,
			ToolCalls: final.ToolCalls,
		})

		results := make([]voyage.ToolResult, 0, len(final.ToolCalls))
		for _, call := range final.ToolCalls {
			result, err := p.registry.Execute(ctx, call)
			if err != nil {
				p.logger.Error("tool execution failed",
					"thread", threadID, "tool", call.Name, "error", err)
				result = voyage.ToolResult{
					ToolCallID: call.ID,
					Content:    err.Error(),
					IsError:    true,
				}
			}
			results = append(results, result)
		}
		hist.Append(voyage.NewToolResultMessage(results...))
	}

	return fmt.Errorf("planner: turn did not complete within %d steps", p.maxSteps)
}

// recordSelection mirrors select triggers into the thread's session so the
// backend can gate on the same picks the widgets show.
func (p *Planner) recordSelection(threadID string, parsed *trigger.Parsed) {
	var pick struct {
		FlightID string `json:"flight_id"`
		HotelID  string `json:"hotel_id"`
	}
	if err := json.Unmarshal(parsed.Payload, &pick); err != nil {
		return
	}

	sess := p.sessions.Session(threadID)
	switch parsed.Action {
	case trigger.ActionSelectFlight:
		if pick.FlightID != "" {
			sess.Set(session.SlotFlight, pick.FlightID)
		}
	case trigger.ActionSelectHotel:
		if pick.HotelID != "" {
			sess.Set(session.SlotHotel, pick.HotelID)
		}
	}
}

func (p *Planner) sync(ctx context.Context, threadID string, hist *store.MessageStore) {
	if err := hist.Sync(ctx, threadID); err != nil {
		p.logger.Warn("persisting thread history failed", "thread", threadID, "error", err)
	}
}
