// Package voyage provides the shared value types for a conversational travel
// planner with generative UI: rich widgets (flight lists, hotel grids,
// itinerary timelines, budget breakdowns) rendered inside a chat transcript,
// with user interaction flowing back to the planning agent as structured
// chat turns.
//
// The root package holds the currency the subpackages trade in:
//
//   - Domain records ([Flight], [Hotel], [ItineraryDay], [CostBreakdown]):
//     immutable value objects passed into widgets as props.
//   - Chat types ([Message], [Response], [StreamEvent]) used by the planner's
//     conversation loop.
//   - Tool types ([Tool], [ToolCall], [ToolResult]) for model tool calling.
//   - [SchemaBuilder] / [SchemaFor]: reflection-based JSON Schema generation
//     driven by struct tags, used for both tool parameters and the custom
//     component schemas advertised to the model.
//
// # Subpackages
//
//   - session: per-conversation selection slots and the gate condition that
//     unlocks dependent widgets.
//   - trigger: serializes widget actions into the text channel the backend
//     agent consumes, and dispatches them fire-and-forget.
//   - widget: the widget set, pure render functions plus gated interaction
//     handlers.
//   - relay: the streaming proxy between the browser and the backend agent.
//   - planner: the backend travel agent (tool loop, per-thread history).
//   - provider/c1: OpenAI-compatible client for the C1 generative-UI endpoint.
//   - tool: typed tool registry with reflected schemas.
//   - mcp: exposes the travel tools to MCP clients.
package voyage
