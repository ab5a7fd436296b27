// Package trigger serializes widget actions into the single text channel the
// backend planning agent consumes, and dispatches them without blocking the
// UI.
//
// A widget interaction becomes one outbound chat turn with two parts: a short
// human-readable summary shown in the transcript, and a machine-readable
// instruction block. The block's first line is
//
//	COMPONENT_TRIGGER {"source":"travel_custom_component","action":"...","payload":{...}}
//
// followed by two fixed instruction lines telling the agent to treat the turn
// as an explicit user action and to respond using the custom components. The
// agent locates the structured action by prefix-stripping the marker line, so
// the prefix and JSON shape are a wire contract shared with the backend:
// changing either silently downgrades every widget action to free-text
// interpretation. [Parse] implements the agent-side half of the contract.
//
// Sends are fire-and-forget: [Dispatcher.Fire] enqueues onto a buffered
// outbound channel drained by a single goroutine, so the UI stays interactive
// while the agent round-trip is in flight. A newly fired trigger never
// cancels an earlier one.
package trigger
