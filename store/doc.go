// Package store persists conversation history for the planner.
//
// Each chat thread keeps its own [MessageStore]; the planner replays the
// stored messages on every turn so tool calls and component payloads stay in
// context. Persistence is pluggable through the [Adapter] interface, with an
// in-memory implementation provided via [MemoryAdapter]:
//
//	history := store.NewMessageStore(nil)
//	history.Append(voyage.Message{Role: voyage.RoleUser, Content: "Plan a trip to Tokyo"})
//
//	// Persist under the thread id, reload on the next request.
//	if err := history.Sync(ctx, threadID); err != nil { ... }
package store
