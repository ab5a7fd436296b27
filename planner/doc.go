// Package planner implements the travel planning agent behind POST /api/chat.
//
// The planner keeps one conversation history per thread, runs a tool-calling
// loop against a voyage.ChatProvider, and streams the model's text chunks to
// the caller as they arrive. Its tools return deterministic mock travel data:
// every attribute is derived from a seed hash of the inputs, so the same
// search always yields the same flights, hotels and itineraries. That keeps
// demo conversations reproducible and the tools trivially testable.
package planner
