// Package relay implements the streaming chat proxy between the browser and
// the planner backend.
//
// The relay accepts POST /api/chat, forwards the request body to the backend
// verbatim, and streams the backend's reply to the client as it arrives.
// Chat bodies grow with conversation length, so the relay never buffers or
// parses them in either direction. Each inbound request maps to exactly one
// upstream call with no retry; every failure is terminal for that
// request/response cycle.
package relay
