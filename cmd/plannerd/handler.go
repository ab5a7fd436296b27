package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/voyageui/voyage/planner"
)

// ChatHandler streams planner turns to the C1Chat frontend over SSE.
type ChatHandler struct {
	planner *planner.Planner
	config  *Config
}

// NewChatHandler creates a handler for the given planner.
func NewChatHandler(p *planner.Planner, cfg *Config) *ChatHandler {
	return &ChatHandler{planner: p, config: cfg}
}

// ServeHTTP handles POST requests to run a planner turn and stream the model
// output as it is produced.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		slog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req planner.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ThreadID == "" {
		http.Error(w, "threadId is required", http.StatusBadRequest)
		return
	}

	log := slog.With("thread_id", req.ThreadID, "response_id", req.ResponseID)
	log.Info("request started")

	// SSE headers. no-transform keeps proxies from buffering the stream.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("streaming not supported")
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Timeout)
	defer cancel()

	var bytesSent int
	err := h.planner.ProcessMessage(ctx, req.ThreadID, req.Prompt.Content,
		func(chunk string) error {
			n, err := w.Write([]byte(chunk))
			bytesSent += n
			if err != nil {
				return err
			}
			flusher.Flush()
			return nil
		})

	duration := time.Since(start)
	if err != nil {
		log.Error("request failed",
			"duration_ms", duration.Milliseconds(),
			"bytes_sent", bytesSent,
			"error", err,
		)
		return
	}
	log.Info("request completed",
		"duration_ms", duration.Milliseconds(),
		"bytes_sent", bytesSent,
	)
}

// corsMiddleware adds CORS headers for the chat frontend origins.
func corsMiddleware(frontendURL string, next http.Handler) http.Handler {
	allowed := map[string]bool{
		frontendURL:             true,
		"http://localhost:3000": true,
		"http://localhost:5173": true,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rootHandler reports service status.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","message":"Travel Planner API is running","version":"1.0.0"}`))
}

// healthHandler returns a simple health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy"}`))
}
