// Command relayd is the frontend-facing relay for the travel planner chat
// API. It forwards POST /api/chat bodies to the backend and streams the SSE
// response back to the caller, translating backend failures into JSON error
// bodies the chat UI can display.
//
// Configuration is via environment variables (a .env file is honored):
//
//	BACKEND_API_URL - Backend chat endpoint (default: http://127.0.0.1:8000/api/chat)
//	RELAY_PORT      - Server port (default: 3001)
//
// Usage:
//
//	go run ./cmd/relayd
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/voyageui/voyage/relay"
)

func main() {
	godotenv.Load() // Load .env file if present

	backendURL := getEnvOrDefault("BACKEND_API_URL", "http://127.0.0.1:8000/api/chat")
	port := getEnvOrDefault("RELAY_PORT", "3001")

	handler := relay.NewHandler(backendURL, relay.WithLogger(slog.Default()))

	mux := http.NewServeMux()
	mux.Handle("/api/chat", handler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // SSE needs no write timeout
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Chat relay starting on :%s", port)
	log.Printf("Backend: %s", backendURL)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
