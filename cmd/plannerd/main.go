// Command plannerd serves the travel planner chat API over Server-Sent
// Events (SSE). It runs the tool-calling planner against the Thesys C1
// generative-UI endpoint and streams the response to the C1Chat frontend.
//
// Configuration is via environment variables (a .env file is honored):
//
//	THESYS_API_KEY    - Thesys C1 API key (required)
//	THESYS_BASE_URL   - C1 endpoint override (optional)
//	THESYS_MODEL      - C1 model override (optional)
//	PORT              - Server port (default: 8000)
//	FRONTEND_URL      - Allowed frontend origin (default: http://localhost:3000)
//	PLANNER_MAX_STEPS - Max model round-trips per turn (default: 8)
//	PLANNER_TIMEOUT   - Per-turn timeout (default: 2m)
//
// Usage:
//
//	THESYS_API_KEY=sk-... go run ./cmd/plannerd
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voyageui/voyage/planner"
	"github.com/voyageui/voyage/provider/c1"
	"github.com/voyageui/voyage/widget"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// The metadata header carries the custom component schemas so the C1
	// endpoint renders travel widgets instead of free-form markup.
	opts := []c1.ClientOption{
		c1.WithMetadata(widget.MustMetadataHeader()),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, c1.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Model != "" {
		opts = append(opts, c1.WithModel(cfg.Model))
	}
	provider := c1.New(cfg.APIKey, opts...)

	p := planner.New(provider, planner.WithMaxSteps(cfg.MaxSteps))

	handler := NewChatHandler(p, cfg)

	mux := http.NewServeMux()
	mux.Handle("/api/chat", corsMiddleware(cfg.FrontendURL, handler))
	mux.HandleFunc("/", rootHandler)
	mux.HandleFunc("/health", healthHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
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

	log.Printf("Travel planner server starting on :%s", cfg.Port)
	log.Printf("Frontend URL: %s", cfg.FrontendURL)
	log.Printf("Endpoint: POST http://localhost:%s/api/chat", cfg.Port)
	log.Printf("Health:   GET  http://localhost:%s/health", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped")
}
