package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Server
	Port        string
	FrontendURL string

	// Thesys C1 provider
	APIKey  string
	BaseURL string
	Model   string

	// Planner
	MaxSteps int
	Timeout  time.Duration
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8000"),
		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		APIKey:      os.Getenv("THESYS_API_KEY"),
		BaseURL:     os.Getenv("THESYS_BASE_URL"),
		Model:       os.Getenv("THESYS_MODEL"),
		MaxSteps:    getEnvIntOrDefault("PLANNER_MAX_STEPS", 8),
		Timeout:     getEnvDurationOrDefault("PLANNER_TIMEOUT", 2*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("THESYS_API_KEY is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
