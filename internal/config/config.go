package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the process configuration, loaded from the environment.
type Config struct {
	Port              string
	DatabaseURL       string // empty selects the in-memory store
	DoHEndpoint       string
	BreachAPIURL      string
	BreachAPIKey      string
	EnrichmentTimeout time.Duration
}

// Load reads configuration from environment variables. Only the breach API
// URL is required; everything else has a working default.
func Load() (*Config, error) {
	breachURL := os.Getenv("BREACH_API_URL")
	if breachURL == "" {
		breachURL = "https://haveibeenpwned.com/api/v3"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	timeout := 5 * time.Second
	if raw := os.Getenv("ENRICHMENT_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ENRICHMENT_TIMEOUT %q: %w", raw, err)
		}
		timeout = parsed
	}

	return &Config{
		Port:              port,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DoHEndpoint:       os.Getenv("DOH_ENDPOINT"),
		BreachAPIURL:      breachURL,
		BreachAPIKey:      os.Getenv("BREACH_API_KEY"),
		EnrichmentTimeout: timeout,
	}, nil
}
