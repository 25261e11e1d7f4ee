package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings, read from the environment with an
// optional .env file.
type Config struct {
	ListenAddr string

	QuoteAPIURL     string
	RefMetals       []string
	RefreshInterval time.Duration
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		QuoteAPIURL:     getenv("QUOTE_API_URL", "https://api.metalquotes.example.com"),
		RefMetals:       splitList(getenv("REF_METALS", "silver")),
		RefreshInterval: 30 * time.Second,
	}

	if v := os.Getenv("REF_REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse REF_REFRESH_INTERVAL: %w", err)
		}
		cfg.RefreshInterval = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
