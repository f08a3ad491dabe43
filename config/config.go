package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// PandaScore API
	PandaScoreAPIKey  string        `envconfig:"PANDASCORE_API_KEY" required:"true"`
	PandaScoreBaseURL string        `envconfig:"PANDASCORE_BASE_URL" default:"https://api.pandascore.co"`
	PandaScoreTimeout time.Duration `envconfig:"PANDASCORE_TIMEOUT" default:"30s"`

	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// HTTP server
	Port           int    `envconfig:"PORT" default:"8000"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Application
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Background refresh of supported games
	RefreshEnabled  bool          `envconfig:"REFRESH_ENABLED" default:"false"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"15m"`
}

// Load loads configuration from environment variables
// It first attempts to load from a .env file if one is present
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration. envconfig only rejects unset
// variables, so set-but-empty values are checked here.
func (c *Config) Validate() error {
	if c.PandaScoreAPIKey == "" {
		return fmt.Errorf("PANDASCORE_API_KEY is required")
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	return nil
}

// Origins returns the allowed CORS origins as a comma-separated string with
// surrounding whitespace removed from each entry.
func (c *Config) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	for i, origin := range parts {
		parts[i] = strings.TrimSpace(origin)
	}
	return strings.Join(parts, ",")
}

// MustLoad loads configuration or exits on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
