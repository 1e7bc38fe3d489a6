package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr           = ":8080"
	defaultBaseURL        = "http://localhost:8080"
	defaultAuthDelay      = 1500 * time.Millisecond
	defaultLoginRateLimit = 10

	// devSessionSecret is only accepted when APP_ENV is "development".
	devSessionSecret = "dev-only-session-secret-change-me"
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetAuthDelay() time.Duration
	GetLoginRateLimit() int
	IsDevelopment() bool
}

// Config holds all configuration for the application.
type Config struct {
	Env            string
	Addr           string
	AppBaseURL     string
	SessionSecret  string
	AuthDelay      time.Duration
	LoginRateLimit int
}

// New loads configuration from a .env file, if present, and the environment.
// It exits the process when the configuration is unusable.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Load reads configuration from the environment without touching .env files.
func Load() (*Config, error) {
	cfg := &Config{
		Env:            getenv("APP_ENV", "development"),
		Addr:           getenv("APP_ADDR", defaultAddr),
		AppBaseURL:     getenv("APP_BASE_URL", defaultBaseURL),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AuthDelay:      defaultAuthDelay,
		LoginRateLimit: defaultLoginRateLimit,
	}

	if v := os.Getenv("AUTH_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse AUTH_DELAY %q: %w", v, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("AUTH_DELAY must not be negative, got %s", d)
		}
		cfg.AuthDelay = d
	}

	if v := os.Getenv("LOGIN_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse LOGIN_RATE_LIMIT %q: %w", v, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("LOGIN_RATE_LIMIT must be positive, got %d", n)
		}
		cfg.LoginRateLimit = n
	}

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("SESSION_SECRET is required when APP_ENV=%s", cfg.Env)
		}
		slog.Warn("SESSION_SECRET not set, using the development secret")
		cfg.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string             { return c.Addr }
func (c *Config) GetAppBaseURL() string       { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string    { return c.SessionSecret }
func (c *Config) GetAuthDelay() time.Duration { return c.AuthDelay }
func (c *Config) GetLoginRateLimit() int      { return c.LoginRateLimit }

// IsDevelopment reports whether the app runs with development defaults.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }
