package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Source    SourceConfig
	Feed      FeedConfig
	RateLimit RateLimitConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	FrontendURL     string
	Environment     string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// SourceConfig contains the remote user sources
type SourceConfig struct {
	UsersURL      string
	RandomUserURL string
	Timeout       time.Duration
	// Outbound requests per second shared by both sources
	RequestsPerSecond float64
}

// FeedConfig contains the random user feed configuration
type FeedConfig struct {
	Interval  time.Duration
	AutoStart bool
}

// RateLimitConfig contains inbound API rate limiting
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors as it's optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Source: SourceConfig{
			UsersURL:          getEnv("SOURCE_USERS_URL", "https://jsonplaceholder.typicode.com/users"),
			RandomUserURL:     getEnv("SOURCE_RANDOM_USER_URL", "https://randomuser.me/api/"),
			Timeout:           getEnvAsDuration("SOURCE_TIMEOUT", 10*time.Second),
			RequestsPerSecond: getEnvAsFloat("SOURCE_REQUESTS_PER_SECOND", 2),
		},
		Feed: FeedConfig{
			Interval:  getEnvAsDuration("FEED_INTERVAL", 10*time.Second),
			AutoStart: getEnvAsBool("FEED_AUTOSTART", false),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 100),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 200),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Source.UsersURL == "" {
		return fmt.Errorf("SOURCE_USERS_URL is required")
	}

	if c.Source.RandomUserURL == "" {
		return fmt.Errorf("SOURCE_RANDOM_USER_URL is required")
	}

	if c.Source.RequestsPerSecond <= 0 {
		return fmt.Errorf("SOURCE_REQUESTS_PER_SECOND must be positive")
	}

	// the feed schedule has one second resolution
	if c.Feed.Interval < time.Second {
		return fmt.Errorf("FEED_INTERVAL must be at least 1s, got %s", c.Feed.Interval)
	}

	validLevels := []string{"debug", "info", "warn", "error", "fatal"}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: %v", validLevels)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}

	return nil
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "dev" || c.Server.Environment == "development"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
