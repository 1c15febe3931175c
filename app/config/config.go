package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the storefront service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"3010"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseHost     string `env:"DB_HOST" default:"soundora-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"soundora_db"`
	DatabaseUser     string `env:"DB_USER" default:"soundora_user"`
	DatabasePassword string `env:"DB_PASSWORD"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Supabase
	SupabaseURL     string `env:"SUPABASE_URL" required:"true"`
	SupabaseAnonKey string `env:"SUPABASE_ANON_KEY" required:"true"`

	// Rate limiting
	RateLimitEnabled bool          `env:"RATE_LIMIT_ENABLED" default:"true"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" default:"30s"`

	// Client
	APIBaseURL string `env:"API_BASE_URL" default:"http://localhost:3010"`
	StateDir   string `env:"STATE_DIR"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "3010")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration. Either a full DATABASE_URL or the split
	// DB_* variables with at least a password.
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "soundora-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "soundora_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "soundora_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")
	if config.DatabaseURL == "" && config.DatabasePassword == "" {
		return nil, fmt.Errorf("either DATABASE_URL or DB_PASSWORD is required")
	}

	// Supabase configuration
	config.SupabaseURL = os.Getenv("SUPABASE_URL")
	if config.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}

	config.SupabaseAnonKey = os.Getenv("SUPABASE_ANON_KEY")
	if config.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}

	// Rate limiting
	config.RateLimitEnabled = getBoolEnv("RATE_LIMIT_ENABLED", true)

	requestTimeoutStr := getEnvOrDefault("REQUEST_TIMEOUT", "30s")
	var err error
	config.RequestTimeout, err = time.ParseDuration(requestTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	// Client configuration
	config.APIBaseURL = getEnvOrDefault("API_BASE_URL", "http://localhost:3010")
	config.StateDir = os.Getenv("STATE_DIR")

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate request timeout (minimum 1 second)
	if c.RequestTimeout < time.Second {
		return fmt.Errorf("request timeout must be at least 1 second, got: %v", c.RequestTimeout)
	}

	return nil
}

// DatabaseDSN returns the PostgreSQL connection string. A full
// DATABASE_URL wins over the split DB_* variables.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// ClientConfig holds configuration for the terminal client. Unlike the
// server config it has no required variables; everything defaults to a
// local development setup.
type ClientConfig struct {
	APIBaseURL     string
	StateDir       string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadClient reads the terminal client configuration from environment
// variables. The state directory defaults to the per-user config dir.
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{
		APIBaseURL: getEnvOrDefault("API_BASE_URL", "http://localhost:3010"),
		StateDir:   os.Getenv("STATE_DIR"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "warn"),
	}

	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine state directory: %w", err)
		}
		cfg.StateDir = filepath.Join(base, "soundora")
	}

	requestTimeoutStr := getEnvOrDefault("REQUEST_TIMEOUT", "30s")
	var err error
	cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// StatePath returns the path of the client state database.
func (c *ClientConfig) StatePath() string {
	return filepath.Join(c.StateDir, "state.db")
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
