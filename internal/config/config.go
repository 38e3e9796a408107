package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // debug, info, warn, error

	// Server
	ServerAddr  string
	CORSOrigins string // Comma-separated allowed origins
	RateLimit   int    // Requests per minute per IP

	// Session
	SessionSecret string // Used for encrypting cookies (min 32 chars)

	// Statistics database (optional)
	DatabaseURL string

	// Recent searches storage: Redis when REDIS_URL is set, bbolt file otherwise
	RedisURL  string
	BoltPath  string
	RecentTTL time.Duration

	// Catalog backend
	CatalogURL            string
	CatalogTimeout        time.Duration
	CatalogClientID       string
	CatalogClientSecret   string
	CatalogTokenURL       string
	CatalogHealthInterval time.Duration
	MaxCategoryAttempts   int

	// OIDC (optional, shopper identity from bearer ID tokens)
	OIDCIssuer   string
	OIDCClientID string

	// Path of the optional YAML file (popular searches, limits)
	ConfigFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3001"),
		RateLimit:     getEnvInt("RATE_LIMIT", 100),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL:  getEnv("REDIS_URL", ""),
		BoltPath:  getEnv("BOLT_PATH", "recent.db"),
		RecentTTL: getEnvDuration("RECENT_TTL", 30*24*time.Hour),

		CatalogURL:            getEnv("CATALOG_URL", "http://localhost:8000/api"),
		CatalogTimeout:        getEnvDuration("CATALOG_TIMEOUT", 5*time.Second),
		CatalogClientID:       getEnv("CATALOG_CLIENT_ID", ""),
		CatalogClientSecret:   getEnv("CATALOG_CLIENT_SECRET", ""),
		CatalogTokenURL:       getEnv("CATALOG_TOKEN_URL", ""),
		CatalogHealthInterval: getEnvDuration("CATALOG_HEALTH_INTERVAL", 30*time.Second),
		MaxCategoryAttempts:   getEnvInt("MAX_CATEGORY_ATTEMPTS", 8),

		OIDCIssuer:   getEnv("OIDC_ISSUER", ""),
		OIDCClientID: getEnv("OIDC_CLIENT_ID", ""),

		ConfigFile: getEnv("CONFIG_FILE", "search.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// StatsEnabled reports whether strategy statistics are persisted.
func (c *Config) StatsEnabled() bool {
	return c.DatabaseURL != ""
}

// OIDCEnabled reports whether bearer ID tokens identify shoppers.
func (c *Config) OIDCEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
