package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("RECENT_TTL", "")
	t.Setenv("MAX_CATEGORY_ATTEMPTS", "")

	cfg := Load()
	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, 30*24*time.Hour, cfg.RecentTTL)
	assert.Equal(t, 8, cfg.MaxCategoryAttempts)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("RECENT_TTL", "1h")
	t.Setenv("MAX_CATEGORY_ATTEMPTS", "3")
	t.Setenv("CATALOG_TIMEOUT", "not-a-duration")
	t.Setenv("RATE_LIMIT", "lots")

	cfg := Load()
	assert.False(t, cfg.IsDev())
	assert.Equal(t, time.Hour, cfg.RecentTTL)
	assert.Equal(t, 3, cfg.MaxCategoryAttempts)
	assert.Equal(t, 5*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 100, cfg.RateLimit)
}

func TestFeatureSwitches(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.StatsEnabled())
	assert.False(t, cfg.OIDCEnabled())

	cfg.DatabaseURL = "postgres://localhost/storesearch"
	cfg.OIDCIssuer = "https://id.example.com"
	assert.True(t, cfg.StatsEnabled())
	assert.False(t, cfg.OIDCEnabled())

	cfg.OIDCClientID = "storefront"
	assert.True(t, cfg.OIDCEnabled())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, (&Config{LogLevel: tt.level}).SlogLevel())
		})
	}
}

func TestLoadYAMLConfigMissingFile(t *testing.T) {
	cfg, err := LoadYAMLConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Len(t, cfg.PopularSearches, 8)
	assert.Equal(t, 8, cfg.Suggestions.Limit)
	assert.Equal(t, 10, cfg.Recent.Max)
	assert.Equal(t, 4, cfg.Stats.Workers)
}

func TestLoadYAMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	data := []byte(`
popular_searches:
  - sneakers
  - yoga mat
suggestions:
  limit: 5
recent:
  max: 20
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadYAMLConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sneakers", "yoga mat"}, cfg.PopularSearches)
	assert.Equal(t, 5, cfg.Suggestions.Limit)
	assert.Equal(t, 20, cfg.Recent.Max)
	assert.Equal(t, 4, cfg.Stats.Workers)
}

func TestLoadYAMLConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("popular_searches: [unclosed"), 0o644))

	_, err := LoadYAMLConfig(path)
	assert.Error(t, err)
}
