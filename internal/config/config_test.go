package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/uniscrape/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	// No config file exists in the search locations, so defaults apply.
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDatabase, cfg.Database)
	assert.Equal(t, config.DefaultExportPath, cfg.ExportPath)
	assert.Equal(t, config.DefaultLogPath, cfg.LogPath)
	assert.Equal(t, config.DefaultUniversities, cfg.Universities)
	assert.False(t, cfg.UseBrowser)
	assert.True(t, cfg.Headless)
	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, config.DefaultRateLimitDelay, cfg.RateLimitDelay)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"database": "custom/store.db",
		"universities": ["lse"],
		"use_browser": true,
		"headless": false,
		"timeout": "45s",
		"rate_limit_delay": "2s",
		"log_level": "debug"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom/store.db", cfg.Database)
	assert.Equal(t, []string{"lse"}, cfg.Universities)
	assert.True(t, cfg.UseBrowser)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 2*time.Second, cfg.RateLimitDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, config.DefaultExportPath, cfg.ExportPath)
}

func TestLoadNumericDurations(t *testing.T) {
	t.Parallel()

	// Bare numbers are seconds, the config format the tool has always read.
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"timeout": 30,
		"rate_limit_delay": 1
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 1*time.Second, cfg.RateLimitDelay)
}

func TestLoadNumericDurationFromEnv(t *testing.T) {
	t.Setenv("UNISCRAPE_TIMEOUT", "45")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database": `), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(_ *config.Config) {},
		},
		{
			name:    "empty database",
			mutate:  func(c *config.Config) { c.Database = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *config.Config) { c.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *config.Config) { c.RateLimitDelay = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{
				Database:       config.DefaultDatabase,
				Timeout:        config.DefaultTimeout,
				RateLimitDelay: config.DefaultRateLimitDelay,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
