// Package config provides configuration management for uniscrape.
// It handles loading, validation, and access to configuration values from a
// JSON config file and environment variables using Viper.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultDatabase       = "data/universities.db"
	DefaultExportPath     = "data/exports"
	DefaultLogPath        = "data/logs"
	DefaultTimeout        = 30 * time.Second
	DefaultRateLimitDelay = 1 * time.Second
)

// DefaultUniversities lists the institutions scraped when none are configured.
var DefaultUniversities = []string{"bologna", "lse"}

// Config represents the application configuration.
type Config struct {
	// Database is the path to the SQLite store file.
	Database string `json:"database" mapstructure:"database"`
	// ExportPath is the directory export artifacts are written under.
	ExportPath string `json:"export_path" mapstructure:"export_path"`
	// LogPath is the directory the log file is written under.
	LogPath string `json:"log_path" mapstructure:"log_path"`
	// Universities lists the institution keys to scrape.
	Universities []string `json:"universities" mapstructure:"universities"`
	// UseBrowser enables headless-browser rendered fetching.
	UseBrowser bool `json:"use_browser" mapstructure:"use_browser"`
	// Headless controls whether the browser runs without a visible window.
	Headless bool `json:"headless" mapstructure:"headless"`
	// Timeout bounds each page fetch.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
	// RateLimitDelay is the pause between network operations.
	RateLimitDelay time.Duration `json:"rate_limit_delay" mapstructure:"rate_limit_delay"`
	// LogLevel sets the minimum logging level.
	LogLevel string `json:"log_level" mapstructure:"log_level"`
}

// Load reads configuration from the given file path. An empty path falls back
// to the default search locations (./config.json, ./config/config.json). A
// missing file yields the built-in defaults; a malformed file is an error the
// caller should treat as fatal.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("UNISCRAPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine; defaults and environment variables apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// decodeHooks restores viper's default string hooks and adds the
// numeric-seconds conversion for duration fields.
func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		secondsToDurationHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// secondsToDurationHook interprets bare numbers targeting a time.Duration as
// seconds, so `"timeout": 30` means 30s. Without it the raw value would land
// in the duration's int64 as nanoseconds. Strings like "30s" still go through
// the duration parser.
func secondsToDurationHook() mapstructure.DecodeHookFunc {
	durationType := reflect.TypeOf(time.Duration(0))
	return func(_, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}
		switch n := data.(type) {
		case int:
			return time.Duration(n) * time.Second, nil
		case int64:
			return time.Duration(n) * time.Second, nil
		case float64:
			return time.Duration(n * float64(time.Second)), nil
		case string:
			// Unitless numeric strings (environment overrides) are seconds
			// too; anything else falls through to the duration parser.
			if sec, err := strconv.Atoi(n); err == nil {
				return time.Duration(sec) * time.Second, nil
			}
			return data, nil
		default:
			return data, nil
		}
	}
}

// setDefaults applies default values to the Viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("database", DefaultDatabase)
	v.SetDefault("export_path", DefaultExportPath)
	v.SetDefault("log_path", DefaultLogPath)
	v.SetDefault("universities", DefaultUniversities)
	v.SetDefault("use_browser", false)
	v.SetDefault("headless", true)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("rate_limit_delay", DefaultRateLimitDelay)
	v.SetDefault("log_level", "info")
}

// Validate checks the configuration for values that cannot be worked around.
func (c *Config) Validate() error {
	if c.Database == "" {
		return errors.New("database path must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.RateLimitDelay < 0 {
		return fmt.Errorf("rate_limit_delay must be non-negative, got %s", c.RateLimitDelay)
	}
	return nil
}
