// Package config provides configuration management for the Inventory Viewer.
//
// Config file locations (priority order):
//  1. $INVENTORY_VIEWER_CONFIG
//  2. ./inventory-viewer.yaml
//  3. $XDG_CONFIG_HOME/inventory-viewer/config.yaml
//  4. ~/.config/inventory-viewer/config.yaml
//  5. /etc/inventory-viewer/config.yaml
//
// Command line flags override values from the file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"inventoryviewer/internal/domain"

	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultAddr     = ":8000"
	DefaultBaseURL  = "/plugins/inventory-viewer"
	DefaultDBPath   = "./inventory.db"
	DefaultLogLevel = "info"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		// No config found - return defaults
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = DefaultBaseURL
	}
	c.Server.BaseURL = NormalizeBaseURL(c.Server.BaseURL)
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(10 * time.Second)
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = Duration(30 * time.Second)
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = Duration(60 * time.Second)
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = Duration(10 * time.Second)
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDBPath
	}
	if c.Snapshot.Debounce == 0 {
		c.Snapshot.Debounce = Duration(500 * time.Millisecond)
	}
	if c.Fields.YearIntroduced == "" {
		c.Fields.YearIntroduced = domain.CustomFieldYearIntroduced
	}
	if c.Fields.MeasurementPoint == "" {
		c.Fields.MeasurementPoint = domain.CustomFieldMeasurementPoint
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	if c.Snapshot.Watch && c.Snapshot.Path == "" {
		return fmt.Errorf("snapshot.watch requires snapshot.path")
	}
	return nil
}

// NormalizeBaseURL returns base with a leading slash and no trailing slash.
// The root mount is returned as "".
func NormalizeBaseURL(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return ""
	}
	return "/" + base
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Listen: %s, Base URL: %s/, Database: %s", c.Server.Addr, c.Server.BaseURL, c.Database.Path)
	if c.Snapshot.Path != "" {
		summary += fmt.Sprintf(", Snapshot: %s (watch: %v)", c.Snapshot.Path, c.Snapshot.Watch)
	}
	return summary
}
