// ABOUTME: Simulator configuration: starting region, zoom bounds, map type
// ABOUTME: Loads and saves JSON under the XDG config directory

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harper/mapbridge/internal/models"
	"github.com/harper/mapbridge/internal/widget"
	"github.com/harper/mapbridge/internal/zoom"
)

// Config stores mapbridge simulator configuration.
type Config struct {
	// Region is the starting viewport. Zero means models.DefaultRegion.
	Region models.Region `json:"region,omitempty"`

	// MinZoom and MaxZoom bound the widget. Both zero means the widget's
	// full supported range.
	MinZoom float64 `json:"min_zoom,omitempty"`
	MaxZoom float64 `json:"max_zoom,omitempty"`

	// MapType selects the base map: standard (default), satellite, hybrid,
	// or terrain.
	MapType string `json:"map_type,omitempty"`
}

// GetRegion returns the configured starting region, defaulting to
// models.DefaultRegion.
func (c *Config) GetRegion() models.Region {
	if c.Region.IsZero() {
		return models.DefaultRegion
	}
	return c.Region
}

// GetMapType returns the configured map type, defaulting to standard.
func (c *Config) GetMapType() widget.MapType {
	if c.MapType == "" {
		return widget.MapTypeStandard
	}
	return widget.MapType(c.MapType)
}

// Validate checks the config for out-of-range values.
func (c *Config) Validate() error {
	if !c.Region.IsZero() {
		if err := models.ValidateRegion(c.Region); err != nil {
			return fmt.Errorf("invalid region: %w", err)
		}
	}
	if c.MinZoom < 0 || c.MaxZoom > zoom.Max {
		return fmt.Errorf("zoom bounds must be within [%d, %d]", zoom.Min, zoom.Max)
	}
	if c.MinZoom > c.MaxZoom && c.MaxZoom != 0 {
		return fmt.Errorf("min_zoom cannot exceed max_zoom")
	}
	switch widget.MapType(c.MapType) {
	case "", widget.MapTypeStandard, widget.MapTypeSatellite, widget.MapTypeHybrid, widget.MapTypeTerrain:
	default:
		return fmt.Errorf("unknown map_type: %q", c.MapType)
	}
	return nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "mapbridge", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk, creating the directory as needed.
func Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
