// Package config provides the runtime settings for the raycaster.
// Settings are loaded from an optional JSON file and can be overridden from
// the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Backend names accepted in WindowConfig.Backend.
const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

// Environment variables read by ApplyEnv.
const (
	EnvMapDir    = "RAYCASTER_MAP_DIR"
	EnvMapName   = "RAYCASTER_MAP_NAME"
	EnvBackend   = "RAYCASTER_BACKEND"
	EnvTelemetry = "RAYCASTER_TELEMETRY"
)

// Config holds all runtime settings
type Config struct {
	Window    WindowConfig    `json:"window"`
	Map       MapConfig       `json:"map"`
	Movement  MovementConfig  `json:"movement"`
	Minimap   MinimapConfig   `json:"minimap"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

// WindowConfig selects the presentation backend and its window
type WindowConfig struct {
	Backend   string `json:"backend"` // "ebiten" or "terminal"
	Title     string `json:"title"`
	Width     int    `json:"width"` // Window size in pixels (ebiten only)
	Height    int    `json:"height"`
	Resizable bool   `json:"resizable"`
}

// MapConfig names the map to play
type MapConfig struct {
	Dir  string `json:"dir"`  // Empty means the maps built into the binary
	Name string `json:"name"` // Base name, e.g. "map1"
}

// MovementConfig tunes the per-tick player speeds
type MovementConfig struct {
	MoveSpeed float64 `json:"move_speed"` // Map units per tick
	RotSpeed  float64 `json:"rot_speed"`  // Radians per tick
}

// MinimapConfig controls the overlay
type MinimapConfig struct {
	Visible     bool    `json:"visible"`      // Shown at startup
	FadeSeconds float64 `json:"fade_seconds"` // Duration of the show/hide fade
}

// TelemetryConfig controls OpenTelemetry tracing
type TelemetryConfig struct {
	Enabled     bool `json:"enabled"`
	SampleEvery int  `json:"sample_every"` // Trace one frame out of this many
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Backend:   BackendEbiten,
			Title:     "Raycaster",
			Width:     640,
			Height:    480,
			Resizable: true,
		},
		Map: MapConfig{
			Name: maploader.DefaultMapName,
		},
		Movement: MovementConfig{
			MoveSpeed: player.MoveSpeed,
			RotSpeed:  player.RotSpeed,
		},
		Minimap: MinimapConfig{
			Visible:     true,
			FadeSeconds: 0.25,
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			SampleEvery: 60,
		},
	}
}

// LoadConfig loads the config from a JSON file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

// ApplyEnv overrides settings from environment variables. Unset or empty
// variables leave the setting alone.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvMapDir); v != "" {
		c.Map.Dir = v
	}
	if v := getenv(EnvMapName); v != "" {
		c.Map.Name = v
	}
	if v := getenv(EnvBackend); v != "" {
		c.Window.Backend = strings.ToLower(v)
	}
	if v := getenv(EnvTelemetry); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvTelemetry, v, err)
		}
		c.Telemetry.Enabled = enabled
	}
	return nil
}

// Validate checks that the settings can be used to start the game
func (c *Config) Validate() error {
	switch c.Window.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Window.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Map.Name == "" {
		return fmt.Errorf("map name must not be empty")
	}
	if c.Movement.MoveSpeed <= 0 {
		return fmt.Errorf("move speed must be positive, got %v", c.Movement.MoveSpeed)
	}
	if c.Movement.RotSpeed <= 0 {
		return fmt.Errorf("rotation speed must be positive, got %v", c.Movement.RotSpeed)
	}
	if c.Minimap.FadeSeconds < 0 {
		return fmt.Errorf("minimap fade must not be negative, got %v", c.Minimap.FadeSeconds)
	}
	if c.Telemetry.SampleEvery <= 0 {
		return fmt.Errorf("telemetry sample rate must be positive, got %d", c.Telemetry.SampleEvery)
	}
	return nil
}
