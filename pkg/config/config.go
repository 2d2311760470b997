// Package config holds the tunable settings of the intersection simulation.
// Settings start from defaults, are overlaid by an optional JSON file and
// finally by command line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrInvalid is returned by Validate for settings that cannot run
var ErrInvalid = errors.New("invalid config")

// Renderer names
const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
)

// Config holds all simulation settings
type Config struct {
	Window   WindowConfig  `json:"window"`
	Traffic  TrafficConfig `json:"traffic"`
	Work     WorkConfig    `json:"work"`
	Renderer string        `json:"renderer"` // "window" or "terminal"
	LogLevel string        `json:"log_level"`

	ShutdownTimeoutMS int `json:"shutdown_timeout_ms"` // Bounded wait for vehicle goroutines on exit
}

// WindowConfig defines the field and frame rate
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	TPS    int    `json:"tps"` // Frames per second of the main loop
}

// TrafficConfig defines vehicle motion
type TrafficConfig struct {
	SpeedScale float64 `json:"speed_scale"` // Pixels per tick for one speed unit
	Seed       int64   `json:"seed"`        // 0 seeds from the clock
}

// WorkConfig defines the simulated work each vehicle does per tick.
// It stands in for the time a real driver spends, and makes crossings
// take longer in slow mode.
type WorkConfig struct {
	MinSpins  int `json:"min_spins"`
	MaxSpins  int `json:"max_spins"`
	SlowSpins int `json:"slow_spins"` // Extra spins per tick inside the intersection in slow mode
}

// DefaultConfig returns the settings of the classic 460x460 intersection
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  460,
			Height: 460,
			Title:  "Intersection",
			TPS:    250,
		},
		Traffic: TrafficConfig{
			SpeedScale: 0.0002,
			Seed:       0,
		},
		Work: WorkConfig{
			MinSpins:  2,
			MaxSpins:  6,
			SlowSpins: 2000,
		},
		Renderer:          RendererWindow,
		LogLevel:          "info",
		ShutdownTimeoutMS: 2000,
	}
}

// LoadConfig loads config from a JSON file on top of the defaults.
// An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// SaveToFile writes the config as indented JSON
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings describe a runnable simulation
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalid, c.Window.TPS)
	case c.Traffic.SpeedScale <= 0:
		return fmt.Errorf("%w: speed scale must be positive, got %v", ErrInvalid, c.Traffic.SpeedScale)
	case c.Work.MinSpins < 0 || c.Work.MaxSpins < c.Work.MinSpins:
		return fmt.Errorf("%w: spins must satisfy 0 <= min <= max, got [%d, %d]", ErrInvalid, c.Work.MinSpins, c.Work.MaxSpins)
	case c.Work.SlowSpins < 0:
		return fmt.Errorf("%w: slow spins must not be negative, got %d", ErrInvalid, c.Work.SlowSpins)
	case c.Renderer != RendererWindow && c.Renderer != RendererTerminal:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalid, c.Renderer)
	case c.ShutdownTimeoutMS <= 0:
		return fmt.Errorf("%w: shutdown timeout must be positive, got %d", ErrInvalid, c.ShutdownTimeoutMS)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// FrameInterval is the time between two frames of the main loop
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Window.TPS)
}

// ShutdownTimeout is the bounded wait for vehicles to stop
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}

// Seed returns the configured seed, or one taken from the clock
func (c *Config) Seed() int64 {
	if c.Traffic.Seed != 0 {
		return c.Traffic.Seed
	}
	return time.Now().UnixNano()
}
