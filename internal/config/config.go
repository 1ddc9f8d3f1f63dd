// Package config provides YAML-based configuration loading for tumble,
// with an optional .env overlay for deployment-specific values.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vovakirdan/tumble/internal/board"
)

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Marbles MarblesConfig `yaml:"marbles"`
	Sim     SimConfig     `yaml:"sim"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Puzzles PuzzlesConfig `yaml:"puzzles"`
	SSH     SSHConfig     `yaml:"ssh"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// BoardConfig defines the board dimensions used for new boards and snapshots.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MarblesConfig defines the starting reservoir.
type MarblesConfig struct {
	Blue int `yaml:"blue"`
	Red  int `yaml:"red"`
}

// SimConfig defines stepping parameters.
type SimConfig struct {
	Speed    string `yaml:"speed"`     // Name from Speeds
	MaxSteps int    `yaml:"max_steps"` // Limit for headless runs
}

// StorageConfig defines the SQLite database location.
type StorageConfig struct {
	Path     string `yaml:"path"`
	Autosave bool   `yaml:"autosave"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// PuzzlesConfig defines where extra puzzle files live.
type PuzzlesConfig struct {
	Dir string `yaml:"dir"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

// HTTPConfig defines the share API server.
type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	BaseURL        string   `yaml:"base_url"`
}

// Speeds maps tick speed names to their interval.
var Speeds = map[string]time.Duration{
	"slow":   1000 * time.Millisecond,
	"normal": 300 * time.Millisecond,
	"fast":   100 * time.Millisecond,
	"turbo":  5 * time.Millisecond,
	"frame":  16 * time.Millisecond,
}

// SpeedOrder lists speed names from slowest to fastest.
var SpeedOrder = []string{"slow", "normal", "fast", "frame", "turbo"}

// SpeedInterval returns the tick interval for a speed name.
// Unknown names fall back to "normal".
func SpeedInterval(name string) time.Duration {
	if d, ok := Speeds[name]; ok {
		return d
	}
	return Speeds["normal"]
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Topology returns the configured board shape.
func (c Config) Topology() (board.Topology, error) {
	return board.NewTopology(c.Board.Width, c.Board.Height)
}

// Validate checks the configuration for values the application cannot use.
func (c Config) Validate() error {
	if _, err := c.Topology(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Marbles.Blue < 0 || c.Marbles.Red < 0 {
		return fmt.Errorf("config: marble counts must not be negative (blue=%d, red=%d)", c.Marbles.Blue, c.Marbles.Red)
	}
	if _, ok := Speeds[c.Sim.Speed]; !ok {
		names := make([]string, 0, len(Speeds))
		for name := range Speeds {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("config: unknown speed %q (want one of %s)", c.Sim.Speed, strings.Join(names, ", "))
	}
	if c.Sim.MaxSteps <= 0 {
		return fmt.Errorf("config: sim.max_steps must be positive")
	}
	known := false
	for _, l := range logLevels {
		if strings.EqualFold(c.Log.Level, l) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.SSH.Port <= 0 || c.SSH.Port > 65535 {
		return fmt.Errorf("config: ssh.port %d out of range", c.SSH.Port)
	}
	return nil
}
