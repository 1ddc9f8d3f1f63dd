package config

import (
	_ "embed"
)

//go:embed defaults/tumble.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
// It matches defaults/tumble.yaml and is used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  11,
			Height: 11,
		},
		Marbles: MarblesConfig{
			Blue: 20,
			Red:  20,
		},
		Sim: SimConfig{
			Speed:    "normal",
			MaxSteps: 100000,
		},
		Storage: StorageConfig{
			Path:     "~/.tumble/tumble.db",
			Autosave: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Host:    "0.0.0.0",
			Port:    23235,
			HostKey: ".ssh/tumble_ed25519",
		},
		HTTP: HTTPConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}
