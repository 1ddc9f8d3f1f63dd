// tumble is a marble-computer board simulator for the terminal.
//
// Usage:
//
//	tumble play [code|file|puzzle]  - Edit and run a board in the TUI
//	tumble run <code>               - Run a board headlessly and print the exits
//	tumble encode <file>            - Convert a text board to a share code
//	tumble decode <code>            - Convert a share code to a text board
//	tumble list                     - List available puzzles
//	tumble boards                   - List or delete saved boards
//	tumble solves <puzzle>          - Show the best solves of a puzzle
//	tumble serve                    - Start SSH server for remote play
//	tumble share                    - Start the HTTP share API
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tumble/config.yaml)
//	--db <path>         - Database path (default: ~/.tumble/tumble.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumble/internal/config"
	"github.com/vovakirdan/tumble/internal/puzzles"
	"github.com/vovakirdan/tumble/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tumble",
	Short: "Tumble - build marble computers in your terminal",
	Long: `Tumble simulates a marble-powered mechanical computer: marbles roll
down a pegboard of ramps, bits, crossovers, interceptors and gears, and the
order they leave the board is the output.

Available commands:
  play     - Edit and run a board interactively
  run      - Run a board headlessly
  encode   - Text board to share code
  decode   - Share code to text board
  list     - Show available puzzles
  boards   - Manage saved boards
  solves   - Best solves of a puzzle
  serve    - Start SSH server for remote play
  share    - Start the HTTP share API

Examples:
  tumble play
  tumble play gravity
  tumble run rlerlxc_2_2 --color blue
  tumble serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(solvesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shareCmd)
}

// loadConfig reads the config file, the .env overlay and the global flags,
// in that order of increasing precedence.
func loadConfig() (config.Config, error) {
	if err := config.LoadEnv(""); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Puzzles.Dir != "" {
		dir, err := config.ExpandHome(cfg.Puzzles.Dir)
		if err != nil {
			return cfg, err
		}
		if _, err := puzzles.RegisterDir(dir); err != nil {
			return cfg, fmt.Errorf("loading puzzles from %s: %w", dir, err)
		}
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for commands that cannot continue without it.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates the process logger at the configured level.
func newLogger(cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openStore opens the configured database, exiting on failure.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}
