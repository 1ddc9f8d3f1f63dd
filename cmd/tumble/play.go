package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/codec"
	"github.com/vovakirdan/tumble/internal/config"
	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/platform/tui"
	"github.com/vovakirdan/tumble/internal/puzzles"
	"github.com/vovakirdan/tumble/internal/sim"
	"github.com/vovakirdan/tumble/internal/storage"
)

var flagSpeed string

var playCmd = &cobra.Command{
	Use:   "play [code|file|puzzle]",
	Short: "Edit and run a board",
	Long: `Open the board editor. Without an argument the last autosaved board
is restored. The argument may be a puzzle ID, a text or YAML puzzle file, or
a share code.

Controls:
  Arrows/hjkl   - Move cursor
  1-6, Tab      - Select part
  Space/Enter   - Place part
  x             - Erase
  f             - Flip part (gears turn their whole train)
  b / r         - Launch blue / red marble
  n / N         - Step forward / back
  p             - Pause
  + / -         - Speed
  c             - Check puzzle goal
  u             - Show share code
  Ctrl+S / o    - Save board / saved boards
  ?             - Full help
  q             - Quit

Examples:
  tumble play
  tumble play gravity
  tumble play ./boards/adder.txt
  tumble play rlerlxc_2_2
  tumble play --speed turbo`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Tick speed: slow, normal, fast, frame, turbo")
}

// playTarget is what play opens: a board, its reservoir and maybe a puzzle.
type playTarget struct {
	board   *board.Board
	marbles codec.Marbles
	puzzle  *puzzles.Puzzle
	slot    string
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg, "tumble")

	t, err := cfg.Topology()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Saved boards and autosave are optional here; the editor still works.
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open database, saving disabled", "error", err)
		store = nil
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	target, err := resolvePlayTarget(arg, t, cfg, store)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		Speed:    cfg.Sim.Speed,
		MaxSteps: cfg.Sim.MaxSteps,
		BaseURL:  cfg.HTTP.BaseURL,
	}
	if flagSpeed != "" {
		rc.Speed = flagSpeed
	}
	if cfg.Storage.Autosave {
		rc.Slot = target.slot
	}

	sess := sim.NewSession(target.board,
		sim.WithMarbles(target.marbles.Blue, target.marbles.Red),
		sim.WithLogger(logger),
	)
	model := tui.NewModel(sess, store, rc).WithLogger(logger)
	if target.puzzle != nil {
		model = model.WithPuzzle(target.puzzle)
	}

	runErr := tui.Run(model)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}

// resolvePlayTarget interprets the play argument.
func resolvePlayTarget(arg string, t board.Topology, cfg config.Config, store *storage.Store) (playTarget, error) {
	defaults := codec.Marbles{Blue: cfg.Marbles.Blue, Red: cfg.Marbles.Red}

	if arg == "" {
		target := playTarget{board: board.New(t), marbles: defaults, slot: "local"}
		if b, m, ok := tui.RestoreAutosave(store, target.slot, t); ok {
			target.board, target.marbles = b, m
		}
		return target, nil
	}

	if puzzles.Exists(arg) {
		p, err := puzzles.Get(arg)
		if err != nil {
			return playTarget{}, err
		}
		return puzzleTarget(p, store)
	}

	if _, err := os.Stat(arg); err == nil {
		return fileTarget(arg, t, defaults, store)
	}

	// Anything else is a share code; codes never fail to decode.
	b, m := codec.DecodeURL(t, arg)
	return playTarget{board: b, marbles: m, slot: "local"}, nil
}

// puzzleTarget opens a puzzle, resuming its own autosave slot if present.
func puzzleTarget(p puzzles.Puzzle, store *storage.Store) (playTarget, error) {
	pt, err := p.Topology()
	if err != nil {
		return playTarget{}, err
	}
	slot := "puzzle:" + p.ID
	if b, m, ok := tui.RestoreAutosave(store, slot, pt); ok {
		return playTarget{board: b, marbles: m, puzzle: &p, slot: slot}, nil
	}
	b, err := p.NewBoard()
	if err != nil {
		return playTarget{}, err
	}
	return playTarget{board: b, marbles: p.Marbles, puzzle: &p, slot: slot}, nil
}

// fileTarget loads a YAML puzzle or a text board from disk.
func fileTarget(path string, t board.Topology, defaults codec.Marbles, store *storage.Store) (playTarget, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err := puzzles.LoadFile(path)
		if err != nil {
			return playTarget{}, err
		}
		return puzzleTarget(p, store)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return playTarget{}, fmt.Errorf("reading board %s: %w", path, err)
	}
	return playTarget{board: codec.DecodeText(t, string(data)), marbles: defaults, slot: "local"}, nil
}
