package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/codec"
	"github.com/vovakirdan/tumble/internal/config"
)

func TestResolvePlayTarget(t *testing.T) {
	cfg := config.Default()
	cfg.Marbles.Blue, cfg.Marbles.Red = 5, 6
	tp := board.DefaultTopology()

	tests := []struct {
		name       string
		arg        string
		wantBlue   int
		wantRed    int
		wantPuzzle string
		wantSlot   string
	}{
		{"no argument", "", 5, 6, "", "local"},
		{"puzzle id", "gravity", 3, 3, "gravity", "puzzle:gravity"},
		{"share code", "_2_1", 2, 1, "", "local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := resolvePlayTarget(tt.arg, tp, cfg, nil)
			if err != nil {
				t.Fatalf("resolvePlayTarget(%q): %v", tt.arg, err)
			}
			if target.marbles.Blue != tt.wantBlue || target.marbles.Red != tt.wantRed {
				t.Errorf("marbles = %+v, expected %d/%d", target.marbles, tt.wantBlue, tt.wantRed)
			}
			gotPuzzle := ""
			if target.puzzle != nil {
				gotPuzzle = target.puzzle.ID
			}
			if gotPuzzle != tt.wantPuzzle {
				t.Errorf("puzzle = %q, expected %q", gotPuzzle, tt.wantPuzzle)
			}
			if target.slot != tt.wantSlot {
				t.Errorf("slot = %q, expected %q", target.slot, tt.wantSlot)
			}
			if target.board == nil {
				t.Error("board should never be nil")
			}
		})
	}
}

func TestResolvePlayTargetTextFile(t *testing.T) {
	cfg := config.Default()
	tp := board.DefaultTopology()

	b := board.NewDefault()
	b.Set(2, 1, board.Crossover)
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(codec.EncodeText(b)), 0o644); err != nil {
		t.Fatal(err)
	}

	target, err := resolvePlayTarget(path, tp, cfg, nil)
	if err != nil {
		t.Fatalf("resolvePlayTarget: %v", err)
	}
	if got := target.board.Get(2, 1); got != board.Crossover {
		t.Errorf("cell (2,1) = %v, expected Crossover", got)
	}
	if target.puzzle != nil {
		t.Error("text file should not load a puzzle")
	}
}

func TestResolvePlayTargetPuzzleFile(t *testing.T) {
	cfg := config.Default()
	tp := board.DefaultTopology()

	yaml := `id: file-puzzle
name: From File
size: { w: 11, h: 11 }
marbles: { blue: 2, red: 1 }
launch: red
goal: rb
`
	path := filepath.Join(t.TempDir(), "file-puzzle.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	target, err := resolvePlayTarget(path, tp, cfg, nil)
	if err != nil {
		t.Fatalf("resolvePlayTarget: %v", err)
	}
	if target.puzzle == nil || target.puzzle.ID != "file-puzzle" {
		t.Fatalf("puzzle = %+v", target.puzzle)
	}
	if target.marbles.Blue != 2 || target.marbles.Red != 1 {
		t.Errorf("marbles = %+v", target.marbles)
	}
	if target.slot != "puzzle:file-puzzle" {
		t.Errorf("slot = %q", target.slot)
	}
}
