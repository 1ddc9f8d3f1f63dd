// Package puzzles provides puzzle definitions: YAML files on disk and the
// built-in set shipped with the binary.
// This package depends on board, sim and codec; none of them depend on it.
package puzzles

import (
	"fmt"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/codec"
	"github.com/vovakirdan/tumble/internal/puzzles/formats"
	"github.com/vovakirdan/tumble/internal/sim"
)

// Puzzle is a starting board plus the marbles and goal that go with it.
type Puzzle struct {
	ID          string
	Name        string
	Description string
	Width       int
	Height      int
	Marbles     codec.Marbles
	Launch      sim.Color
	Goal        string // Expected exit sequence of 'b'/'r'; empty for sandboxes
	Board       string
	Code        string
	Solution    string
	Metadata    map[string]string
	FilePath    string // Empty for built-ins
}

func fromFormat(p formats.Puzzle, path string) (Puzzle, error) {
	launch, ok := sim.ParseColor(p.Launch)
	if !ok {
		return Puzzle{}, fmt.Errorf("puzzle %s: unknown launch colour %q", p.ID, p.Launch)
	}
	for _, c := range p.Goal {
		if c != 'b' && c != 'r' {
			return Puzzle{}, fmt.Errorf("puzzle %s: goal may only contain 'b' and 'r'", p.ID)
		}
	}
	pz := Puzzle{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Width:       p.Width,
		Height:      p.Height,
		Marbles:     codec.Marbles{Blue: p.Blue, Red: p.Red},
		Launch:      launch,
		Goal:        p.Goal,
		Board:       p.Board,
		Code:        p.Code,
		Solution:    p.Solution,
		Metadata:    p.Metadata,
		FilePath:    path,
	}
	if _, err := pz.Topology(); err != nil {
		return Puzzle{}, fmt.Errorf("puzzle %s: %w", p.ID, err)
	}
	return pz, nil
}

// Topology returns the puzzle's board shape.
func (p *Puzzle) Topology() (board.Topology, error) {
	return board.NewTopology(p.Width, p.Height)
}

// NewBoard decodes the starting board.
func (p *Puzzle) NewBoard() (*board.Board, error) {
	t, err := p.Topology()
	if err != nil {
		return nil, err
	}
	if p.Code != "" {
		b, _ := codec.DecodeURL(t, p.Code)
		return b, nil
	}
	return codec.DecodeText(t, p.Board), nil
}

// SolutionBoard decodes the stored solution, if the puzzle has one.
func (p *Puzzle) SolutionBoard() (*board.Board, bool, error) {
	if p.Solution == "" {
		return nil, false, nil
	}
	t, err := p.Topology()
	if err != nil {
		return nil, false, err
	}
	b, _ := codec.DecodeURL(t, p.Solution)
	return b, true, nil
}

// NewSession creates a ready-to-launch session for the puzzle.
func (p *Puzzle) NewSession(opts ...sim.Option) (*sim.Session, error) {
	b, err := p.NewBoard()
	if err != nil {
		return nil, err
	}
	opts = append([]sim.Option{sim.WithMarbles(p.Marbles.Blue, p.Marbles.Red)}, opts...)
	return sim.NewSession(b, opts...), nil
}

// ShareCode returns the compact code of the starting board.
func (p *Puzzle) ShareCode() (string, error) {
	b, err := p.NewBoard()
	if err != nil {
		return "", err
	}
	return codec.EncodeURL(b, p.Marbles), nil
}

// CheckResult reports whether a board produces a puzzle's goal.
type CheckResult struct {
	Got    string
	Want   string
	Solved bool
	Status sim.Status
}

// Check launches the puzzle's first marble on b and compares the exit
// sequence with the goal. Puzzles without a goal are always solved.
func (p *Puzzle) Check(b *board.Board, maxSteps int) CheckResult {
	s := sim.NewSession(b.Clone(), sim.WithMarbles(p.Marbles.Blue, p.Marbles.Red))
	s.Launch(p.Launch)
	r := s.Run(maxSteps)
	got := sim.Sequence(r.Exits)
	return CheckResult{
		Got:    got,
		Want:   p.Goal,
		Solved: p.Goal == "" || got == p.Goal,
		Status: r.Status,
	}
}
