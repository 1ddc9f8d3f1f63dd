package sim_test

import (
	"testing"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/sim"
)

func TestRunUntilReservoirEmpty(t *testing.T) {
	s := newSession(t, sim.WithMarbles(3, 3))
	s.Launch(sim.Blue)

	r := s.Run(0)
	if r.Capped {
		t.Error("unlimited run should not be capped")
	}
	if r.Status != sim.BlueEmpty {
		t.Errorf("expected BlueEmpty, got %v", r.Status)
	}
	if got := sim.Sequence(r.Exits); got != "bbb" {
		t.Errorf("expected bbb, got %q", got)
	}
	if r.Steps != 3*stepsToExit {
		t.Errorf("expected %d steps, got %d", 3*stepsToExit, r.Steps)
	}
}

func TestRunAlternates(t *testing.T) {
	// Blue is carried right and red left through a shared crossover,
	// so every marble lands on the other colour's side.
	s := newSession(t, sim.WithMarbles(2, 2))
	mustPlace(t, s, 3, 0, board.RampRight)
	mustPlace(t, s, 4, 1, board.RampRight)
	mustPlace(t, s, 5, 2, board.Crossover)
	mustPlace(t, s, 7, 0, board.RampLeft)
	mustPlace(t, s, 6, 1, board.RampLeft)

	s.Launch(sim.Blue)
	r := s.Run(0)
	if got := sim.Sequence(r.Exits); got != "brbr" {
		t.Errorf("expected brbr, got %q", got)
	}
	if r.Status != sim.BlueEmpty {
		t.Errorf("expected BlueEmpty, got %v", r.Status)
	}
}

func TestRunCapped(t *testing.T) {
	s := newSession(t)
	s.Launch(sim.Blue)

	r := s.Run(5)
	if !r.Capped || r.Steps != 5 {
		t.Errorf("expected capped after 5 steps, got %+v", r)
	}
	if r.Status != sim.Rolling {
		t.Errorf("expected Rolling, got %v", r.Status)
	}
}

func TestRunWithoutMarble(t *testing.T) {
	s := newSession(t)
	r := s.Run(10)
	if r.Steps != 0 || r.Status != sim.AwaitingLaunch {
		t.Errorf("unexpected result %+v", r)
	}
}
