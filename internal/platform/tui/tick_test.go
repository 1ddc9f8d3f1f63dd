package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tumble/internal/config"
)

func TestNewClockSpeed(t *testing.T) {
	tests := []struct {
		speed string
		want  string
	}{
		{"slow", "slow"},
		{"turbo", "turbo"},
		{"frame", "frame"},
		{"", "normal"},
		{"warp", "normal"},
	}
	for _, tt := range tests {
		c := newClock(tt.speed)
		if c.SpeedName() != tt.want {
			t.Errorf("newClock(%q).SpeedName() = %q, expected %q", tt.speed, c.SpeedName(), tt.want)
		}
	}
}

func TestClockStartAcceptsCurrentGeneration(t *testing.T) {
	c := newClock("normal")
	if cmd := c.start(); cmd == nil {
		t.Fatal("start should arm a tick")
	}
	if !c.accept(TickMsg{Gen: c.gen}) {
		t.Error("tick of the current generation should be accepted")
	}
	if c.accept(TickMsg{Gen: c.gen - 1}) {
		t.Error("tick of an older generation should be dropped")
	}
}

func TestClockRearmDiscardsPendingTick(t *testing.T) {
	c := newClock("normal")
	c.start()
	pending := TickMsg{Gen: c.gen}

	// Manual step
	if cmd := c.rearm(); cmd == nil {
		t.Error("rearm while running should arm a new tick")
	}
	if c.accept(pending) {
		t.Error("tick armed before rearm should be dropped")
	}
	if !c.accept(TickMsg{Gen: c.gen}) {
		t.Error("new tick should be accepted")
	}
}

func TestClockPause(t *testing.T) {
	c := newClock("normal")
	c.start()
	gen := c.gen

	if cmd := c.togglePause(); cmd != nil {
		t.Error("pausing should not arm a tick")
	}
	if c.accept(TickMsg{Gen: c.gen}) {
		t.Error("paused clock should not accept ticks")
	}
	if c.gen == gen {
		t.Error("pausing should drop the pending tick")
	}

	if cmd := c.togglePause(); cmd == nil {
		t.Error("resuming a running clock should arm a tick")
	}
	if !c.accept(TickMsg{Gen: c.gen}) {
		t.Error("resumed clock should accept current ticks")
	}
}

func TestClockStartWhilePaused(t *testing.T) {
	c := newClock("normal")
	c.togglePause()
	if cmd := c.start(); cmd != nil {
		t.Error("start while paused should not arm a tick")
	}
	if !c.running {
		t.Error("clock should still be marked running")
	}
	if cmd := c.togglePause(); cmd == nil {
		t.Error("unpausing should arm the first tick")
	}
}

func TestClockStop(t *testing.T) {
	c := newClock("normal")
	c.start()
	pending := TickMsg{Gen: c.gen}
	c.stop()
	if c.accept(pending) {
		t.Error("stopped clock should drop pending ticks")
	}
	if cmd := c.rearm(); cmd != nil {
		t.Error("rearm on a stopped clock should not arm a tick")
	}
}

func TestClockSpeedChanges(t *testing.T) {
	c := newClock(config.SpeedOrder[0])
	if _, ok := c.slower(); ok {
		t.Error("slower at the slowest speed should fail")
	}

	c.start()
	prev := c.interval()
	gen := c.gen
	cmd, ok := c.faster()
	if !ok || cmd == nil {
		t.Fatal("faster should succeed and rearm a running clock")
	}
	if c.gen == gen {
		t.Error("speed change should bump the generation")
	}
	if c.interval() >= prev {
		t.Errorf("interval should shrink, got %v after %v", c.interval(), prev)
	}

	for i := 0; i < len(config.SpeedOrder); i++ {
		c.faster()
	}
	if c.SpeedName() != "turbo" {
		t.Errorf("fastest speed should be turbo, got %q", c.SpeedName())
	}
	if c.interval() != 5*time.Millisecond {
		t.Errorf("turbo interval = %v", c.interval())
	}
	if _, ok := c.faster(); ok {
		t.Error("faster at the fastest speed should fail")
	}
}
