// Package tui provides the Bubble Tea front-end for the marble board.
// It handles the terminal UI loop, key mapping, tick scheduling and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tumble/internal/config"
)

// TickMsg is sent to trigger one simulation step.
// Ticks from an older generation are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// clock arms ticks for automatic stepping.
// Only a tick carrying the current generation is accepted, so bumping the
// generation discards whatever tick is already in flight.
type clock struct {
	gen     uint64
	speed   int // Index into config.SpeedOrder
	paused  bool
	running bool
}

func newClock(speed string) clock {
	c := clock{speed: 1}
	for i, name := range config.SpeedOrder {
		if name == speed {
			c.speed = i
		}
	}
	return c
}

// SpeedName returns the current speed name.
func (c clock) SpeedName() string {
	return config.SpeedOrder[c.speed]
}

func (c clock) interval() time.Duration {
	return config.SpeedInterval(c.SpeedName())
}

// accept reports whether a tick should step the simulation.
func (c clock) accept(msg TickMsg) bool {
	return c.running && !c.paused && msg.Gen == c.gen
}

// start begins automatic stepping unless paused.
func (c *clock) start() tea.Cmd {
	c.gen++
	c.running = true
	if c.paused {
		return nil
	}
	return tickCmd(c.gen, c.interval())
}

// next arms the tick following an accepted one.
func (c *clock) next() tea.Cmd {
	return tickCmd(c.gen, c.interval())
}

// stop ends automatic stepping and drops any pending tick.
func (c *clock) stop() {
	c.gen++
	c.running = false
}

// rearm drops the pending tick and, if stepping is active, arms a new one.
// Used for manual steps and speed changes.
func (c *clock) rearm() tea.Cmd {
	c.gen++
	if !c.running || c.paused {
		return nil
	}
	return tickCmd(c.gen, c.interval())
}

// togglePause flips the pause flag. Pausing never touches the simulation.
func (c *clock) togglePause() tea.Cmd {
	c.paused = !c.paused
	return c.rearm()
}

// faster moves to the next speed. Returns false at the fastest speed.
func (c *clock) faster() (tea.Cmd, bool) {
	if c.speed >= len(config.SpeedOrder)-1 {
		return nil, false
	}
	c.speed++
	return c.rearm(), true
}

// slower moves to the previous speed. Returns false at the slowest speed.
func (c *clock) slower() (tea.Cmd, bool) {
	if c.speed == 0 {
		return nil, false
	}
	c.speed--
	return c.rearm(), true
}
