// Package sim implements the marble stepper: launch, per-tick movement,
// recycling at the exit and exact time reversal back to the last launch.
package sim

import "strings"

// Color identifies a marble colour and its launch lever.
type Color uint8

const (
	Blue Color = iota
	Red
)

// String returns the string representation of a colour.
func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}

// ParseColor maps "blue"/"b" and "red"/"r" (any case) to a colour.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "blue", "b":
		return Blue, true
	case "red", "r":
		return Red, true
	default:
		return Blue, false
	}
}

// Status is the stepper state.
type Status uint8

const (
	AwaitingLaunch Status = iota
	Rolling
	Intercepted
	BlueEmpty // A blue marble was needed but none were left
	RedEmpty  // A red marble was needed but none were left
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case AwaitingLaunch:
		return "AwaitingLaunch"
	case Rolling:
		return "Rolling"
	case Intercepted:
		return "Intercepted"
	case BlueEmpty:
		return "BlueEmpty"
	case RedEmpty:
		return "RedEmpty"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status only changes on the next launch.
func (s Status) Terminal() bool {
	return s == Intercepted || s == BlueEmpty || s == RedEmpty
}

func emptyStatus(c Color) Status {
	if c == Red {
		return RedEmpty
	}
	return BlueEmpty
}

// Ball is the single active marble.
// Y < 0 is the launch ramp above the board, Y == H is the exit chute
// and Y == H+1 is past the exit.
type Ball struct {
	X     int
	Y     int
	VX    int // -1, 0 or +1
	Color Color
}

// Effect is what entering a cell did to the board or the ball.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectFlip
	EffectToggle
	EffectIntercept
)

// HistoryEntry records one downward step so it can be undone.
type HistoryEntry struct {
	Prior    int  // Velocity before the step
	Applied  int  // Velocity actually used to move (after wall clamping)
	Consumed bool // A marble was taken from the reservoir
	Effect   Effect
	Exited   bool // The step carried the ball past the exit row
}

// ExitRecord describes a marble that left the board.
type ExitRecord struct {
	Color Color
	X     int
	VX    int
}

// StepResult contains information about what happened during a step.
type StepResult struct {
	Status       Status
	Moved        bool
	Stopped      bool // No further steps are possible until the next launch
	Flipped      bool
	GearsToggled int
	Exited       *ExitRecord
	Recycled     bool // A new marble was launched after the exit
}
