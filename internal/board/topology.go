// Package board provides the marble board: pin topology, part kinds,
// the mutable board model and gear network synchronization.
// This package is UI-agnostic and deterministic.
package board

import "fmt"

// Default board dimensions.
const (
	DefaultWidth  = 11
	DefaultHeight = 11
)

// CellKind classifies a board coordinate by the pin it carries.
type CellKind uint8

const (
	OutOfPlay     CellKind = iota // No pin; permanently unusable
	FullPin                       // Accepts every part
	GearPin                       // Accepts only gears or nothing
	GearPinMarked                 // Virtual gear pin; same rules as GearPin
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case OutOfPlay:
		return "OutOfPlay"
	case FullPin:
		return "FullPin"
	case GearPin:
		return "GearPin"
	case GearPinMarked:
		return "GearPinMarked"
	default:
		return "Unknown"
	}
}

// IsGearPin reports whether the kind only accepts gears.
func (k CellKind) IsGearPin() bool {
	return k == GearPin || k == GearPinMarked
}

// Playable reports whether a part can ever sit on this kind of cell.
func (k CellKind) Playable() bool {
	return k != OutOfPlay
}

// markedPins are the virtual gear pins of the canonical 11x11 board.
var markedPins = map[Coord]bool{
	C(4, 0): true,
	C(6, 0): true,
	C(5, 1): true,
	C(5, 9): true,
}

// Topology describes the board shape. It never changes once a board exists.
type Topology struct {
	W int // Board width; W mod 4 == 3 so the exit column is a full pin
	H int // Board height; odd
}

// DefaultTopology returns the canonical 11x11 topology.
func DefaultTopology() Topology {
	return Topology{W: DefaultWidth, H: DefaultHeight}
}

// NewTopology creates a topology after validating its dimensions.
func NewTopology(w, h int) (Topology, error) {
	t := Topology{W: w, H: h}
	if err := t.Validate(); err != nil {
		return Topology{}, err
	}
	return t, nil
}

// Validate checks that the dimensions produce a well-formed board.
func (t Topology) Validate() error {
	if t.W < 7 || t.W%4 != 3 {
		return fmt.Errorf("board: width %d must be >= 7 and leave remainder 3 when divided by 4", t.W)
	}
	if t.H < 5 || t.H%2 == 0 {
		return fmt.Errorf("board: height %d must be odd and >= 5", t.H)
	}
	return nil
}

// D returns the launch-ramp offset, floor(W/4).
func (t Topology) D() int {
	return t.W / 4
}

// Center returns the exit column.
func (t Topology) Center() int {
	return t.W / 2
}

// Size returns the number of cells.
func (t Topology) Size() int {
	return t.W * t.H
}

// InBounds returns true if the coordinate is within the grid rectangle.
func (t Topology) InBounds(x, y int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H
}

// Index converts a coordinate to a row-major index.
func (t Topology) Index(x, y int) int {
	return y*t.W + x
}

// CellKind classifies (x, y). Coordinates outside the rectangle are OutOfPlay.
func (t Topology) CellKind(x, y int) CellKind {
	if !t.InBounds(x, y) {
		return OutOfPlay
	}
	d := t.D()
	switch {
	case x+y < d:
		return OutOfPlay
	case (t.W-1-x)+y < d:
		return OutOfPlay
	case x-y-d > 2 && (t.W-x)-d-1-y > 2:
		return OutOfPlay
	case x != t.Center() && y >= t.H-1:
		return OutOfPlay
	}
	if x%2 != y%2 {
		return FullPin
	}
	if t.W == DefaultWidth && t.H == DefaultHeight && markedPins[C(x, y)] {
		return GearPinMarked
	}
	return GearPin
}

// UsedCells returns every playable coordinate in row-major order.
func (t Topology) UsedCells() []Coord {
	coords := make([]Coord, 0, t.Size())
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if t.CellKind(x, y).Playable() {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}
