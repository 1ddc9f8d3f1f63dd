package board

// Board is the mutable grid of parts.
// Cells are stored in row-major order: index = y*W + x.
// Every stored part is legal for its cell's kind.
type Board struct {
	topo  Topology
	cells []Part
}

// New creates an empty board with the given topology.
func New(t Topology) *Board {
	return &Board{
		topo:  t,
		cells: make([]Part, t.Size()),
	}
}

// NewDefault creates an empty canonical 11x11 board.
func NewDefault() *Board {
	return New(DefaultTopology())
}

// Topology returns the board shape.
func (b *Board) Topology() Topology {
	return b.topo
}

// Get returns the part at (x, y). Out-of-bounds coordinates hold Empty.
func (b *Board) Get(x, y int) Part {
	if !b.topo.InBounds(x, y) {
		return Empty
	}
	return b.cells[b.topo.Index(x, y)]
}

// Set stores p at (x, y) if the cell's kind allows it.
// Returns false and leaves the board unchanged otherwise.
func (b *Board) Set(x, y int, p Part) bool {
	if !b.topo.InBounds(x, y) {
		return false
	}
	if !p.AllowedOn(b.topo.CellKind(x, y)) {
		return false
	}
	b.cells[b.topo.Index(x, y)] = p
	return true
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Part, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		topo:  b.topo,
		cells: cells,
	}
}

// Equal returns true if two boards have the same topology and contents.
func (b *Board) Equal(other *Board) bool {
	if b.topo != other.topo {
		return false
	}
	for i, p := range b.cells {
		if p != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold p.
func (b *Board) Count(p Part) int {
	count := 0
	for _, c := range b.cells {
		if c == p {
			count++
		}
	}
	return count
}

// PartCount returns the number of non-empty cells.
func (b *Board) PartCount() int {
	return len(b.cells) - b.Count(Empty)
}
