package board

// walkComponent visits the 4-connected gear component containing (x0, y0)
// using an explicit stack. visit receives each member's index exactly once.
// Nothing is visited if (x0, y0) does not hold a gear part.
func (b *Board) walkComponent(x0, y0 int, visit func(idx int)) {
	if !b.Get(x0, y0).IsGear() {
		return
	}

	w := b.topo.W
	visited := make([]bool, len(b.cells))
	start := b.topo.Index(x0, y0)
	visited[start] = true
	stack := []int{start}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(idx)

		here := C(idx%w, idx/w)
		for _, d := range Dirs {
			n := here.Step(d)
			if !b.topo.InBounds(n.X, n.Y) {
				continue
			}
			ni := b.topo.Index(n.X, n.Y)
			if visited[ni] || !b.cells[ni].IsGear() {
				continue
			}
			visited[ni] = true
			stack = append(stack, ni)
		}
	}
}

// Component returns the coordinates of the gear component at (x0, y0).
func (b *Board) Component(x0, y0 int) []Coord {
	var members []Coord
	w := b.topo.W
	b.walkComponent(x0, y0, func(idx int) {
		members = append(members, C(idx%w, idx/w))
	})
	return members
}

// ToggleComponent flips the orientation of every member of the gear
// component at (x0, y0). Applying it twice restores the component.
// Returns the number of cells flipped.
func (b *Board) ToggleComponent(x0, y0 int) int {
	count := 0
	b.walkComponent(x0, y0, func(idx int) {
		b.cells[idx] = b.cells[idx].Flipped()
		count++
	})
	return count
}

// NormalizeComponent aligns every member of the gear component at (x0, y0)
// with a single orientation. The seed decides when it is a gear-bit;
// otherwise the first gear-bit found wins, and a gear-only component takes
// the seed gear's hand. Returns the number of cells changed.
func (b *Board) NormalizeComponent(x0, y0 int) int {
	seed := b.Get(x0, y0)
	if !seed.IsGear() {
		return 0
	}

	var members []int
	b.walkComponent(x0, y0, func(idx int) {
		members = append(members, idx)
	})

	left := seed.IsLeft()
	if !seed.IsGearBit() {
		for _, idx := range members {
			if b.cells[idx].IsGearBit() {
				left = b.cells[idx].IsLeft()
				break
			}
		}
	}

	changed := 0
	for _, idx := range members {
		want := b.cells[idx].withHand(left)
		if want != b.cells[idx] {
			b.cells[idx] = want
			changed++
		}
	}
	return changed
}
