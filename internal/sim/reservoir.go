package sim

// DefaultMarbles is the per-colour marble count of a fresh game.
const DefaultMarbles = 20

// Reservoir holds the marbles waiting behind each lever.
// Available and total are adjusted independently; launching only
// requires Available > 0.
type Reservoir struct {
	BlueAvailable int
	RedAvailable  int
	BlueTotal     int
	RedTotal      int
}

// NewReservoir creates a full reservoir.
func NewReservoir(blue, red int) Reservoir {
	if blue < 0 {
		blue = 0
	}
	if red < 0 {
		red = 0
	}
	return Reservoir{
		BlueAvailable: blue,
		RedAvailable:  red,
		BlueTotal:     blue,
		RedTotal:      red,
	}
}

// Available returns the marbles left for c.
func (r *Reservoir) Available(c Color) int {
	if c == Red {
		return r.RedAvailable
	}
	return r.BlueAvailable
}

// Total returns the reset baseline for c.
func (r *Reservoir) Total(c Color) int {
	if c == Red {
		return r.RedTotal
	}
	return r.BlueTotal
}

func (r *Reservoir) take(c Color) bool {
	if r.Available(c) <= 0 {
		return false
	}
	r.add(c, -1)
	return true
}

func (r *Reservoir) give(c Color) {
	r.add(c, 1)
}

func (r *Reservoir) add(c Color, delta int) {
	if c == Red {
		r.RedAvailable += delta
	} else {
		r.BlueAvailable += delta
	}
}

// Adjust changes the available count, clamping at zero.
func (r *Reservoir) Adjust(c Color, delta int) {
	r.add(c, delta)
	if r.BlueAvailable < 0 {
		r.BlueAvailable = 0
	}
	if r.RedAvailable < 0 {
		r.RedAvailable = 0
	}
}

// AdjustTotal changes the reset baseline, clamping at zero.
func (r *Reservoir) AdjustTotal(c Color, delta int) {
	if c == Red {
		r.RedTotal = max(0, r.RedTotal+delta)
	} else {
		r.BlueTotal = max(0, r.BlueTotal+delta)
	}
}

// Refill resets both available counts to their totals.
func (r *Reservoir) Refill() {
	r.BlueAvailable = r.BlueTotal
	r.RedAvailable = r.RedTotal
}
