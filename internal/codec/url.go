package codec

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/sim"
)

// Run-length tokens for consecutive empty full pins.
const (
	runShort    = 'x'
	runShortLen = 3
	runLong     = 'z'
	runLongLen  = 9
)

// Marbles is the pair of reservoir totals carried by a code or snapshot.
type Marbles struct {
	Blue int
	Red  int
}

// DefaultMarbleCounts is what a code without a suffix implies.
func DefaultMarbleCounts() Marbles {
	return Marbles{Blue: sim.DefaultMarbles, Red: sim.DefaultMarbles}
}

// IsDefault reports whether m needs no suffix.
func (m Marbles) IsDefault() bool {
	return m == DefaultMarbleCounts()
}

// fullPinLetter maps a part on a full pin to its code letter.
func fullPinLetter(p board.Part) byte {
	switch p {
	case board.RampLeft:
		return 'l'
	case board.RampRight:
		return 'r'
	case board.BitLeft:
		return 'b'
	case board.BitRight:
		return 'd'
	case board.GearBitLeft:
		return 'p'
	case board.GearBitRight:
		return 'q'
	case board.GearLeft:
		return 'g'
	case board.GearRight:
		return 'h'
	case board.Crossover:
		return 'c'
	case board.Interceptor:
		return 'i'
	default:
		return 'e'
	}
}

func parseFullPinLetter(c byte) (board.Part, bool) {
	switch c {
	case 'e':
		return board.Empty, true
	case 'l':
		return board.RampLeft, true
	case 'r':
		return board.RampRight, true
	case 'b':
		return board.BitLeft, true
	case 'd':
		return board.BitRight, true
	case 'p':
		return board.GearBitLeft, true
	case 'q':
		return board.GearBitRight, true
	case 'g':
		return board.GearLeft, true
	case 'h':
		return board.GearRight, true
	case 'c':
		return board.Crossover, true
	case 'i':
		return board.Interceptor, true
	default:
		return board.Empty, false
	}
}

// emptyGearPin marks a vacant gear pin whose next written character would
// otherwise be claimed by it.
const emptyGearPin = 'E'

// gearPinLetter maps a gear on a gear pin to its code letter.
func gearPinLetter(p board.Part) (byte, bool) {
	switch p {
	case board.GearLeft:
		return 'G', true
	case board.GearRight:
		return 'H', true
	default:
		return 0, false
	}
}

func parseGearPinLetter(c byte) (board.Part, bool) {
	switch c {
	case 'G':
		return board.GearLeft, true
	case 'H':
		return board.GearRight, true
	case emptyGearPin:
		return board.Empty, true
	default:
		return board.Empty, false
	}
}

// claimedByGearPin reports whether a gear pin reading c would consume it.
func claimedByGearPin(c byte) bool {
	_, ok := parseGearPinLetter(c)
	return ok
}

// EncodeURL produces the compact code for b. Only used cells are walked.
// Empty gear pins cost nothing unless the next written character is one a
// gear pin would claim, runs of empty full pins are shortened with run
// tokens, trailing empties are dropped and a "_<blue>_<red>" suffix is
// added when m differs from the defaults.
func EncodeURL(b *board.Board, m Marbles) string {
	t := b.Topology()
	cells := t.UsedCells()

	// emptyRun[i] is the number of consecutive empty full pins starting at
	// cell i, counted over full pins only.
	emptyRun := make([]int, len(cells))
	run := 0
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		if t.CellKind(c.X, c.Y) != board.FullPin {
			emptyRun[i] = run
			continue
		}
		if b.Get(c.X, c.Y) == board.Empty {
			run++
		} else {
			run = 0
		}
		emptyRun[i] = run
	}

	// One slot per used cell in decode order; 0 is an empty gear pin still
	// to be resolved, and cells swallowed by a run stay 0 too.
	tokens := make([]byte, len(cells))
	vacant := make([]bool, len(cells))
	pending := 0
	for i, c := range cells {
		p := b.Get(c.X, c.Y)
		if t.CellKind(c.X, c.Y).IsGearPin() {
			if letter, ok := gearPinLetter(p); ok {
				tokens[i] = letter
			} else {
				vacant[i] = true
			}
			continue
		}
		if pending > 0 {
			pending--
			continue
		}
		if p != board.Empty {
			tokens[i] = fullPinLetter(p)
			continue
		}
		switch n := emptyRun[i]; {
		case n >= runLongLen:
			tokens[i] = runLong
			pending = runLongLen - 1
		case n >= runShortLen:
			tokens[i] = runShort
			pending = runShortLen - 1
		default:
			tokens[i] = 'e'
		}
	}

	var next byte
	for i := len(tokens) - 1; i >= 0; i-- {
		if vacant[i] && claimedByGearPin(next) {
			tokens[i] = emptyGearPin
		}
		if tokens[i] != 0 {
			next = tokens[i]
		}
	}

	var sb strings.Builder
	for _, tok := range tokens {
		if tok != 0 {
			sb.WriteByte(tok)
		}
	}

	code := strings.TrimRight(sb.String(), "exz")
	if !m.IsDefault() {
		code += "_" + strconv.Itoa(m.Blue) + "_" + strconv.Itoa(m.Red)
	}
	return code
}

// DecodeURL parses a compact code for topology t. Characters beyond the
// board's capacity are ignored, unknown characters decode to empty cells
// and a missing or malformed suffix yields the default marble counts.
func DecodeURL(t board.Topology, code string) (*board.Board, Marbles) {
	body, m := splitSuffix(code)
	b := board.New(t)

	pos := 0
	pending := 0
	for _, c := range t.UsedCells() {
		if t.CellKind(c.X, c.Y).IsGearPin() {
			if pos < len(body) {
				if p, ok := parseGearPinLetter(body[pos]); ok {
					b.Set(c.X, c.Y, p)
					pos++
				}
			}
			continue
		}
		if pending > 0 {
			pending--
			continue
		}
		if pos >= len(body) {
			continue
		}
		ch := body[pos]
		pos++
		switch ch {
		case runLong:
			pending = runLongLen - 1
		case runShort:
			pending = runShortLen - 1
		default:
			if p, ok := parseFullPinLetter(ch); ok {
				b.Set(c.X, c.Y, p)
			}
		}
	}
	return b, m
}

func splitSuffix(code string) (string, Marbles) {
	m := DefaultMarbleCounts()
	parts := strings.Split(code, "_")
	if len(parts) < 3 {
		return parts[0], m
	}
	blue, errB := strconv.Atoi(parts[1])
	red, errR := strconv.Atoi(parts[2])
	if errB == nil && errR == nil && blue >= 0 && red >= 0 {
		m = Marbles{Blue: blue, Red: red}
	}
	return parts[0], m
}
