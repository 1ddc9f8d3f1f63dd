package board

// Part is the kind of component held by a cell.
type Part uint8

const (
	Empty Part = iota
	RampLeft
	RampRight
	BitLeft
	BitRight
	GearBitLeft
	GearBitRight
	GearLeft  // Plain gear, left-handed rendering
	GearRight // Plain gear, right-handed rendering
	Crossover
	Interceptor
)

// NumParts is the number of part kinds, Empty included.
const NumParts = 11

// AllParts lists every part kind in declaration order.
var AllParts = [NumParts]Part{
	Empty, RampLeft, RampRight, BitLeft, BitRight,
	GearBitLeft, GearBitRight, GearLeft, GearRight,
	Crossover, Interceptor,
}

// String returns a human-readable name for the part.
func (p Part) String() string {
	switch p {
	case Empty:
		return "Empty"
	case RampLeft:
		return "RampLeft"
	case RampRight:
		return "RampRight"
	case BitLeft:
		return "BitLeft"
	case BitRight:
		return "BitRight"
	case GearBitLeft:
		return "GearBitLeft"
	case GearBitRight:
		return "GearBitRight"
	case GearLeft:
		return "GearLeft"
	case GearRight:
		return "GearRight"
	case Crossover:
		return "Crossover"
	case Interceptor:
		return "Interceptor"
	default:
		return "Unknown"
	}
}

// IsGear reports whether the part meshes into a gear network.
func (p Part) IsGear() bool {
	switch p {
	case GearBitLeft, GearBitRight, GearLeft, GearRight:
		return true
	default:
		return false
	}
}

// IsGearBit reports whether the part is a gear-bit.
func (p Part) IsGearBit() bool {
	return p == GearBitLeft || p == GearBitRight
}

// IsLeft reports whether an oriented part points left.
func (p Part) IsLeft() bool {
	switch p {
	case RampLeft, BitLeft, GearBitLeft, GearLeft:
		return true
	default:
		return false
	}
}

// Flipped returns the part with its orientation reversed.
// Parts without orientation are returned unchanged.
func (p Part) Flipped() Part {
	switch p {
	case RampLeft:
		return RampRight
	case RampRight:
		return RampLeft
	case BitLeft:
		return BitRight
	case BitRight:
		return BitLeft
	case GearBitLeft:
		return GearBitRight
	case GearBitRight:
		return GearBitLeft
	case GearLeft:
		return GearRight
	case GearRight:
		return GearLeft
	default:
		return p
	}
}

// withHand returns the oriented variant of a gear part.
func (p Part) withHand(left bool) Part {
	if p.IsGear() && p.IsLeft() != left {
		return p.Flipped()
	}
	return p
}

// AllowedOn reports whether the part may be stored on a cell of kind k.
func (p Part) AllowedOn(k CellKind) bool {
	if p == Empty {
		return true
	}
	switch k {
	case FullPin:
		return true
	case GearPin, GearPinMarked:
		return p == GearLeft || p == GearRight
	default:
		return false
	}
}

// Symbol returns the part's character in the native text alphabet.
// Empty has no single symbol; see EmptySymbol.
func (p Part) Symbol() rune {
	switch p {
	case RampLeft:
		return '/'
	case RampRight:
		return '\\'
	case BitLeft:
		return '<'
	case BitRight:
		return '>'
	case GearBitLeft:
		return '('
	case GearBitRight:
		return ')'
	case GearLeft:
		return 'o'
	case GearRight:
		return 'O'
	case Crossover:
		return 'X'
	case Interceptor:
		return 'U'
	default:
		return '.'
	}
}

// EmptySymbol returns the placeholder drawn for an empty cell of kind k.
func EmptySymbol(k CellKind) rune {
	switch k {
	case FullPin:
		return '.'
	case GearPin:
		return ','
	case GearPinMarked:
		return ':'
	default:
		return ' '
	}
}

// ParseSymbol maps a native alphabet character to a part.
// Every placeholder decodes to Empty; unknown characters report false.
func ParseSymbol(r rune) (Part, bool) {
	switch r {
	case '.', ',', ':', ' ', '_', '-':
		return Empty, true
	case '/':
		return RampLeft, true
	case '\\':
		return RampRight, true
	case '<':
		return BitLeft, true
	case '>':
		return BitRight, true
	case '(':
		return GearBitLeft, true
	case ')':
		return GearBitRight, true
	case 'o':
		return GearLeft, true
	case 'O':
		return GearRight, true
	case 'X':
		return Crossover, true
	case 'U':
		return Interceptor, true
	default:
		return Empty, false
	}
}
