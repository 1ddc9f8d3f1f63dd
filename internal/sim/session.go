package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tumble/internal/board"
)

// Session owns one simulation: the board, the single marble,
// the reservoir, the step history and the exit queue.
// A Session is not safe for concurrent use.
type Session struct {
	board   *board.Board
	ball    *Ball
	status  Status
	res     Reservoir
	history []HistoryEntry
	exits   []ExitRecord
	steps   uint64
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for launch/exit/interception events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMarbles sets the initial reservoir.
func WithMarbles(blue, red int) Option {
	return func(s *Session) {
		s.res = NewReservoir(blue, red)
	}
}

// NewSession creates a session for b. The session takes ownership of b.
func NewSession(b *board.Board, opts ...Option) *Session {
	s := &Session{
		board:  b,
		status: AwaitingLaunch,
		res:    NewReservoir(DefaultMarbles, DefaultMarbles),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the live board.
func (s *Session) Board() *board.Board { return s.board }

// Status returns the stepper state.
func (s *Session) Status() Status { return s.status }

// Reservoir returns a pointer to the reservoir for "+/-" adjustments.
func (s *Session) Reservoir() *Reservoir { return &s.res }

// Steps returns the number of forward steps taken since the session began.
func (s *Session) Steps() uint64 { return s.steps }

// Ball returns a copy of the marble, or false if there is none.
func (s *Session) Ball() (Ball, bool) {
	if s.ball == nil {
		return Ball{}, false
	}
	return *s.ball, true
}

// Exits returns a copy of the exit queue, most recent last.
func (s *Session) Exits() []ExitRecord {
	out := make([]ExitRecord, len(s.exits))
	copy(out, s.exits)
	return out
}

// HistoryLen returns how many steps can be undone.
func (s *Session) HistoryLen() int { return len(s.history) }

// Home returns the launch position and velocity of c.
func (s *Session) Home(c Color) (x, y, vx int) {
	t := s.board.Topology()
	if c == Red {
		return t.W - t.D(), -2, -1
	}
	return t.D() - 1, -2, 1
}

func (s *Session) placeHome(c Color) {
	x, y, vx := s.Home(c)
	s.ball = &Ball{X: x, Y: y, VX: vx, Color: c}
}

// Launch puts a new marble of colour c on its ramp.
// It is a no-op returning false when the reservoir for c is empty.
func (s *Session) Launch(c Color) bool {
	if s.res.Available(c) <= 0 {
		return false
	}
	s.placeHome(c)
	s.history = s.history[:0]
	s.status = Rolling
	s.logger.Debug("launch", "color", c, "available", s.res.Available(c))
	return true
}

// Abort removes the marble and forgets the step history.
func (s *Session) Abort() {
	s.ball = nil
	s.history = s.history[:0]
	s.status = AwaitingLaunch
}

// Step advances the marble by one row.
func (s *Session) Step() StepResult {
	if s.ball == nil || s.status != Rolling {
		return StepResult{Status: s.status, Stopped: true}
	}

	b := s.ball
	t := s.board.Topology()
	entry := HistoryEntry{Prior: b.VX}
	result := StepResult{}

	// First step off the launch row takes the marble out of the reservoir.
	if b.Y == -2 {
		if !s.res.take(b.Color) {
			s.status = emptyStatus(b.Color)
			s.logger.Debug("reservoir empty", "color", b.Color)
			return StepResult{Status: s.status, Stopped: true}
		}
		entry.Consumed = true
	}

	v := b.VX
	if (b.X == 0 && v < 0) || (b.X == t.W-1 && v > 0) {
		v = 0
	}
	b.X += v
	b.Y++
	b.VX = v
	entry.Applied = v
	result.Moved = true
	s.steps++

	if b.X < 0 || b.X >= t.W {
		panic(fmt.Sprintf("sim: marble left the board sideways at %s", board.C(b.X, b.Y)))
	}

	switch {
	case b.Y == t.H+1:
		entry.Exited = true
		s.exit(&result)
	case b.Y < 0 || b.Y >= t.H:
		// Launch ramp and exit chute have no cell; velocity is kept.
	default:
		entry.Effect = s.enter(b, &result)
	}

	s.history = append(s.history, entry)
	result.Status = s.status
	result.Stopped = s.status != Rolling
	return result
}

// enter applies the rule of the cell under the marble.
func (s *Session) enter(b *Ball, result *StepResult) Effect {
	p := s.board.Get(b.X, b.Y)
	switch p {
	case board.Interceptor:
		s.status = Intercepted
		s.logger.Debug("intercepted", "at", board.C(b.X, b.Y), "color", b.Color)
		return EffectIntercept
	case board.RampLeft:
		b.VX = -1
	case board.RampRight:
		b.VX = 1
	case board.BitLeft, board.BitRight:
		b.VX = bitVelocity(p)
		s.board.Set(b.X, b.Y, p.Flipped())
		result.Flipped = true
		return EffectFlip
	case board.GearBitLeft, board.GearBitRight:
		b.VX = -bitVelocity(p)
		result.GearsToggled = s.board.ToggleComponent(b.X, b.Y)
		return EffectToggle
	case board.Crossover:
		if b.VX == 0 {
			if b.Color == Blue {
				b.VX = 1
			} else {
				b.VX = -1
			}
		}
	case board.Empty, board.GearLeft, board.GearRight:
		b.VX = 0
	default:
		b.VX = 0
	}
	return EffectNone
}

// bitVelocity is the direction a plain bit sends the marble: the way it
// pointed before flipping. Gear-bits steer the opposite way.
func bitVelocity(p board.Part) int {
	if p.IsLeft() {
		return -1
	}
	return 1
}

// exit records the marble leaving and recycles a new one on the side it landed.
func (s *Session) exit(result *StepResult) {
	b := s.ball
	t := s.board.Topology()
	rec := ExitRecord{Color: b.Color, X: b.X, VX: b.VX}
	s.exits = append(s.exits, rec)
	result.Exited = &rec

	next := Red
	if 2*b.X < t.W {
		next = Blue
	}
	s.logger.Debug("exit", "color", rec.Color, "x", rec.X, "next", next)

	if s.res.Available(next) <= 0 {
		s.status = emptyStatus(next)
		return
	}
	s.placeHome(next)
	s.status = Rolling
	result.Recycled = true
}

// StepBackward undoes the most recent Step, including any recycle,
// bit flip, gear toggle or reservoir consumption it caused.
// Returns false when there is nothing to undo.
func (s *Session) StepBackward() bool {
	if len(s.history) == 0 || s.ball == nil {
		return false
	}
	entry := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	if entry.Exited {
		rec := s.exits[len(s.exits)-1]
		s.exits = s.exits[:len(s.exits)-1]
		s.ball = &Ball{X: rec.X, Y: s.board.Topology().H + 1, VX: rec.VX, Color: rec.Color}
	}

	b := s.ball
	switch entry.Effect {
	case EffectFlip:
		s.board.Set(b.X, b.Y, s.board.Get(b.X, b.Y).Flipped())
	case EffectToggle:
		s.board.ToggleComponent(b.X, b.Y)
	}

	b.X -= entry.Applied
	b.Y--
	b.VX = entry.Prior
	if entry.Consumed {
		s.res.give(b.Color)
	}
	s.status = Rolling
	if s.steps > 0 {
		s.steps--
	}
	return true
}

// Place edits the board. Gear parts bring their component into a
// consistent orientation. Returns false if the part is illegal there.
func (s *Session) Place(x, y int, p board.Part) bool {
	if !s.board.Set(x, y, p) {
		return false
	}
	if p.IsGear() {
		s.board.NormalizeComponent(x, y)
	}
	return true
}

// Flip reverses the orientation of the part at (x, y).
// Gear parts rotate their whole component.
func (s *Session) Flip(x, y int) bool {
	p := s.board.Get(x, y)
	switch {
	case p.IsGear():
		return s.board.ToggleComponent(x, y) > 0
	case p.Flipped() != p:
		return s.board.Set(x, y, p.Flipped())
	default:
		return false
	}
}

// ResetMarbles refills the reservoir and clears the marble and exit queue.
func (s *Session) ResetMarbles() {
	s.res.Refill()
	s.exits = s.exits[:0]
	s.Abort()
}

// LoadBoard replaces the board and resets the marble state.
func (s *Session) LoadBoard(b *board.Board) {
	s.board = b
	s.exits = s.exits[:0]
	s.Abort()
}

// SetMarbles replaces the reservoir with a full one.
func (s *Session) SetMarbles(blue, red int) {
	s.res = NewReservoir(blue, red)
}
