package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorOrange:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorCursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board layout: every cell is two screen columns wide so the cursor
// brackets fit between neighbours. Two launch rows sit above the board and
// two exit rows below it, all inside a box.

// BoardScreenSize returns the screen size needed to draw a topology.
func BoardScreenSize(t board.Topology) (w, h int) {
	return 2*t.W + 3, t.H + 6
}

func cellColumn(x int) int { return 2 + 2*x }
func cellRow(y int) int    { return 3 + y }

// marbleRune is drawn for the active marble.
const marbleRune = '●'

// partColor returns the color a part is drawn in.
func partColor(p board.Part) core.Color {
	switch p {
	case board.RampLeft, board.RampRight:
		return core.ColorWhite
	case board.BitLeft, board.BitRight:
		return core.ColorGreen
	case board.GearBitLeft, board.GearBitRight:
		return core.ColorYellow
	case board.GearLeft, board.GearRight:
		return core.ColorOrange
	case board.Crossover:
		return core.ColorCyan
	case board.Interceptor:
		return core.ColorMagenta
	default:
		return core.ColorGray
	}
}

// marbleColor returns the color a marble of c is drawn in.
func marbleColor(c sim.Color) core.Color {
	if c == sim.Red {
		return core.ColorBrightRed
	}
	return core.ColorBrightBlue
}

// DrawBoard draws the session's board, launch ramps and marble into s.
// The screen must be at least BoardScreenSize. A cursor outside the grid
// is not drawn; a cursor on a gear part highlights its whole component.
func DrawBoard(s *core.Screen, sess *sim.Session, cursor board.Coord) {
	b := sess.Board()
	t := b.Topology()
	w, h := BoardScreenSize(t)
	s.Clear()
	s.DrawBox(core.NewRect(0, 0, w, h), core.ColorGray)

	// Launch ramps lead from each home cell down onto the board.
	bx, by, _ := sess.Home(sim.Blue)
	rx, ry, _ := sess.Home(sim.Red)
	s.SetCell(cellColumn(bx), cellRow(by), '\\', core.ColorBlue)
	s.SetCell(cellColumn(bx+1), cellRow(by+1), '\\', core.ColorBlue)
	s.SetCell(cellColumn(rx), cellRow(ry), '/', core.ColorRed)
	s.SetCell(cellColumn(rx-1), cellRow(ry+1), '/', core.ColorRed)

	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			p := b.Get(x, y)
			r := p.Symbol()
			if p == board.Empty {
				r = board.EmptySymbol(t.CellKind(x, y))
			}
			s.SetCell(cellColumn(x), cellRow(y), r, partColor(p))
		}
	}

	// Light the whole gear train under the cursor.
	if t.InBounds(cursor.X, cursor.Y) {
		for _, c := range b.Component(cursor.X, cursor.Y) {
			s.SetCell(cellColumn(c.X), cellRow(c.Y), b.Get(c.X, c.Y).Symbol(), core.ColorCursor)
		}
	}

	// Exit chute under the center column.
	s.SetCell(cellColumn(t.Center()), cellRow(t.H), '│', core.ColorGray)

	if ball, ok := sess.Ball(); ok {
		s.SetCell(cellColumn(ball.X), cellRow(ball.Y), marbleRune, marbleColor(ball.Color))
	}

	if t.InBounds(cursor.X, cursor.Y) {
		col, row := cellColumn(cursor.X), cellRow(cursor.Y)
		s.SetCell(col-1, row, '[', core.ColorCursor)
		s.SetCell(col+1, row, ']', core.ColorCursor)
	}
}

// exitStrip renders the exit queue as colored marbles, newest last.
// Only the last max exits are shown.
func exitStrip(exits []sim.ExitRecord, max int) string {
	if len(exits) > max {
		exits = exits[len(exits)-max:]
	}
	var sb strings.Builder
	for _, e := range exits {
		sb.WriteString(colorStyles[marbleColor(e.Color)].Render(string(marbleRune)))
	}
	return sb.String()
}
