package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/sim"
)

func drawDefault(t *testing.T, sess *sim.Session, cursor board.Coord) *core.Screen {
	t.Helper()
	w, h := BoardScreenSize(sess.Board().Topology())
	s := core.NewScreen(w, h)
	DrawBoard(s, sess, cursor)
	return s
}

func TestBoardScreenSize(t *testing.T) {
	w, h := BoardScreenSize(board.DefaultTopology())
	if w != 25 || h != 17 {
		t.Errorf("BoardScreenSize = %dx%d, expected 25x17", w, h)
	}
}

func TestDrawBoardCells(t *testing.T) {
	b := board.NewDefault()
	b.Set(2, 1, board.BitRight)
	b.Set(3, 2, board.Interceptor)
	sess := sim.NewSession(b)
	s := drawDefault(t, sess, board.C(-1, -1))

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"out of play", 0, 0, ' '},
		{"gear pin", 2, 0, ','},
		{"marked gear pin", 4, 0, ':'},
		{"full pin", 3, 0, '.'},
		{"bit", 2, 1, '>'},
		{"interceptor", 3, 2, 'U'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Get(cellColumn(tt.x), cellRow(tt.y)); got != tt.want {
				t.Errorf("cell (%d,%d) = %q, expected %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if c := s.GetCell(cellColumn(3), cellRow(2)); c.Color != core.ColorMagenta {
		t.Errorf("interceptor color = %v", c.Color)
	}
}

func TestDrawBoardFrame(t *testing.T) {
	sess := sim.NewSession(board.NewDefault())
	s := drawDefault(t, sess, board.C(-1, -1))
	tp := sess.Board().Topology()

	if s.Get(0, 0) != '┌' || s.Get(s.Width()-1, s.Height()-1) != '┘' {
		t.Error("board should be boxed")
	}
	if got := s.Get(cellColumn(tp.Center()), cellRow(tp.H)); got != '│' {
		t.Errorf("exit chute = %q", got)
	}

	bx, by, _ := sess.Home(sim.Blue)
	if got := s.Get(cellColumn(bx), cellRow(by)); got != '\\' {
		t.Errorf("blue ramp = %q", got)
	}
	rx, ry, _ := sess.Home(sim.Red)
	if got := s.Get(cellColumn(rx), cellRow(ry)); got != '/' {
		t.Errorf("red ramp = %q", got)
	}
}

func TestDrawBoardMarble(t *testing.T) {
	sess := sim.NewSession(board.NewDefault(), sim.WithMarbles(1, 1))
	sess.Launch(sim.Red)
	s := drawDefault(t, sess, board.C(-1, -1))

	rx, ry, _ := sess.Home(sim.Red)
	c := s.GetCell(cellColumn(rx), cellRow(ry))
	if c.Rune != marbleRune || c.Color != core.ColorBrightRed {
		t.Errorf("marble cell = %q/%v", c.Rune, c.Color)
	}

	sess.Step()
	sess.Step()
	s = drawDefault(t, sess, board.C(-1, -1))
	ball, _ := sess.Ball()
	if got := s.Get(cellColumn(ball.X), cellRow(ball.Y)); got != marbleRune {
		t.Errorf("marble not drawn at %d,%d", ball.X, ball.Y)
	}
	if got := s.Get(cellColumn(rx), cellRow(ry)); got != '/' {
		t.Errorf("ramp should reappear behind the marble, got %q", got)
	}
}

func TestDrawBoardHighlightsGearTrain(t *testing.T) {
	sess := sim.NewSession(board.NewDefault())
	for _, pl := range []struct {
		x, y int
		p    board.Part
	}{
		{4, 3, board.GearBitLeft},
		{5, 3, board.GearLeft},
		{6, 3, board.GearBitLeft},
		{2, 5, board.GearBitLeft},
	} {
		if !sess.Place(pl.x, pl.y, pl.p) {
			t.Fatalf("Place(%d,%d) rejected", pl.x, pl.y)
		}
	}

	s := drawDefault(t, sess, board.C(5, 3))
	for _, c := range []board.Coord{board.C(4, 3), board.C(5, 3), board.C(6, 3)} {
		if got := s.GetCell(cellColumn(c.X), cellRow(c.Y)).Color; got != core.ColorCursor {
			t.Errorf("%v: color = %v, expected cursor highlight", c, got)
		}
	}
	if got := s.GetCell(cellColumn(2), cellRow(5)).Color; got != core.ColorYellow {
		t.Errorf("unconnected gear-bit color = %v, expected yellow", got)
	}

	s = drawDefault(t, sess, board.C(3, 0))
	if got := s.GetCell(cellColumn(4), cellRow(3)).Color; got != core.ColorYellow {
		t.Errorf("gear-bit away from cursor color = %v, expected yellow", got)
	}
}

func TestDrawBoardCursor(t *testing.T) {
	sess := sim.NewSession(board.NewDefault())
	s := drawDefault(t, sess, board.C(2, 1))

	col, row := cellColumn(2), cellRow(1)
	if s.Get(col-1, row) != '[' || s.Get(col+1, row) != ']' {
		t.Errorf("cursor brackets = %q%q", s.Get(col-1, row), s.Get(col+1, row))
	}
	if s.Get(col, row) != '.' {
		t.Errorf("cursor should not hide the cell, got %q", s.Get(col, row))
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.SetCell(0, 0, 'a', core.ColorRed)
	s.SetCell(1, 0, 'b', core.ColorRed)
	s.Set(2, 1, 'c')

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("same-colored run should render together: %q", lines[0])
	}
	if !strings.Contains(lines[1], "c") {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestExitStrip(t *testing.T) {
	exits := []sim.ExitRecord{{Color: sim.Blue}, {Color: sim.Red}, {Color: sim.Blue}}
	if got := strings.Count(exitStrip(exits, 2), string(marbleRune)); got != 2 {
		t.Errorf("exitStrip should keep the last 2 exits, got %d", got)
	}
	if exitStrip(nil, 5) != "" {
		t.Error("empty exit queue should render nothing")
	}
}
