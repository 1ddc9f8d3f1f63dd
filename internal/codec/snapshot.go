package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tumble/internal/board"
)

// ErrDimensionMismatch is returned when a snapshot was saved for a board
// of a different size. Callers should fall back to an empty board.
var ErrDimensionMismatch = errors.New("codec: snapshot dimensions do not match board")

// ErrMalformedSnapshot is returned when the snapshot header cannot be read.
var ErrMalformedSnapshot = errors.New("codec: malformed snapshot")

// EncodeSnapshot bundles dimensions, marble totals and the text board:
// "W,H,marbles,<text>" where marbles is "N" when both colours match and
// "B/R" otherwise. Readers that expect a single count reject the "B/R" form.
func EncodeSnapshot(b *board.Board, m Marbles) string {
	t := b.Topology()
	var marbles string
	if m.Blue == m.Red {
		marbles = strconv.Itoa(m.Blue)
	} else {
		marbles = strconv.Itoa(m.Blue) + "/" + strconv.Itoa(m.Red)
	}
	return fmt.Sprintf("%d,%d,%s,%s", t.W, t.H, marbles, EncodeText(b))
}

// DecodeSnapshot restores a snapshot for topology t.
func DecodeSnapshot(t board.Topology, s string) (*board.Board, Marbles, error) {
	fields := strings.SplitN(s, ",", 4)
	if len(fields) != 4 {
		return nil, Marbles{}, ErrMalformedSnapshot
	}

	w, errW := strconv.Atoi(strings.TrimSpace(fields[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(fields[1]))
	if errW != nil || errH != nil {
		return nil, Marbles{}, ErrMalformedSnapshot
	}
	if w != t.W || h != t.H {
		return nil, Marbles{}, fmt.Errorf("%w: saved %dx%d, want %dx%d", ErrDimensionMismatch, w, h, t.W, t.H)
	}

	m, err := parseMarbles(fields[2])
	if err != nil {
		return nil, Marbles{}, err
	}
	return DecodeText(t, fields[3]), m, nil
}

func parseMarbles(s string) (Marbles, error) {
	blueStr, redStr, split := strings.Cut(strings.TrimSpace(s), "/")
	if !split {
		redStr = blueStr
	}
	blue, errB := strconv.Atoi(blueStr)
	red, errR := strconv.Atoi(redStr)
	if errB != nil || errR != nil || blue < 0 || red < 0 {
		return Marbles{}, fmt.Errorf("%w: bad marble field %q", ErrMalformedSnapshot, s)
	}
	return Marbles{Blue: blue, Red: red}, nil
}
