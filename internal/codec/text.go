// Package codec converts boards to and from their external forms:
// the verbose text layout, the compact URL code and the state snapshot.
// Decoders never fail on malformed board data; anything they cannot
// account for falls back to the empty cell the topology expects.
package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tumble/internal/board"
)

// EncodeText renders b as H lines of W runes, each line newline-terminated.
// Empty cells use the placeholder of their cell kind.
func EncodeText(b *board.Board) string {
	t := b.Topology()
	var sb strings.Builder
	sb.Grow((t.W + 1) * t.H)
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			p := b.Get(x, y)
			if p == board.Empty {
				sb.WriteRune(board.EmptySymbol(t.CellKind(x, y)))
			} else {
				sb.WriteRune(p.Symbol())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// textReader walks a text board rune by rune.
type textReader struct {
	s   string
	pos int
}

func (r *textReader) peek() (rune, bool) {
	if r.pos >= len(r.s) {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(r.s[r.pos:])
	return c, true
}

func (r *textReader) next() (rune, bool) {
	if r.pos >= len(r.s) {
		return 0, false
	}
	c, n := utf8.DecodeRuneInString(r.s[r.pos:])
	r.pos += n
	return c, true
}

// skipToLine advances past control characters and '#' metadata lines.
func (r *textReader) skipToLine() {
	for {
		c, ok := r.peek()
		if !ok {
			return
		}
		switch {
		case isControl(c):
			r.next()
		case c == '#':
			r.skipRest()
		default:
			return
		}
	}
}

// skipRest discards everything up to and including the next newline.
func (r *textReader) skipRest() {
	for {
		c, ok := r.next()
		if !ok || c == '\n' {
			return
		}
	}
}

// DecodeText parses a text board for topology t.
// Short lines and missing rows are padded with empty cells, long lines are
// truncated, and placeholders, unknown symbols or parts that are illegal
// on their cell all decode to the cell's empty default.
func DecodeText(t board.Topology, s string) *board.Board {
	b := board.New(t)
	r := &textReader{s: s}

	for y := 0; y < t.H; y++ {
		r.skipToLine()
		x := 0
		for ; x < t.W; x++ {
			c, ok := r.peek()
			if !ok || c == '\n' || c == '\r' {
				break
			}
			r.next()
			if p, ok := board.ParseSymbol(c); ok {
				b.Set(x, y, p)
			}
		}
		if x == t.W {
			if c, ok := r.peek(); ok && !isControl(c) {
				r.skipRest()
			}
		}
	}
	return b
}
