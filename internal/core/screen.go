package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a grid of cells that the terminal renderer draws the world
// into. Writes outside the grid are dropped, so callers can draw shapes
// that hang off the edge without clipping them first.
type Screen struct {
	w, h  int
	cells []Cell // row-major
}

// NewScreen returns a blank w by h screen. Negative sizes are treated as 0.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.Resize(w, h)
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.w }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.h }

// Resize changes the grid size and blanks it. Every frame is drawn from
// scratch, so nothing is carried over.
func (s *Screen) Resize(w, h int) {
	s.w, s.h = max(w, 0), max(h, 0)
	if n := s.w * s.h; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	s.Fill(' ', ColorDefault)
}

// Fill sets every cell to r in color c.
func (s *Screen) Fill(r rune, c Color) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Put writes one cell.
func (s *Screen) Put(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// At returns the cell at (x, y), or a blank cell off the grid.
func (s *Screen) At(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// Text writes str left to right starting at (x, y), one rune per cell.
func (s *Screen) Text(x, y int, str string, c Color) {
	for _, r := range str {
		s.Put(x, y, r, c)
		x++
	}
}

// TextCentered writes str so that its middle rune lands on column cx.
func (s *Screen) TextCentered(cx, y int, str string, c Color) {
	s.Text(cx-utf8.RuneCountInString(str)/2, y, str, c)
}

// FillRect paints the cells covered by r.
func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	for y := max(r.Y, 0); y < min(r.Bottom(), s.h); y++ {
		for x := max(r.X, 0); x < min(r.Right(), s.w); x++ {
			s.cells[y*s.w+x] = Cell{Rune: fill, Color: c}
		}
	}
}

// HLine paints n cells to the right of (x, y), starting there.
func (s *Screen) HLine(x, y, n int, r rune, c Color) {
	s.FillRect(Rect{X: x, Y: y, W: n, H: 1}, r, c)
}

// VLine paints n cells downward from (x, y).
func (s *Screen) VLine(x, y, n int, r rune, c Color) {
	s.FillRect(Rect{X: x, Y: y, W: 1, H: n}, r, c)
}

// Row returns row y as plain text, or spaces when y is off the grid.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String returns the whole grid as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
