package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character of the screen and its color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size character buffer. Games draw hex boards into it and
// the platform turns it into terminal output.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen returns a blank width x height buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.reset(width, height)
	return s
}

func (s *Screen) reset(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Resize changes the dimensions. The overlapping top-left area is kept.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	old := *s
	s.reset(width, height)
	for y := range min(old.height, s.height) {
		w := min(old.width, s.width)
		copy(s.cells[y*s.width:y*s.width+w], old.cells[y*old.width:y*old.width+w])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Set writes an uncolored rune. Writes outside the screen are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored writes a rune in color c.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right from (x, y), one rune per cell, clipped
// at the screen edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored is DrawText in color c.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text horizontally centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawRect fills r with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	left, right := r.X, r.Right()-1
	top, bottom := r.Y, r.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.Set(x, top, '─')
		s.Set(x, bottom, '─')
	}
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(left, top, '┌')
	s.Set(right, top, '┐')
	s.Set(left, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns row y as plain text. Rows outside the screen are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole buffer as plain text, rows separated by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
