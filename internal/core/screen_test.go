package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	assert.Equal(t, 6, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, "      \n      \n      ", s.String())

	empty := NewScreen(-2, 4)
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, "", empty.Row(0))
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		assert.Equal(t, blank, s.GetCell(p[0], p[1]), "cell %v", p)
	}
	assert.NotContains(t, s.String(), "X")
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", ColorCat)
	s.DrawTextColored(0, 1, "def", ColorBlocked)

	s.Clear()

	for y := range 2 {
		for x := range 3 {
			assert.Equal(t, blank, s.GetCell(x, y))
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"inside", 1, "cat", " cat    "},
		{"clipped right", 6, "cat", "      ca"},
		{"clipped left", -1, "cat", "at      "},
		{"multi-byte runes", 0, "·#o", "·#o     "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.DrawText(tc.x, 0, tc.text)
			assert.Equal(t, tc.expected, s.Row(0))
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "Hex")
	assert.Equal(t, "   Hex    ", s.Row(0))
}

func TestScreenColoredText(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColored(1, 0, "**", ColorPath)

	assert.Equal(t, Cell{Rune: '*', Color: ColorPath}, s.GetCell(2, 0))
	assert.Equal(t, ColorDefault, s.GetCell(3, 0).Color)
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(6, 5)
	s.DrawRect(NewRect(1, 1, 4, 3), '.')
	s.DrawBox(NewRect(0, 0, 6, 5))

	expected := strings.Join([]string{
		"┌────┐",
		"│....│",
		"│....│",
		"│....│",
		"└────┘",
	}, "\n")
	assert.Equal(t, expected, s.String())
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "abcdef")
	s.DrawText(0, 2, "ghijkl")

	s.Resize(4, 2)
	require.Equal(t, 4, s.Width())
	require.Equal(t, 2, s.Height())
	assert.Equal(t, "abcd\n    ", s.String())

	s.Resize(5, 3)
	assert.Equal(t, "abcd \n     \n     ", s.String())
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	assert.Equal(t, "   ", s.Row(-1))
	assert.Equal(t, "   ", s.Row(1))
}
