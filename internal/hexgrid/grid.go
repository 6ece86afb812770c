package hexgrid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions is returned when a grid is created with non-positive size.
var ErrInvalidDimensions = errors.New("hexgrid: dimensions must be positive")

// Tile is a single cell of the board.
// A tile is never Blocked and Occupied at the same time.
type Tile struct {
	Coord    Coord
	Blocked  bool // Impassable obstacle placed by the player or at setup
	Occupied bool // Holds the cat
	Changed  bool // Mutated since the last path cache refresh
}

// Grid is a fixed-size rows x cols collection of tiles in row-major order.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewGrid creates an empty grid. Dimensions are fixed for the grid's lifetime.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
	for i := range g.tiles {
		g.tiles[i].Coord = g.CoordOf(i)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of tiles.
func (g *Grid) Size() int {
	return len(g.tiles)
}

// Index returns the flat index of c. c must be in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// CoordOf is the inverse of Index.
func (g *Grid) CoordOf(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return InBounds(c, g.rows, g.cols)
}

// Tile returns the tile at c, or nil for out-of-bounds coordinates.
func (g *Grid) Tile(c Coord) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	return &g.tiles[g.Index(c)]
}

// IsBlocked reports whether the tile at c is blocked.
// Out-of-bounds coordinates count as blocked.
func (g *Grid) IsBlocked(c Coord) bool {
	t := g.Tile(c)
	return t == nil || t.Blocked
}

// IsOccupied reports whether the cat is on c.
func (g *Grid) IsOccupied(c Coord) bool {
	t := g.Tile(c)
	return t != nil && t.Occupied
}

// IsChanged reports whether c was mutated since the last ClearChanged.
func (g *Grid) IsChanged(c Coord) bool {
	t := g.Tile(c)
	return t != nil && t.Changed
}

// SetBlocked sets or clears the blocked flag on c.
// Blocking an occupied tile clears its occupied flag.
func (g *Grid) SetBlocked(c Coord, blocked bool) {
	t := g.Tile(c)
	if t == nil || t.Blocked == blocked {
		return
	}
	t.Blocked = blocked
	if blocked {
		t.Occupied = false
	}
	t.Changed = true
}

// SetOccupied sets or clears the occupied flag on c.
// Occupying a blocked tile clears its blocked flag.
func (g *Grid) SetOccupied(c Coord, occupied bool) {
	t := g.Tile(c)
	if t == nil || t.Occupied == occupied {
		return
	}
	t.Occupied = occupied
	if occupied {
		t.Blocked = false
	}
	t.Changed = true
}

// ClearChanged resets the change flag on every tile.
func (g *Grid) ClearChanged() {
	for i := range g.tiles {
		g.tiles[i].Changed = false
	}
}

// Reset clears all flags, returning the grid to its freshly created state.
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.tiles[i] = Tile{Coord: g.tiles[i].Coord}
	}
}

// Neighbors returns the in-bounds neighbors of c.
func (g *Grid) Neighbors(c Coord) []Coord {
	return Neighbors(c, g.rows, g.cols)
}

// IsBorder reports whether c is a border tile of this grid.
func (g *Grid) IsBorder(c Coord) bool {
	return IsBorder(c, g.rows, g.cols)
}

// BlockedCount returns the number of blocked tiles.
func (g *Grid) BlockedCount() int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Blocked {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		tiles: make([]Tile, len(g.tiles)),
	}
	copy(c.tiles, g.tiles)
	return c
}

// String renders the grid as text: '#' blocked, 'C' cat, '.' free.
// Odd rows are indented by one space to show the hex offset.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		if r%2 == 1 {
			sb.WriteByte(' ')
		}
		for c := range g.cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			t := g.tiles[r*g.cols+c]
			switch {
			case t.Occupied:
				sb.WriteByte('C')
			case t.Blocked:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
