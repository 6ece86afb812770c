// Package hexgrid models a hexagonal board stored as a rectangular array.
// Rows are laid out with the "odd-row offset" convention: the six neighbor
// offsets of a tile depend on whether its row index is even or odd.
// The package has no external dependencies so game logic stays pure and testable.
package hexgrid

import "fmt"

// Coord identifies a tile by its row and column.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the coordinate shifted by the given offset.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// evenOffsets and oddOffsets are the neighbor tables for each row parity.
// Their order is fixed: searches expand neighbors in exactly this order.
var (
	evenOffsets = [6]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}}
	oddOffsets  = [6]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, 1}, {1, 1}}
)

// Offsets returns the neighbor offset table for the given row.
func Offsets(row int) [6]Coord {
	if row%2 == 0 {
		return evenOffsets
	}
	return oddOffsets
}

// InBounds reports whether c lies inside a rows x cols grid.
func InBounds(c Coord, rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// Neighbors returns the in-bounds neighbors of c in offset-table order.
func Neighbors(c Coord, rows, cols int) []Coord {
	return AppendNeighbors(make([]Coord, 0, 6), c, rows, cols)
}

// AppendNeighbors appends the in-bounds neighbors of c to dst and returns it.
func AppendNeighbors(dst []Coord, c Coord, rows, cols int) []Coord {
	for _, d := range Offsets(c.Row) {
		n := c.Add(d)
		if InBounds(n, rows, cols) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Adjacent reports whether b is one hex step away from a.
// Bounds are not checked.
func Adjacent(a, b Coord) bool {
	for _, d := range Offsets(a.Row) {
		if a.Add(d) == b {
			return true
		}
	}
	return false
}

// IsBorder reports whether c is on the outermost ring of the grid.
func IsBorder(c Coord, rows, cols int) bool {
	return c.Row == 0 || c.Row == rows-1 || c.Col == 0 || c.Col == cols-1
}

// BorderDistance returns the number of rows or columns between c and the
// nearest edge, ignoring obstacles. It never overestimates the hex-step
// distance to a border tile.
func BorderDistance(c Coord, rows, cols int) int {
	return min(c.Row, rows-1-c.Row, c.Col, cols-1-c.Col)
}
