package pathfind

import "github.com/vovakirdan/hexcat/internal/hexgrid"

// Result is the outcome of one search run.
type Result struct {
	// Visited lists tiles in the order the strategy expanded them.
	Visited []hexgrid.Coord
	// Path runs from the start tile to the first border tile reached,
	// both inclusive. Empty when no border tile is reachable.
	Path []hexgrid.Coord
}

// NodesExplored returns the number of expanded tiles.
func (r Result) NodesExplored() int {
	return len(r.Visited)
}

// PathLength returns the number of tiles on the path, start included.
func (r Result) PathLength() int {
	return len(r.Path)
}

// Steps returns the number of moves along the path.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Found reports whether an escape route exists.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// NextStep returns the tile right after the start.
// Reports false when there is no path or the start already is a border tile.
func (r Result) NextStep() (hexgrid.Coord, bool) {
	if len(r.Path) < 2 {
		return hexgrid.Coord{}, false
	}
	return r.Path[1], true
}
