// Package pathfind finds escape routes from a start tile to the border of a
// hex grid. Three strategies share one contract: breadth-first search,
// depth-first search and A* with a border-distance heuristic. PathState caches
// computed routes between board mutations.
package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/hexcat/internal/hexgrid"
)

// ErrUnknownKind is returned by ParseKind for unrecognized strategy names.
var ErrUnknownKind = errors.New("pathfind: unknown strategy")

// Kind selects a search strategy. The set is closed.
type Kind int

const (
	BreadthFirst Kind = iota
	DepthFirst
	AStar
)

// Kinds returns every strategy in display order.
func Kinds() []Kind {
	return []Kind{BreadthFirst, DepthFirst, AStar}
}

// String returns the identifier used in configs, flags and storage.
func (k Kind) String() string {
	switch k {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case AStar:
		return "astar"
	default:
		return "unknown"
	}
}

// Title returns the short display name.
func (k Kind) Title() string {
	switch k {
	case BreadthFirst:
		return "BFS"
	case DepthFirst:
		return "DFS"
	case AStar:
		return "A*"
	default:
		return "?"
	}
}

// Next returns the following strategy, wrapping around.
func (k Kind) Next() Kind {
	return Kind((int(k) + 1) % len(Kinds()))
}

// ParseKind converts a name ("bfs", "dfs", "astar", "a*") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "dfs", "depth-first", "depthfirst":
		return DepthFirst, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Board is the read-only view of the grid that searches run against.
type Board interface {
	Rows() int
	Cols() int
	IsBlocked(c hexgrid.Coord) bool
}

// FindPath runs the strategy k from start and returns its result.
// An out-of-bounds start yields an empty result.
func FindPath(k Kind, b Board, start hexgrid.Coord) Result {
	if !hexgrid.InBounds(start, b.Rows(), b.Cols()) {
		return Result{}
	}

	switch k {
	case DepthFirst:
		return depthFirst(b, start)
	case AStar:
		return aStar(b, start)
	default:
		return breadthFirst(b, start)
	}
}

// search holds the index-based bookkeeping shared by all strategies.
// Tiles are identified by row*cols+col.
type search struct {
	board   Board
	rows    int
	cols    int
	parent  []int
	visited []int // expansion order
	nbuf    []hexgrid.Coord
}

func newSearch(b Board) *search {
	rows, cols := b.Rows(), b.Cols()
	s := &search{
		board:  b,
		rows:   rows,
		cols:   cols,
		parent: make([]int, rows*cols),
		nbuf:   make([]hexgrid.Coord, 0, 6),
	}
	for i := range s.parent {
		s.parent[i] = -1
	}
	return s
}

func (s *search) index(c hexgrid.Coord) int {
	return c.Row*s.cols + c.Col
}

func (s *search) coord(i int) hexgrid.Coord {
	return hexgrid.Coord{Row: i / s.cols, Col: i % s.cols}
}

func (s *search) isBorder(i int) bool {
	return hexgrid.IsBorder(s.coord(i), s.rows, s.cols)
}

// open returns the unblocked neighbors of tile i in offset-table order.
// The returned slice is reused by the next call.
func (s *search) open(i int) []hexgrid.Coord {
	all := hexgrid.AppendNeighbors(s.nbuf[:0], s.coord(i), s.rows, s.cols)
	s.nbuf = all[:0]
	for _, n := range all {
		if !s.board.IsBlocked(n) {
			s.nbuf = append(s.nbuf, n)
		}
	}
	return s.nbuf
}

// result converts the bookkeeping into a Result ending at end (-1 for none).
func (s *search) result(end int) Result {
	visited := make([]hexgrid.Coord, len(s.visited))
	for i, v := range s.visited {
		visited[i] = s.coord(v)
	}

	idx := reconstructPath(end, s.parent)
	path := make([]hexgrid.Coord, len(idx))
	for i, v := range idx {
		path[i] = s.coord(v)
	}
	return Result{Visited: visited, Path: path}
}

// reconstructPath follows parent links back from end until a tile without a
// parent, then reverses the collected indices. end == -1 yields an empty path.
func reconstructPath(end int, parent []int) []int {
	var path []int
	for cur := end; cur >= 0 && len(path) <= len(parent); cur = parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
