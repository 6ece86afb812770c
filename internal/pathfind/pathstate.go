package pathfind

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hexcat/internal/hexgrid"
)

// TrackedBoard is a Board that records which tiles were mutated since the
// last refresh. *hexgrid.Grid implements it.
type TrackedBoard interface {
	Board
	IsChanged(c hexgrid.Coord) bool
	ClearChanged()
}

// Policy decides when a cached path has to be recomputed.
type Policy int

const (
	// InvalidateRoute recomputes when a neighbor of the start or any tile on
	// the cached path changed.
	InvalidateRoute Policy = iota
	// InvalidateNeighbors recomputes only when a neighbor of the start
	// changed. Cheaper, but misses obstacles placed further along the route.
	InvalidateNeighbors
)

// String returns the identifier used in configs.
func (p Policy) String() string {
	switch p {
	case InvalidateRoute:
		return "route"
	case InvalidateNeighbors:
		return "neighbors"
	default:
		return "unknown"
	}
}

// ParsePolicy converts "route" or "neighbors" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "route", "path", "":
		return InvalidateRoute, nil
	case "neighbors", "neighbours":
		return InvalidateNeighbors, nil
	}
	return 0, fmt.Errorf("pathfind: unknown invalidation policy %q", s)
}

// Stats reports cache activity.
type Stats struct {
	Hits       int // UpdatePath calls served from the cache
	Misses     int // UpdatePath calls with no entry for the start
	Recomputes int // Searches run, including those caused by invalidation
	Entries    int // Cached paths for the active strategy
}

// Option configures a PathState.
type Option func(*PathState)

// WithStrategy sets the initially active strategy.
func WithStrategy(k Kind) Option {
	return func(ps *PathState) {
		ps.active = k
	}
}

// WithInvalidation sets the cache invalidation policy.
func WithInvalidation(p Policy) Option {
	return func(ps *PathState) {
		ps.policy = p
	}
}

// PathState memoizes search results per (strategy, start tile) across board
// mutations. Grid topology never changes, so neighbor lists are computed once.
// It is not safe for concurrent use.
type PathState struct {
	board     TrackedBoard
	rows      int
	cols      int
	active    Kind
	policy    Policy
	neighbors [][]hexgrid.Coord
	cache     map[Kind]map[hexgrid.Coord]Result
	stats     Stats
}

// NewPathState creates a cache over board. The active strategy defaults to
// BreadthFirst and the policy to InvalidateRoute.
func NewPathState(board TrackedBoard, opts ...Option) *PathState {
	ps := &PathState{
		board:  board,
		rows:   board.Rows(),
		cols:   board.Cols(),
		active: BreadthFirst,
		policy: InvalidateRoute,
		cache:  make(map[Kind]map[hexgrid.Coord]Result),
	}
	for _, opt := range opts {
		opt(ps)
	}
	ps.computeNeighbors()
	return ps
}

// computeNeighbors fills the neighbor cache for every tile.
func (ps *PathState) computeNeighbors() {
	ps.neighbors = make([][]hexgrid.Coord, ps.rows*ps.cols)
	for r := range ps.rows {
		for c := range ps.cols {
			ps.neighbors[r*ps.cols+c] = hexgrid.Neighbors(hexgrid.C(r, c), ps.rows, ps.cols)
		}
	}
}

// Strategy returns the active strategy.
func (ps *PathState) Strategy() Kind {
	return ps.active
}

// Policy returns the invalidation policy.
func (ps *PathState) Policy() Policy {
	return ps.policy
}

// SetStrategy switches the active strategy and drops every cached path,
// since paths computed by another strategy are not interchangeable.
func (ps *PathState) SetStrategy(k Kind) {
	ps.active = k
	ps.Clear()
}

// Clear drops every cached path.
func (ps *PathState) Clear() {
	clear(ps.cache)
}

// GetNeighbors returns the cached neighbor list of c.
// Unknown coordinates yield an empty list.
func (ps *PathState) GetNeighbors(c hexgrid.Coord) []hexgrid.Coord {
	if !hexgrid.InBounds(c, ps.rows, ps.cols) {
		return nil
	}
	return ps.neighbors[c.Row*ps.cols+c.Col]
}

// UpdatePath computes the path from start with the active strategy unless a
// cached one is still valid. Returns true if a search ran.
func (ps *PathState) UpdatePath(start hexgrid.Coord) bool {
	if !hexgrid.InBounds(start, ps.rows, ps.cols) {
		return false
	}

	entries := ps.cache[ps.active]
	if entries == nil {
		entries = make(map[hexgrid.Coord]Result)
		ps.cache[ps.active] = entries
	}

	cached, ok := entries[start]
	switch {
	case !ok:
		ps.stats.Misses++
	case ps.stale(start, cached):
	default:
		ps.stats.Hits++
		return false
	}

	entries[start] = FindPath(ps.active, ps.board, start)
	ps.stats.Recomputes++
	return true
}

// GetPath returns the cached path from start for the active strategy, or an
// empty path if none is cached. It never runs a search.
func (ps *PathState) GetPath(start hexgrid.Coord) []hexgrid.Coord {
	path, _ := ps.Lookup(start)
	return path
}

// Lookup is GetPath that also reports whether a path was cached, telling
// "not computed" apart from "computed, no escape".
func (ps *PathState) Lookup(start hexgrid.Coord) ([]hexgrid.Coord, bool) {
	res, ok := ps.Result(start)
	if !ok {
		return []hexgrid.Coord{}, false
	}
	return res.Path, true
}

// Result returns the full cached result for start, visited order included.
func (ps *PathState) Result(start hexgrid.Coord) (Result, bool) {
	res, ok := ps.cache[ps.active][start]
	return res, ok
}

// Refresh evicts every entry the policy considers stale, then clears the
// board's change flags. Call it when the caller recolors the board.
func (ps *PathState) Refresh() {
	for _, entries := range ps.cache {
		for start, res := range entries {
			if ps.stale(start, res) {
				delete(entries, start)
			}
		}
	}
	ps.board.ClearChanged()
}

// Stats returns cache counters.
func (ps *PathState) Stats() Stats {
	s := ps.stats
	s.Entries = len(ps.cache[ps.active])
	return s
}

// stale reports whether res, cached for start, may no longer be accurate.
func (ps *PathState) stale(start hexgrid.Coord, res Result) bool {
	for _, n := range ps.GetNeighbors(start) {
		if ps.board.IsChanged(n) {
			return true
		}
	}
	if ps.policy == InvalidateNeighbors {
		return false
	}
	for _, c := range res.Path {
		if ps.board.IsChanged(c) {
			return true
		}
	}
	return false
}
