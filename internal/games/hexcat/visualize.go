package hexcat

import (
	"github.com/vovakirdan/hexcat/internal/hexgrid"
	"github.com/vovakirdan/hexcat/internal/pathfind"
)

// highlight marks how a tile is drawn after a visualization touched it.
type highlight uint8

const (
	highlightNone highlight = iota
	highlightExplored
	highlightPath
)

// visualization replays a search result: every visited tile in expansion
// order, then every path tile, one per step.
type visualization struct {
	result pathfind.Result
	step   int // Elements revealed so far
	ticks  int // Ticks since the last reveal
}

func (v *visualization) total() int {
	return len(v.result.Visited) + len(v.result.Path)
}

// startVisualization searches from the cat with the active strategy and
// begins replaying it. Earlier highlights are cleared.
func (g *Game) startVisualization() {
	g.paths.UpdatePath(g.cat)
	res, _ := g.paths.Result(g.cat)

	clear(g.highlight)
	g.viz = &visualization{result: res}
	if g.viz.total() == 0 {
		g.viz = nil
	}
}

// advanceVisualization reveals the next element every StepTicks ticks.
func (g *Game) advanceVisualization() {
	v := g.viz
	v.ticks++
	if v.ticks < g.cfg.Visualize.StepTicks {
		return
	}
	v.ticks = 0

	visited := v.result.Visited
	if v.step < len(visited) {
		g.mark(visited[v.step], highlightExplored)
	} else {
		g.mark(v.result.Path[v.step-len(visited)], highlightPath)
	}
	v.step++

	if v.step >= v.total() {
		g.viz = nil
	}
}

// mark sets the highlight of c.
func (g *Game) mark(c hexgrid.Coord, h highlight) {
	if g.grid.InBounds(c) {
		g.highlight[g.grid.Index(c)] = h
	}
}

// Visualizing reports whether a visualization is running.
func (g *Game) Visualizing() bool {
	return g.viz != nil
}

// highlightAt returns the highlight of c.
func (g *Game) highlightAt(c hexgrid.Coord) highlight {
	if !g.grid.InBounds(c) {
		return highlightNone
	}
	return g.highlight[g.grid.Index(c)]
}
