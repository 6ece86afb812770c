package hexcat

import (
	"fmt"

	"github.com/vovakirdan/hexcat/internal/core"
	"github.com/vovakirdan/hexcat/internal/hexgrid"
)

const (
	cellWidth = 2 // Glyph plus separator
	hudHeight = 3
)

// Tile glyphs.
const (
	glyphCat      = '@'
	glyphBlocked  = '#'
	glyphFree     = '.'
	glyphExplored = 'o'
	glyphPath     = '*'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Odd rows are indented by one column
	boardW := g.grid.Cols()*cellWidth + 1
	boardH := g.grid.Rows()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, search counters and mode line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	res := g.last
	if g.viz != nil {
		res = g.viz.result
	}
	hud := fmt.Sprintf("Nodes: %d | Path: %d | Moves: %d | %s",
		res.NodesExplored(), res.PathLength(), g.moves, g.paths.Strategy().Title())
	dst.DrawTextCentered(1, hud)

	auto := "off"
	if g.autoVisualize {
		auto = "on"
	}
	status := fmt.Sprintf("Auto visualize: %s", auto)
	if g.viz != nil {
		status = fmt.Sprintf("Visualizing %d/%d", g.viz.step, g.viz.total())
	}
	x := max(boardX+(boardW-len(status))/2, 0)
	dst.DrawTextColored(x, 2, status, core.ColorGray)
}

// renderBoard draws the offset hex rows.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for r := range g.grid.Rows() {
		for c := range g.grid.Cols() {
			coord := hexgrid.C(r, c)
			x, y := g.cellPos(boardX, boardY, coord)
			glyph, color := g.tileGlyph(coord)
			dst.SetColored(x, y, glyph, color)
		}
	}

	if !g.over() {
		x, y := g.cellPos(boardX, boardY, g.cursor)
		dst.SetColored(x-1, y, '[', core.ColorCursor)
		dst.SetColored(x+1, y, ']', core.ColorCursor)
	}
}

// cellPos returns the screen position of a tile's glyph.
func (g *Game) cellPos(boardX, boardY int, c hexgrid.Coord) (int, int) {
	return boardX + 1 + c.Col*cellWidth + c.Row%2, boardY + c.Row
}

// tileGlyph picks the glyph and color of a tile.
func (g *Game) tileGlyph(c hexgrid.Coord) (rune, core.Color) {
	switch {
	case c == g.cat:
		return glyphCat, core.ColorCat
	case g.grid.IsBlocked(c):
		return glyphBlocked, core.ColorBlocked
	}

	switch g.highlightAt(c) {
	case highlightPath:
		return glyphPath, core.ColorPath
	case highlightExplored:
		return glyphExplored, core.ColorExplored
	}
	return glyphFree, core.ColorDefault
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.viz != nil:
		// Keep the board visible while replaying
	case g.won:
		g.drawOverlay(dst, centerX, centerY,
			"CAT TRAPPED!",
			fmt.Sprintf("%d moves, score %d", g.moves, g.score),
			"Press R to restart")
	case g.escaped:
		g.drawOverlay(dst, centerX, centerY,
			"THE CAT ESCAPED",
			fmt.Sprintf("after %d moves", g.moves),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.Centered(centerX, centerY, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Block | Tab: Strategy | V: Visualize | T: Auto | P: Pause | R: Restart | Q: Quit"
}
