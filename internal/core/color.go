package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrightWhite
)

// Semantic aliases for tile highlighting.
const (
	ColorExplored = ColorCyan   // Tile expanded by a search
	ColorPath     = ColorYellow // Tile on the escape route
	ColorCat      = ColorMagenta
	ColorBlocked  = ColorRed
	ColorCursor   = ColorBrightWhite
)
