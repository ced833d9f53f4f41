package core

// Color represents a foreground or background colour for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorNavy
)

// Cell is a single character cell with its colours.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// BlankCell is a space with default colours.
var BlankCell = Cell{Rune: ' '}

// IsBlank reports whether the cell carries nothing to draw.
// A space with a background colour is not blank.
func (c Cell) IsBlank() bool {
	return (c.Rune == ' ' || c.Rune == 0) && c.Bg == ColorDefault
}
