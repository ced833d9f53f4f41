package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Layer selects the drawing surface a Console writes to.
type Layer int

const (
	// LayerBackground holds the field, obstacles and text.
	LayerBackground Layer = iota
	// LayerSprites is drawn over the background and holds the player.
	LayerSprites
)

// Sprite is a transformed glyph drawn on the sprite layer.
type Sprite struct {
	X, Y           float64 // Cell position of the top-left corner
	Rotation       float64 // Degrees, cell backends only honour 0
	ScaleX, ScaleY float64
	Fg, Bg         core.Color
	Index          int // Index into the backend's sprite sheet
}

// Console is the render backend the game draws through.
// All coordinates are cells in the active layer; out-of-range draws are clipped.
type Console interface {
	SetActiveLayer(l Layer)
	Cls()
	ClsBg(bg core.Color)
	Print(x, y int, text string)
	PrintCentered(y int, text string)
	Set(x, y int, fg, bg core.Color, glyph rune)
	SetSprite(s Sprite)
}
