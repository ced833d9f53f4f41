package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// spriteSheet maps sprite indices to glyphs. Indices follow code page 437.
var spriteSheet = map[int]rune{
	1:  '☺',
	2:  '☻',
	3:  '♥',
	64: '@',
}

// maxSpriteScale caps the block a sprite may cover.
const maxSpriteScale = 4

// Console is a two-layer cell console implementing flappy.Console.
type Console struct {
	layers   [2]*core.Screen
	active   flappy.Layer
	composed *core.Screen
}

// NewConsole creates a console of the given size.
func NewConsole(width, height int) *Console {
	return &Console{
		layers: [2]*core.Screen{
			core.NewScreen(width, height),
			core.NewScreen(width, height),
		},
		composed: core.NewScreen(width, height),
	}
}

// Width returns the console width in cells.
func (c *Console) Width() int {
	return c.composed.Width()
}

// Height returns the console height in cells.
func (c *Console) Height() int {
	return c.composed.Height()
}

// SetActiveLayer selects the layer subsequent draws go to.
func (c *Console) SetActiveLayer(l flappy.Layer) {
	if l < flappy.LayerBackground || l > flappy.LayerSprites {
		return
	}
	c.active = l
}

func (c *Console) screen() *core.Screen {
	return c.layers[c.active]
}

// Cls clears the active layer.
func (c *Console) Cls() {
	c.screen().Clear()
}

// ClsBg clears the active layer to a background colour.
func (c *Console) ClsBg(bg core.Color) {
	c.screen().Fill(core.Cell{Rune: ' ', Bg: bg})
}

// Print writes text at (x, y), keeping the background underneath.
func (c *Console) Print(x, y int, text string) {
	c.screen().DrawText(x, y, text)
}

// PrintCentered writes text centred on row y.
func (c *Console) PrintCentered(y int, text string) {
	c.screen().DrawTextCentered(y, text)
}

// Set draws a tinted glyph at (x, y).
func (c *Console) Set(x, y int, fg, bg core.Color, glyph rune) {
	c.screen().SetCell(x, y, core.Cell{Rune: glyph, Fg: fg, Bg: bg})
}

// SetSprite draws a sprite as a block of its glyph sized by the scale.
// Rotation is not representable in cells and is ignored.
func (c *Console) SetSprite(s flappy.Sprite) {
	glyph, ok := spriteSheet[s.Index]
	if !ok {
		glyph = '?'
	}

	x := int(math.Round(s.X))
	y := int(math.Round(s.Y))
	w := core.Clamp(int(math.Round(s.ScaleX)), 1, maxSpriteScale)
	h := core.Clamp(int(math.Round(s.ScaleY)), 1, maxSpriteScale)

	cell := core.Cell{Rune: glyph, Fg: s.Fg, Bg: s.Bg}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.screen().SetCell(x+dx, y+dy, cell)
		}
	}
}

// Compose flattens the sprite layer over the background.
// The returned screen is reused by the next call.
func (c *Console) Compose() *core.Screen {
	c.composed.Clear()
	c.composed.Overlay(c.layers[flappy.LayerBackground])
	c.composed.Overlay(c.layers[flappy.LayerSprites])
	return c.composed
}
