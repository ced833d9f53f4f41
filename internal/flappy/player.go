package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// animationFrames are sprite sheet indices cycled once per physics tick.
var animationFrames = [...]int{64, 1, 2, 3, 2, 1}

// Player is the flapping sprite.
type Player struct {
	X        int     // Scroll distance travelled
	Y        int     // Vertical cell, 0 is the top of the field
	Velocity float64 // Cells per tick, negative is up
	Frame    int     // Index into animationFrames

	physics config.Physics
}

// NewPlayer creates a player at rest.
func NewPlayer(x, y int, physics config.Physics) Player {
	return Player{X: x, Y: y, physics: physics}
}

// GravityAndMove runs one physics tick.
func (p *Player) GravityAndMove() {
	if p.Velocity < p.physics.TerminalVelocity {
		p.Velocity += p.physics.Gravity
	}

	p.X++
	p.Y += int(p.Velocity)
	if p.Y < 0 {
		p.Y = 0
	}

	p.Frame = (p.Frame + 1) % len(animationFrames)
}

// Flap replaces the current velocity with the flap impulse.
func (p *Player) Flap() {
	p.Velocity = p.physics.FlapImpulse
}

// SpriteIndex returns the sprite sheet index of the current animation frame.
func (p Player) SpriteIndex() int {
	return animationFrames[p.Frame]
}

// Render draws the player on the sprite layer at screen column screenX.
func (p Player) Render(c Console, screenX int, scale float64) {
	c.SetActiveLayer(LayerSprites)
	c.Cls()
	c.SetSprite(Sprite{
		X:      float64(screenX),
		Y:      float64(p.Y),
		ScaleX: scale,
		ScaleY: scale,
		Fg:     core.ColorWhite,
		Bg:     core.ColorNavy,
		Index:  p.SpriteIndex(),
	})
	c.SetActiveLayer(LayerBackground)
}
