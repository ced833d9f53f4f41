package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstacleGlyph is the wall cell of an obstacle.
const ObstacleGlyph = '│'

// Rand is the random source used to place gaps. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a wall column with a single passable gap.
type Obstacle struct {
	X       int // World column
	GapY    int // Centre of the gap
	GapSize int
}

// NewObstacle places an obstacle at world column x.
// The gap centre is drawn uniformly from [GapMin, GapMax) and the gap
// narrows with score.
func NewObstacle(x, score int, rng Rand, cfg config.Obstacles) Obstacle {
	return Obstacle{
		X:       x,
		GapY:    cfg.GapMin + rng.Intn(cfg.GapRange()),
		GapSize: cfg.GapSize(score),
	}
}

// GapTop returns the first row of the gap band.
func (o Obstacle) GapTop() int {
	return o.GapY - o.GapSize/2
}

// GapBottom returns the last row of the gap band.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.GapSize/2
}

// Hit reports whether the player is in the obstacle's column and outside the gap.
// Only exact column equality counts.
func (o Obstacle) Hit(p Player) bool {
	if p.X != o.X {
		return false
	}
	return p.Y < o.GapTop() || p.Y > o.GapBottom()
}

// Render draws the walls relative to the player's scroll position.
// offset is the screen column the player is drawn at, so a hit lines up with the sprite.
func (o Obstacle) Render(c Console, playerX, offset, fieldHeight int) {
	screenX := o.X - playerX + offset

	for y := 0; y < o.GapTop(); y++ {
		c.Set(screenX, y, core.ColorGray, core.ColorBlack, ObstacleGlyph)
	}
	for y := o.GapBottom() + 1; y < fieldHeight; y++ {
		c.Set(screenX, y, core.ColorGray, core.ColorBlack, ObstacleGlyph)
	}
}
