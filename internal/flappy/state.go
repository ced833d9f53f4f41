// Package flappy implements Flappy Dragon: a sprite falls under gravity,
// flaps upward on input and threads through one scrolling gap obstacle at a
// time. The game moves between a menu, play and a death screen.
package flappy

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Frame is the per-frame input handed to State.Tick by the loop driver.
type Frame struct {
	Elapsed time.Duration   // Time since the previous frame
	Input   core.InputFrame // At most one action observed this frame
}

// State owns every entity of a single game and its screen mode.
type State struct {
	cfg    config.FlappyConfig
	rng    Rand
	logger *log.Logger

	player    Player
	obstacle  Obstacle
	mode      Mode
	score     int
	frameTime time.Duration
	quitting  bool
}

// New creates a game on the menu screen.
// A nil logger discards log output.
func New(cfg config.FlappyConfig, rng Rand, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &State{
		cfg:      cfg,
		rng:      rng,
		logger:   logger,
		player:   NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Physics),
		obstacle: NewObstacle(cfg.Field.Width, 0, rng, cfg.Obstacles),
		mode:     ModeMenu,
	}
}

// Tick advances the game by one rendered frame and draws it.
func (s *State) Tick(f Frame, c Console) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(f, c)
	case ModePlaying:
		s.play(f, c)
	case ModeEnd:
		s.dead(f, c)
	default:
		panic(fmt.Sprintf("flappy: unknown mode %d", s.mode))
	}
}

// Restart begins a fresh game from the death screen.
func (s *State) Restart() {
	s.player = NewPlayer(s.cfg.Player.RestartX, s.cfg.Player.StartY, s.cfg.Physics)
	s.frameTime = 0
	s.obstacle = NewObstacle(s.cfg.Field.Width, 0, s.rng, s.cfg.Obstacles)
	s.score = 0
	s.setMode(ModePlaying)
}

// Mode returns the current screen.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the number of obstacles passed in the current game.
func (s *State) Score() int {
	return s.score
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacle returns a copy of the active obstacle.
func (s *State) Obstacle() Obstacle {
	return s.obstacle
}

// Quitting reports whether the player asked to leave.
func (s *State) Quitting() bool {
	return s.quitting
}

func (s *State) mainMenu(f Frame, c Console) {
	clearLayers(c)
	c.PrintCentered(5, "Welcome to Flappy Dragon")
	c.PrintCentered(8, "(P) Play Game")
	c.PrintCentered(9, "(Q) Quit Game")

	switch f.Input.Action() {
	case core.ActionPlay:
		s.setMode(ModePlaying)
	case core.ActionQuit:
		s.quit()
	}
}

func (s *State) play(f Frame, c Console) {
	c.ClsBg(core.ColorNavy)

	s.frameTime += f.Elapsed
	if s.frameTime >= s.cfg.Physics.FrameDuration() {
		s.frameTime = 0
		s.physicsTick()
	}

	if f.Input.Has(core.ActionFlap) {
		s.player.Flap()
	}

	col := s.cfg.Player.ScreenColumn()
	s.player.Render(c, col, s.cfg.Player.SpriteScale)
	s.obstacle.Render(c, s.player.X, col, s.cfg.Field.Height)

	c.Print(0, 0, "Press SPACE to flap")
	c.Print(0, 1, fmt.Sprintf("Score: %d", s.score))
}

// physicsTick moves the player, then scores and checks for death.
func (s *State) physicsTick() {
	s.player.GravityAndMove()

	if s.player.X > s.obstacle.X {
		s.score++
		s.obstacle = NewObstacle(s.player.X+s.cfg.Field.Width, s.score, s.rng, s.cfg.Obstacles)
		s.logger.Debug("obstacle passed", "score", s.score, "gap_y", s.obstacle.GapY, "gap_size", s.obstacle.GapSize)
	}

	if s.player.Y > s.cfg.Field.Height || s.obstacle.Hit(s.player) {
		s.setMode(ModeEnd)
	}
}

func (s *State) dead(f Frame, c Console) {
	clearLayers(c)
	c.PrintCentered(5, "You are dead!")
	c.PrintCentered(6, fmt.Sprintf("You earned %d points", s.score))
	c.PrintCentered(8, "(P) Play Again")
	c.PrintCentered(9, "(Q) Quit Game")

	switch f.Input.Action() {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		s.quit()
	}
}

func (s *State) setMode(m Mode) {
	if m == s.mode {
		return
	}
	s.logger.Debug("mode changed", "from", s.mode, "to", m, "score", s.score)
	s.mode = m
}

func (s *State) quit() {
	s.logger.Debug("quit requested", "mode", s.mode)
	s.quitting = true
}

// clearLayers wipes both layers so no sprite outlives the play screen.
func clearLayers(c Console) {
	c.SetActiveLayer(LayerSprites)
	c.Cls()
	c.SetActiveLayer(LayerBackground)
	c.Cls()
}
