package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Options configures a game model.
type Options struct {
	Game     config.FlappyConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil uses the default stdout renderer

	// ScreenshotDir is where ctrl+s writes captures; empty disables them.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one game of Flappy Dragon.
type Model struct {
	state         *flappy.State
	console       *Console
	cfg           core.RuntimeConfig
	field         config.Field
	keys          KeyMap
	help          help.Model
	renderer      *lipgloss.Renderer
	logger        *log.Logger
	screenshotDir string
	inputFrame    core.InputFrame
	lastTick      time.Time
	quitting      bool
}

// NewModel creates a new Bubble Tea model on the menu screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	return Model{
		state:         flappy.New(opts.Game, rng, logger),
		console:       NewConsole(opts.Game.Field.Width, opts.Game.Field.Height),
		cfg:           cfg,
		field:         opts.Game.Field,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		renderer:      renderer,
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
		inputFrame:    core.NewInputFrame(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.Action(msg, m.state.Mode()); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := tickInterval(m.cfg.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	// The game waits while the field does not fit
	if m.tooSmall() {
		m.inputFrame.Clear()
		return m, tickCmd(m.cfg.TickRate)
	}

	m.state.Tick(flappy.Frame{Elapsed: elapsed, Input: m.inputFrame}, m.console)
	m.inputFrame.Clear()

	if m.state.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.cfg.TickRate)
}

// tooSmall reports whether the terminal cannot show the whole field.
func (m Model) tooSmall() bool {
	return m.cfg.ScreenW < m.field.Width || m.cfg.ScreenH < m.field.Height
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return m.resizeNotice()
	}

	return RenderScreen(m.console.Compose(), m.renderer)
}

// resizeNotice asks for a larger terminal.
func (m Model) resizeNotice() string {
	msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
		m.field.Width, m.field.Height, m.cfg.ScreenW, m.cfg.ScreenH)
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.renderer.NewStyle().Bold(true).Render(msg),
		"",
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.cfg.ScreenW, m.cfg.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// State returns the running game.
func (m Model) State() *flappy.State {
	return m.state
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
