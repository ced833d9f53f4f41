package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Play       key.Binding
	Quit       key.Binding
	Flap       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Flap, k.Quit, k.ForceQuit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Flap, k.Quit},
		{k.ForceQuit, k.Screenshot},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key to the game action it means on the given screen.
// Play and Quit only exist on the menu and death screens, Flap only while playing.
func (k KeyMap) Action(msg tea.KeyMsg, mode flappy.Mode) core.Action {
	switch mode {
	case flappy.ModeMenu, flappy.ModeEnd:
		switch {
		case key.Matches(msg, k.Play):
			return core.ActionPlay
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		}
	case flappy.ModePlaying:
		if key.Matches(msg, k.Flap) {
			return core.ActionFlap
		}
	}
	return core.ActionNone
}
