package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionPlay        // P - start a game from the menu, play again after death
	ActionQuit        // Q - leave the program from the menu or death screen
	ActionFlap        // Space - upward impulse while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	case ActionFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}

// InputFrame holds the input observed during one rendered frame.
// At most one action is kept; a later key in the same frame replaces an
// earlier one.
type InputFrame struct {
	action Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	f.action = a
}

// Action returns the recorded action, or ActionNone.
func (f InputFrame) Action() Action {
	return f.action
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.action == a
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.action = ActionNone
}
