package core

// Action represents a semantic input action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k
	ActionDown           // S, Down arrow, j
	ActionLeft           // A, Left arrow, h, '-'
	ActionRight          // D, Right arrow, l, '+'
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputContext tells the key mapper which screen is receiving input.
// The same key can mean different things per context: Escape leaves the
// application from the main menu but only ends the round during a game.
type InputContext int

const (
	ContextMenu InputContext = iota
	ContextSettings
	ContextGame
	ContextSummary
)

// String returns a human-readable name for the context.
func (c InputContext) String() string {
	switch c {
	case ContextMenu:
		return "menu"
	case ContextSettings:
		return "settings"
	case ContextGame:
		return "game"
	case ContextSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
