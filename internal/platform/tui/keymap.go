package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memorize/internal/core"
)

// KeyMapper translates Bubble Tea key messages to actions.
// The same key can map differently depending on the active screen.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the given context.
func (km *KeyMapper) MapKey(ctx core.InputContext, msg tea.KeyMsg) core.Action {
	key := msg.String()

	if key == "ctrl+c" {
		return core.ActionQuit
	}

	switch ctx {
	case core.ContextMenu:
		switch key {
		case "q", "esc":
			return core.ActionQuit
		case "b":
			return core.ActionBack
		}
	case core.ContextSettings:
		switch key {
		case "q":
			return core.ActionQuit
		case "esc", "b":
			return core.ActionBack
		}
	case core.ContextGame:
		switch key {
		case "q":
			return core.ActionQuit
		case "esc", "b":
			// Ends the round; the player still gets to answer.
			return core.ActionBack
		}
		return core.ActionNone
	case core.ContextSummary:
		switch key {
		case "q":
			return core.ActionQuit
		case "esc", "b":
			return core.ActionBack
		case "r":
			return core.ActionRestart
		}
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp
	case "s", "down", "j":
		return core.ActionDown
	case "a", "left", "h", "-":
		return core.ActionLeft
	case "d", "right", "l", "+", "=":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	}

	return core.ActionNone
}

// MapKeyToFrame records the mapped action in frame and returns it.
func (km *KeyMapper) MapKeyToFrame(ctx core.InputContext, msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action := km.MapKey(ctx, msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action
}
