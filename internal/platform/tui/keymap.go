package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anago-arcade/anago/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameKey is what a key means while a game is running.
type GameKey int

const (
	GameKeyNone GameKey = iota
	GameKeyIntent
	GameKeyBack
	GameKeyQuit
	GameKeyScreenshot
)

// MapKey translates a key message for a running game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (GameKey, core.Intent) {
	switch msg.String() {
	case "ctrl+c":
		return GameKeyQuit, core.IntentNone
	case "esc", "q":
		return GameKeyBack, core.IntentNone
	case "ctrl+s":
		return GameKeyScreenshot, core.IntentNone
	case "w", "up", "k":
		return GameKeyIntent, core.IntentUp
	case "s", "down", "j":
		return GameKeyIntent, core.IntentDown
	case "a", "left", "h":
		return GameKeyIntent, core.IntentLeft
	case "d", "right", "l":
		return GameKeyIntent, core.IntentRight
	case " ", "enter":
		return GameKeyIntent, core.IntentPrimary
	case "r":
		return GameKeyIntent, core.IntentRestart
	}
	return GameKeyNone, core.IntentNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionMeme
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "m":
		return MenuActionMeme
	}

	return MenuActionNone
}
