package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/anago-arcade/anago/internal/core"
)

// intentKeys maps keyboard keys to game intents. Several keys may share
// an intent.
var intentKeys = map[ebiten.Key]core.Intent{
	ebiten.KeyArrowUp:    core.IntentUp,
	ebiten.KeyW:          core.IntentUp,
	ebiten.KeyArrowDown:  core.IntentDown,
	ebiten.KeyS:          core.IntentDown,
	ebiten.KeyArrowLeft:  core.IntentLeft,
	ebiten.KeyA:          core.IntentLeft,
	ebiten.KeyArrowRight: core.IntentRight,
	ebiten.KeyD:          core.IntentRight,
	ebiten.KeySpace:      core.IntentPrimary,
	ebiten.KeyEnter:      core.IntentPrimary,
	ebiten.KeyR:          core.IntentRestart,
}

// IntentFor returns the intent bound to k.
func IntentFor(k ebiten.Key) core.Intent {
	return intentKeys[k]
}

// keyEvents converts this tick's key edges into input events, releases
// first so a same-tick release and press of one direction ends pressed.
func keyEvents(pressed, released []ebiten.Key) []core.InputEvent {
	var events []core.InputEvent
	for _, k := range released {
		if i := IntentFor(k); i != core.IntentNone {
			events = append(events, core.InputEvent{Kind: core.KeyRelease, Intent: i})
		}
	}
	for _, k := range pressed {
		if i := IntentFor(k); i != core.IntentNone {
			events = append(events, core.InputEvent{Kind: core.KeyPress, Intent: i})
		}
	}
	return events
}
