package tui

import (
	"time"

	"github.com/anago-arcade/anago/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A
// held key is taken as released once no repeat arrived within the hold
// window. Before the first repeat the window covers the OS repeat delay.
const (
	firstRepeatWindow = 550 * time.Millisecond
	repeatWindow      = 120 * time.Millisecond
)

type holdState struct {
	last    time.Time
	repeats int
}

// HoldTracker emulates key-up events for directional intents.
type HoldTracker struct {
	held map[core.Intent]*holdState
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{held: make(map[core.Intent]*holdState)}
}

// Press records a press of i at now. It returns releases to emit first:
// pressing a direction releases its opposite.
func (h *HoldTracker) Press(i core.Intent, now time.Time) []core.Intent {
	if !i.Directional() {
		return nil
	}
	var released []core.Intent
	if opp := i.Opposite(); h.held[opp] != nil {
		delete(h.held, opp)
		released = append(released, opp)
	}
	if st := h.held[i]; st != nil {
		st.last = now
		st.repeats++
		return released
	}
	h.held[i] = &holdState{last: now}
	return released
}

// Expire returns the intents whose hold window ran out by now.
func (h *HoldTracker) Expire(now time.Time) []core.Intent {
	var released []core.Intent
	for _, i := range []core.Intent{core.IntentUp, core.IntentDown, core.IntentLeft, core.IntentRight} {
		st := h.held[i]
		if st == nil {
			continue
		}
		window := repeatWindow
		if st.repeats == 0 {
			window = firstRepeatWindow
		}
		if now.Sub(st.last) > window {
			delete(h.held, i)
			released = append(released, i)
		}
	}
	return released
}

// Held reports whether i is currently considered down.
func (h *HoldTracker) Held(i core.Intent) bool {
	return h.held[i] != nil
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.held)
}
