package core

// Intent is a semantic game action, abstracted from physical keys and
// pointer gestures. Frontends translate device events into intents.
type Intent int

const (
	IntentNone    Intent = iota
	IntentUp             // W, Up arrow
	IntentDown           // S, Down arrow
	IntentLeft           // A, Left arrow
	IntentRight          // D, Right arrow
	IntentPrimary        // Space, Enter: flap, shoot, place bomb, start/restart
	IntentRestart        // R: restart from a terminal state
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentPrimary:
		return "Primary"
	case IntentRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Directional reports whether the intent is one of the four directions.
func (i Intent) Directional() bool {
	return i >= IntentUp && i <= IntentRight
}

// Opposite returns the reverse direction, or IntentNone for non-directions.
func (i Intent) Opposite() Intent {
	switch i {
	case IntentUp:
		return IntentDown
	case IntentDown:
		return IntentUp
	case IntentLeft:
		return IntentRight
	case IntentRight:
		return IntentLeft
	default:
		return IntentNone
	}
}

// EventKind distinguishes the device events a game can receive.
type EventKind int

const (
	KeyPress EventKind = iota
	KeyRelease
	PointerDown
	PointerMove
	PointerUp
)

// InputEvent is one device event translated into game terms.
// Pointer coordinates are in the game's logical pixel space.
type InputEvent struct {
	Kind   EventKind
	Intent Intent
	X, Y   float64
	Held   bool // pointer button is down during a PointerMove
}

// IsPointer reports whether the event came from a pointer device.
func (e InputEvent) IsPointer() bool {
	return e.Kind == PointerDown || e.Kind == PointerMove || e.Kind == PointerUp
}

// InputFrame is the ordered list of events collected since the previous
// Update. Games apply it at the start of Update.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a key press for the given intent.
func (f *InputFrame) Set(i Intent) {
	f.Events = append(f.Events, InputEvent{Kind: KeyPress, Intent: i})
}

// Release records a key release for the given intent.
func (f *InputFrame) Release(i Intent) {
	f.Events = append(f.Events, InputEvent{Kind: KeyRelease, Intent: i})
}

// Add appends a raw event.
func (f *InputFrame) Add(ev InputEvent) {
	f.Events = append(f.Events, ev)
}

// Has returns true if a key press for the intent is in this frame.
func (f InputFrame) Has(i Intent) bool {
	for _, ev := range f.Events {
		if ev.Kind == KeyPress && ev.Intent == i {
			return true
		}
	}
	return false
}

// Empty reports whether the frame carries no events.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear drops all events, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if len(f.Events) == 0 {
		return InputFrame{}
	}
	events := make([]InputEvent, len(f.Events))
	copy(events, f.Events)
	return InputFrame{Events: events}
}
