package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells (0 when not in a terminal)
	ScreenH  int   // Terminal height in cells
	TickRate int   // Frames per second requested from the host
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status a game reports to its frontend.
type GameState struct {
	Lifecycle Lifecycle
	Score     int
	Best      int
}

// Over reports whether the session reached a terminal state.
func (s GameState) Over() bool {
	return s.Lifecycle.Terminal()
}

// Sound names a sound effect. Frontends look it up as
// sounds/<name>.wav in the assets directory.
type Sound string

// StepResult is returned by Game.Update after each frame.
type StepResult struct {
	State GameState
	// Finished is true only on the Update that entered a terminal state.
	Finished bool
	// Sounds lists the effects triggered during this Update, in order.
	// Frontends that cannot play them ignore the list.
	Sounds []Sound
}

// Path returns where the effect lives under an assets directory.
func (s Sound) Path() string {
	return "sounds/" + string(s) + ".wav"
}
