package flappy

// Snapshot contains the observable game state for replay and tests.
type Snapshot struct {
	Ticks     uint64
	State     string
	Score     int
	Best      int
	PlayerY   float64
	Velocity  float64
	SincePipe int64 // ms
	Pipes     []Pipe
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:     g.ticks,
		State:     g.session.State.String(),
		Score:     g.session.Score,
		Best:      g.session.Best,
		PlayerY:   g.playerY,
		Velocity:  g.velocity,
		SincePipe: g.sincePipe.Milliseconds(),
		Pipes:     g.Pipes(),
	}
}
