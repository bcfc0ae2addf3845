package breakout

// Snapshot contains the observable game state for replay and tests.
type Snapshot struct {
	Ticks     uint64
	State     string
	Score     int
	Best      int
	PaddleX   float64
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
	Remaining int
	Alive     []bool // row-major
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:     g.ticks,
		State:     g.session.State.String(),
		Score:     g.session.Score,
		Best:      g.session.Best,
		PaddleX:   g.paddleX,
		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		BallVX:    g.vel.X,
		BallVY:    g.vel.Y,
		Remaining: g.Remaining(),
		Alive:     make([]bool, len(g.bricks)),
	}
	for i, b := range g.bricks {
		s.Alive[i] = b.Alive
	}
	return s
}
