package snake

// Snapshot contains the observable game state for replay and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Steps     uint64
	State     string
	Score     int
	Best      int
	Heading   string
	HeadX     int
	HeadY     int
	Length    int
	FoodX     int
	FoodY     int
	BodyCells []int // flattened x,y pairs, head first
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Steps:   g.steps,
		State:   g.session.State.String(),
		Score:   g.session.Score,
		Best:    g.session.Best,
		Heading: g.heading.String(),
		Length:  len(g.snake),
		FoodX:   g.food.X,
		FoodY:   g.food.Y,
	}
	if len(g.snake) > 0 {
		s.HeadX, s.HeadY = g.snake[0].X, g.snake[0].Y
	}
	s.BodyCells = make([]int, 0, 2*len(g.snake))
	for _, p := range g.snake {
		s.BodyCells = append(s.BodyCells, p.X, p.Y)
	}
	return s
}
