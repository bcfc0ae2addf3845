package bomber

// Snapshot contains the observable game state for replay and tests.
type Snapshot struct {
	Ticks      uint64
	State      string
	Score      int
	Best       int
	PlayerX    int
	PlayerY    int
	Crates     int
	Tiles      []uint8 // row-major
	Bombs      []int   // x, y, fuse ms
	Explosions []int   // x, y, life ms
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:   g.ticks,
		State:   g.session.State.String(),
		Score:   g.session.Score,
		Best:    g.session.Best,
		PlayerX: g.playerX,
		PlayerY: g.playerY,
		Crates:  g.crates,
	}
	for _, row := range g.grid {
		for _, t := range row {
			s.Tiles = append(s.Tiles, uint8(t))
		}
	}
	for _, b := range g.bombs {
		s.Bombs = append(s.Bombs, b.X, b.Y, int(b.Fuse.Left().Milliseconds()))
	}
	for _, e := range g.explosions {
		s.Explosions = append(s.Explosions, e.X, e.Y, int(e.Life.Left().Milliseconds()))
	}
	return s
}
