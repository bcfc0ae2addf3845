package invaders

// Snapshot contains the observable game state for replay and tests.
type Snapshot struct {
	Ticks         uint64
	State         string
	Score         int
	Best          int
	PlayerX       float64
	EnemiesAlive  int
	EnemyDir      float64
	Enemies       []float64 // x, y of live invaders
	BossActive    bool
	BossX         float64
	BossHP        int
	PlayerBullets []Bullet
	EnemyBullets  []Bullet
	BossBullets   []Bullet
	PowerUps      []PowerUp
	EffectsMs     [4]int64
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:         g.ticks,
		State:         g.session.State.String(),
		Score:         g.session.Score,
		Best:          g.session.Best,
		PlayerX:       g.playerX,
		EnemyDir:      g.enemyDir,
		BossActive:    g.boss.Active,
		BossX:         g.boss.X,
		BossHP:        g.boss.HP,
		PlayerBullets: append([]Bullet(nil), g.playerBullets...),
		EnemyBullets:  append([]Bullet(nil), g.enemyBullets...),
		BossBullets:   append([]Bullet(nil), g.bossBullets...),
		PowerUps:      append([]PowerUp(nil), g.powerUps...),
	}
	for _, e := range g.enemies {
		if e.Alive {
			s.EnemiesAlive++
			s.Enemies = append(s.Enemies, e.X, e.Y)
		}
	}
	for i := range g.effects {
		s.EffectsMs[i] = g.effects[i].Left().Milliseconds()
	}
	return s
}
