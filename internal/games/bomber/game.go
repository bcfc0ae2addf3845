// Package bomber implements Dog Bomber, a single-player grid game where the
// dog clears every crate with timed bombs without getting caught in a blast.
package bomber

import (
	"math"
	"math/rand"
	"time"

	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
)

// Tile is the content of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileSolid
	TileCrate
)

// Bomb is a placed bomb waiting for its fuse.
type Bomb struct {
	X, Y  int
	Fuse  core.Countdown
	fresh bool // placed during the current Update
}

// Explosion is one burning tile.
type Explosion struct {
	X, Y int
	Life core.Countdown
}

// Game implements Dog Bomber.
type Game struct {
	cfg      config.BomberConfig
	fixedCfg bool
	rng      *rand.Rand
	session  core.Session

	grid    [][]Tile
	crates  int
	playerX int
	playerY int

	bombs      []Bomb
	explosions []Explosion
	ticks      uint64
}

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file used by games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultBomberConfig()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.BomberConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register("bomber", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "bomber" }

// Title returns the display name.
func (g *Game) Title() string { return "Dog Bomber" }

// Subtitle returns the games index blurb.
func (g *Game) Subtitle() string { return "Place bombs · Clear the grid" }

// Size returns the logical surface size.
func (g *Game) Size() (int, int) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

func (g *Game) loadConfig() {
	if g.fixedCfg {
		return
	}
	cfg, err := config.LoadBomber(configPath)
	if err != nil {
		cfg = config.DefaultBomberConfig()
	}
	if p, err := config.ParseDifficulty(difficultyPreset); err == nil {
		config.ApplyBomberPreset(&cfg, p)
	}
	g.cfg = cfg
}

// Reset mounts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = core.Session{}
	g.restart()
}

func (g *Game) restart() {
	g.bombs = nil
	g.explosions = nil
	g.ticks = 0
	g.buildGrid()
}

// buildGrid lays out walls, pillars and random crates, keeping a safe zone
// around the start tile.
func (g *Game) buildGrid() {
	cols, rows := g.cfg.Grid.Cols, g.cfg.Grid.Rows
	g.grid = make([][]Tile, rows)
	g.crates = 0
	for y := 0; y < rows; y++ {
		g.grid[y] = make([]Tile, cols)
		for x := 0; x < cols; x++ {
			switch {
			case x == 0 || y == 0 || x == cols-1 || y == rows-1:
				g.grid[y][x] = TileSolid
			case x%2 == 0 && y%2 == 0:
				g.grid[y][x] = TileSolid
			case core.Abs(x-1)+core.Abs(y-1) <= g.cfg.Crates.SafeRadius:
				g.grid[y][x] = TileEmpty
			case g.rng.Float64() < g.cfg.Crates.Chance:
				g.grid[y][x] = TileCrate
				g.crates++
			}
		}
	}
	g.playerX, g.playerY = 1, 1
}

func (g *Game) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cfg.Grid.Cols && y < g.cfg.Grid.Rows
}

func (g *Game) bombAt(x, y int) int {
	for i, b := range g.bombs {
		if b.X == x && b.Y == y {
			return i
		}
	}
	return -1
}

func (g *Game) walkable(x, y int) bool {
	if !g.inBounds(x, y) || g.grid[y][x] != TileEmpty {
		return false
	}
	return g.bombAt(x, y) < 0
}

func (g *Game) move(d core.Intent) {
	if g.session.State.Terminal() {
		return
	}
	g.session.Start()
	nx, ny := g.playerX, g.playerY
	switch d {
	case core.IntentUp:
		ny--
	case core.IntentDown:
		ny++
	case core.IntentLeft:
		nx--
	case core.IntentRight:
		nx++
	}
	if g.walkable(nx, ny) {
		g.playerX, g.playerY = nx, ny
	}
}

// placeBomb drops a bomb on the player's tile, or restarts a finished round.
func (g *Game) placeBomb() {
	if g.session.State.Terminal() {
		g.session.Restart()
		g.restart()
		return
	}
	g.session.Start()
	if g.bombAt(g.playerX, g.playerY) >= 0 {
		return
	}
	b := Bomb{X: g.playerX, Y: g.playerY, fresh: true}
	b.Fuse.Set(core.Ms(g.cfg.Bombs.FuseMs))
	g.bombs = append(g.bombs, b)
}

// PlayerCenter returns the player's tile center in logical pixels.
func (g *Game) PlayerCenter() (float64, float64) {
	return g.tileCenter(g.playerX, g.playerY)
}

func (g *Game) gridLeft() float64 {
	return float64(g.cfg.Canvas.Width-g.cfg.Grid.Cols*g.cfg.Grid.Tile) / 2
}

func (g *Game) tileCenter(x, y int) (float64, float64) {
	t := float64(g.cfg.Grid.Tile)
	return g.gridLeft() + float64(x)*t + t/2, float64(g.cfg.Grid.Top) + float64(y)*t + t/2
}

// tap bombs when the pointer lands on the dog, otherwise steps toward it.
func (g *Game) tap(px, py float64) {
	cx, cy := g.PlayerCenter()
	dx, dy := px-cx, py-cy
	t := float64(g.cfg.Grid.Tile)
	if dx*dx+dy*dy < t*t/2 {
		g.placeBomb()
		return
	}
	switch {
	case math.Abs(dx) > math.Abs(dy) && dx > 0:
		g.move(core.IntentRight)
	case math.Abs(dx) > math.Abs(dy):
		g.move(core.IntentLeft)
	case dy > 0:
		g.move(core.IntentDown)
	default:
		g.move(core.IntentUp)
	}
}

func (g *Game) applyInput(in core.InputFrame) {
	for _, ev := range in.Events {
		switch ev.Kind {
		case core.KeyPress:
			switch {
			case ev.Intent.Directional():
				g.move(ev.Intent)
			case ev.Intent == core.IntentPrimary:
				g.placeBomb()
			case ev.Intent == core.IntentRestart:
				if g.session.State.Terminal() {
					g.placeBomb()
				}
			}
		case core.PointerDown:
			g.tap(ev.X, ev.Y)
		}
	}
}

// Update applies input, burns fuses, detonates and checks the round.
func (g *Game) Update(dt time.Duration, in core.InputFrame) core.StepResult {
	before := g.session.State
	g.applyInput(in)
	if g.session.Playing() {
		g.tick(dt)
	}
	return core.StepResult{
		State:    g.session.Snapshot(),
		Finished: !before.Terminal() && g.session.State.Terminal(),
	}
}

func (g *Game) tick(dt time.Duration) {
	g.ticks++

	for i := range g.bombs {
		if g.bombs[i].fresh {
			g.bombs[i].fresh = false
			continue
		}
		g.bombs[i].Fuse.Tick(dt)
	}

	// Bombs chained during this pass keep their slot and go off next tick.
	var due []Bomb
	live := g.bombs[:0]
	for _, b := range g.bombs {
		if b.Fuse.Active() {
			live = append(live, b)
		} else {
			due = append(due, b)
		}
	}
	g.bombs = live

	burning := g.explosions[:0]
	for _, e := range g.explosions {
		e.Life.Tick(dt)
		if e.Life.Active() {
			burning = append(burning, e)
		}
	}
	g.explosions = burning

	for _, b := range due {
		g.detonate(b.X, b.Y)
	}

	for _, e := range g.explosions {
		if e.X == g.playerX && e.Y == g.playerY {
			g.session.Finish(false)
			return
		}
	}
	if g.crates <= 0 {
		g.session.Finish(true)
	}
}

var rays = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// detonate burns the center and up to Range tiles per ray. A ray stops
// before solid tiles and on the first crate, which it destroys.
func (g *Game) detonate(x, y int) {
	tiles := [][2]int{{x, y}}
	for _, r := range rays {
		for i := 1; i <= g.cfg.Bombs.Range; i++ {
			tx, ty := x+r[0]*i, y+r[1]*i
			if !g.inBounds(tx, ty) || g.grid[ty][tx] == TileSolid {
				break
			}
			tiles = append(tiles, [2]int{tx, ty})
			if g.grid[ty][tx] == TileCrate {
				g.grid[ty][tx] = TileEmpty
				g.crates--
				g.session.AddScore(g.cfg.Scoring.Crate)
				break
			}
		}
	}

	for _, t := range tiles {
		g.ignite(t[0], t[1])
		if i := g.bombAt(t[0], t[1]); i >= 0 && g.bombs[i].Fuse.Active() {
			g.bombs[i].Fuse.Stop()
			g.bombs[i].fresh = false
		}
	}
}

// ignite starts or refreshes the explosion on a tile.
func (g *Game) ignite(x, y int) {
	life := core.Ms(g.cfg.Bombs.ExplosionMs)
	for i := range g.explosions {
		if g.explosions[i].X == x && g.explosions[i].Y == y {
			g.explosions[i].Life.Set(life)
			return
		}
	}
	e := Explosion{X: x, Y: y}
	e.Life.Set(life)
	g.explosions = append(g.explosions, e)
}

// State returns lifecycle, score and best.
func (g *Game) State() core.GameState {
	return g.session.Snapshot()
}
