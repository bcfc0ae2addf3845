// Package snake implements Anago Snake: a 20x20 grid snake that moves on a
// fixed 120ms step and grows by eating tokens.
package snake

import (
	"math"
	"math/rand"
	"time"

	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

// step returns the neighbor of p in direction d.
func (p Point) step(d core.Intent) Point {
	switch d {
	case core.IntentUp:
		p.Y--
	case core.IntentDown:
		p.Y++
	case core.IntentLeft:
		p.X--
	case core.IntentRight:
		p.X++
	}
	return p
}

// Game implements Anago Snake. One Game value is the whole state of one
// mounted session; nothing is shared between instances.
type Game struct {
	cfg      config.SnakeConfig
	fixedCfg bool
	rng      *rand.Rand
	session  core.Session

	snake   []Point // head at index 0
	heading core.Intent
	nextDir core.Intent // latched by input, consumed once per step
	food    Point

	clock core.Accumulator
	steps uint64

	swipe struct {
		x, y   float64
		active bool
	}
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
	return &Game{cfg: config.DefaultSnakeConfig()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Anago Snake" }

// Subtitle returns the games index blurb.
func (g *Game) Subtitle() string { return "Eat tokens · Don't eat your tail" }

// Size returns the logical surface size.
func (g *Game) Size() (int, int) {
	return g.cfg.Grid.Cols * g.cfg.Grid.Cell, g.cfg.Grid.Rows * g.cfg.Grid.Cell
}

func (g *Game) loadConfig() {
	if g.fixedCfg {
		return
	}
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if p, err := config.ParseDifficulty(difficultyPreset); err == nil {
		config.ApplySnakePreset(&cfg, p)
	}
	g.cfg = cfg
}

// Reset mounts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = core.Session{}
	g.clock = core.Accumulator{Step: core.Ms(g.cfg.Step.StepMs)}
	g.restart()
}

// restart puts the board back to its starting layout without touching best.
func (g *Game) restart() {
	g.snake = []Point{{X: g.cfg.Start.X, Y: g.cfg.Start.Y}}
	g.heading = core.IntentRight
	g.nextDir = core.IntentRight
	g.steps = 0
	g.swipe.active = false
	g.food = g.randomFood()
}

// randomFood picks a free cell uniformly. A full board keeps the old food.
func (g *Game) randomFood() Point {
	free := make([]Point, 0, g.cfg.Grid.Cols*g.cfg.Grid.Rows)
	for y := 0; y < g.cfg.Grid.Rows; y++ {
		for x := 0; x < g.cfg.Grid.Cols; x++ {
			p := Point{X: x, Y: y}
			if !g.onSnake(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return g.food
	}
	return free[g.rng.Intn(len(free))]
}

func (g *Game) onSnake(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

// changeDirection latches a new direction unless it reverses the heading
// the snake is actually moving in.
func (g *Game) changeDirection(d core.Intent) {
	if d == g.heading.Opposite() {
		return
	}
	g.nextDir = d
}

// primary handles a tap or Space: restart from game over, else start.
func (g *Game) primary() {
	if g.session.State.Terminal() {
		g.session.Restart()
		g.restart()
		return
	}
	g.session.Start()
}

func (g *Game) applyInput(in core.InputFrame) {
	for _, ev := range in.Events {
		switch ev.Kind {
		case core.KeyPress:
			switch {
			case ev.Intent.Directional():
				if g.session.State.Terminal() {
					continue
				}
				g.changeDirection(ev.Intent)
				g.session.Start()
			case ev.Intent == core.IntentPrimary:
				g.primary()
			case ev.Intent == core.IntentRestart:
				if g.session.State.Terminal() {
					g.primary()
				}
			}
		case core.PointerDown:
			g.swipe.x, g.swipe.y, g.swipe.active = ev.X, ev.Y, true
			g.primary()
		case core.PointerUp:
			if g.swipe.active {
				g.swipe.active = false
				if !g.session.State.Terminal() {
					g.applySwipe(ev.X-g.swipe.x, ev.Y-g.swipe.y)
				}
			}
		}
	}
}

func (g *Game) applySwipe(dx, dy float64) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	th := g.cfg.Input.SwipeThreshold
	if ax < th && ay < th {
		return
	}
	switch {
	case ax > ay && dx > 0:
		g.changeDirection(core.IntentRight)
	case ax > ay:
		g.changeDirection(core.IntentLeft)
	case dy > 0:
		g.changeDirection(core.IntentDown)
	default:
		g.changeDirection(core.IntentUp)
	}
}

// Update applies input and runs every fixed step that is due.
func (g *Game) Update(dt time.Duration, in core.InputFrame) core.StepResult {
	before := g.session.State
	g.applyInput(in)

	for n := g.clock.Advance(dt); n > 0; n-- {
		g.step()
	}

	return core.StepResult{
		State:    g.session.Snapshot(),
		Finished: !before.Terminal() && g.session.State.Terminal(),
	}
}

// step performs one discrete move.
func (g *Game) step() {
	if !g.session.Playing() {
		return
	}
	g.steps++
	g.heading = g.nextDir

	head := g.snake[0].step(g.heading)
	if head.X < 0 || head.X >= g.cfg.Grid.Cols || head.Y < 0 || head.Y >= g.cfg.Grid.Rows {
		g.session.Finish(false)
		return
	}
	if g.onSnake(head) {
		g.session.Finish(false)
		return
	}

	g.snake = append([]Point{head}, g.snake...)
	if head == g.food {
		g.session.AddScore(1)
		g.food = g.randomFood()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

// State returns lifecycle, score and best.
func (g *Game) State() core.GameState {
	return g.session.Snapshot()
}
