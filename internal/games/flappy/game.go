// Package flappy implements Flappy Anago: tap to flap through glitch pipes.
package flappy

import (
	"image"
	"math/rand"
	"time"

	"github.com/anago-arcade/anago/internal/assets"
	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
)

// Pipe is one pair of pipes sharing a gap.
type Pipe struct {
	X      float64 // left edge
	GapY   float64 // top of the gap
	Scored bool
}

// Game implements Flappy Anago.
type Game struct {
	cfg      config.FlappyConfig
	fixedCfg bool
	rng      *rand.Rand
	session  core.Session

	playerY  float64
	velocity float64 // px per ms, positive is down

	pipes     []Pipe
	sincePipe time.Duration
	ticks     uint64

	sprite image.Image
}

var (
	configPath       string
	difficultyPreset string
	spriteAssets     *assets.Loader
)

// SetConfigPath sets the config file used by games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetAssets sets the loader the player sprite is read from.
func SetAssets(l *assets.Loader) {
	spriteAssets = l
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultFlappyConfig()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy Anago" }

// Subtitle returns the games index blurb.
func (g *Game) Subtitle() string { return "Tap to flap · Classic tilt rage" }

// Size returns the logical surface size.
func (g *Game) Size() (int, int) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

func (g *Game) loadConfig() {
	if g.fixedCfg {
		return
	}
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	if p, err := config.ParseDifficulty(difficultyPreset); err == nil {
		config.ApplyFlappyPreset(&cfg, p)
	}
	g.cfg = cfg
}

// Reset mounts a fresh session. A missing sprite is not an error: Draw
// falls back to the procedural dog.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = core.Session{}
	g.sprite = nil
	if img, err := spriteAssets.Image(g.cfg.Player.Sprite); err == nil {
		g.sprite = img
	}
	g.restart()
}

func (g *Game) restart() {
	g.playerY = float64(g.cfg.Canvas.Height) / 2
	g.velocity = 0
	g.pipes = nil
	g.sincePipe = 0
	g.ticks = 0
}

func (g *Game) floorY() float64 {
	return float64(g.cfg.Canvas.Height) - g.cfg.Physics.GroundHeight - g.cfg.Player.Radius
}

// flap restarts after a crash, otherwise starts the round and kicks upward.
func (g *Game) flap() {
	if g.session.State.Terminal() {
		g.session.Restart()
		g.restart()
		return
	}
	g.session.Start()
	g.velocity = g.cfg.Physics.Flap
}

func (g *Game) applyInput(in core.InputFrame) {
	for _, ev := range in.Events {
		switch ev.Kind {
		case core.KeyPress:
			switch ev.Intent {
			case core.IntentPrimary, core.IntentUp:
				g.flap()
			case core.IntentRestart:
				if g.session.State.Terminal() {
					g.flap()
				}
			}
		case core.PointerDown:
			g.flap()
		}
	}
}

// Update applies input then advances physics and pipes by dt.
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
	ms := core.Millis(dt)
	ph := g.cfg.Physics
	r := g.cfg.Player.Radius

	g.velocity += ph.Gravity * ms
	if g.velocity > ph.MaxFall {
		g.velocity = ph.MaxFall
	}
	g.playerY += g.velocity * ms

	if g.playerY > g.floorY() {
		g.playerY = g.floorY()
		g.velocity = 0
		g.session.Finish(false)
	}
	if g.playerY < r {
		g.playerY = r
		g.velocity = 0
	}

	g.sincePipe += dt
	if g.sincePipe >= core.Ms(g.cfg.Pipes.IntervalMs) {
		g.spawnPipe()
		g.sincePipe = 0
	}

	pw := g.cfg.Pipes.Width
	live := g.pipes[:0]
	for _, p := range g.pipes {
		p.X -= g.cfg.Pipes.Speed * ms
		if p.X+pw > 0 {
			live = append(live, p)
		}
	}
	g.pipes = live

	px := g.cfg.Player.X
	player := core.CenteredBox(px, g.playerY, 2*r, 2*r)
	for i := range g.pipes {
		p := &g.pipes[i]
		for _, b := range g.pipeBoxes(*p) {
			if player.Intersects(b) {
				g.session.Finish(false)
			}
		}
		if !p.Scored && p.X+pw < px-r {
			p.Scored = true
			g.session.AddScore(1)
		}
	}
}

// spawnPipe adds a pipe just beyond the right edge with a random gap.
func (g *Game) spawnPipe() {
	c := g.cfg
	span := float64(c.Canvas.Height) - c.Physics.GroundHeight - c.Pipes.Gap - 2*c.Pipes.Margin
	g.pipes = append(g.pipes, Pipe{
		X:    float64(c.Canvas.Width) + c.Pipes.Width,
		GapY: c.Pipes.Margin + g.rng.Float64()*span,
	})
}

// pipeBoxes returns the top and bottom pipe rectangles.
func (g *Game) pipeBoxes(p Pipe) [2]core.Box {
	bottomY := p.GapY + g.cfg.Pipes.Gap
	ground := float64(g.cfg.Canvas.Height) - g.cfg.Physics.GroundHeight
	return [2]core.Box{
		{X: p.X, Y: 0, W: g.cfg.Pipes.Width, H: p.GapY},
		{X: p.X, Y: bottomY, W: g.cfg.Pipes.Width, H: ground - bottomY},
	}
}

// Pipes returns a copy of the live pipes.
func (g *Game) Pipes() []Pipe {
	return append([]Pipe(nil), g.pipes...)
}

// State returns lifecycle, score and best.
func (g *Game) State() core.GameState {
	return g.session.Snapshot()
}
