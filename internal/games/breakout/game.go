// Package breakout implements Anago Breakout: one ball, one paddle and a
// five-row wall of BRRR bricks.
package breakout

import (
	"math"
	"math/rand"
	"time"

	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
)

// BrickKind selects a brick's label and value.
type BrickKind uint8

const (
	KindJeets BrickKind = iota
	KindBrrr
	KindDog
)

// Label returns the text printed on the brick.
func (k BrickKind) Label() string {
	switch k {
	case KindBrrr:
		return "$BRRR"
	case KindDog:
		return "DOG"
	default:
		return "JEETS"
	}
}

// Brick is one block of the wall.
type Brick struct {
	Box   core.Box
	Kind  BrickKind
	Alive bool
}

// Game implements Anago Breakout.
type Game struct {
	cfg      config.BreakoutConfig
	fixedCfg bool
	rng      *rand.Rand
	session  core.Session

	paddleX   float64 // center
	moveLeft  bool
	moveRight bool

	ball core.Vec
	vel  core.Vec // px per ms

	bricks []Brick
	ticks  uint64
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
	return &Game{cfg: config.DefaultBreakoutConfig()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Anago Breakout" }

// Subtitle returns the games index blurb.
func (g *Game) Subtitle() string { return "Break blocks · Free the brrr" }

// Size returns the logical surface size.
func (g *Game) Size() (int, int) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

func (g *Game) loadConfig() {
	if g.fixedCfg {
		return
	}
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if p, err := config.ParseDifficulty(difficultyPreset); err == nil {
		config.ApplyBreakoutPreset(&cfg, p)
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
	g.ticks = 0
	g.moveLeft, g.moveRight = false, false
	g.buildWall()
	g.serve()
}

func (g *Game) width() float64  { return float64(g.cfg.Canvas.Width) }
func (g *Game) height() float64 { return float64(g.cfg.Canvas.Height) }

// PaddleY returns the paddle's vertical center.
func (g *Game) PaddleY() float64 {
	return g.height() - g.cfg.Paddle.BottomOffset
}

// buildWall lays out rows x cols bricks separated by the margin.
func (g *Game) buildWall() {
	b := g.cfg.Bricks
	bw := (g.width() - b.Margin*float64(b.Cols+1)) / float64(b.Cols)
	g.bricks = make([]Brick, 0, b.Rows*b.Cols)
	for row := 0; row < b.Rows; row++ {
		kind := KindJeets
		switch row {
		case 0:
			kind = KindBrrr
		case b.Rows - 1:
			kind = KindDog
		}
		for col := 0; col < b.Cols; col++ {
			g.bricks = append(g.bricks, Brick{
				Box: core.Box{
					X: b.Margin + float64(col)*(bw+b.Margin),
					Y: b.Top + float64(row)*(b.Height+b.Margin),
					W: bw,
					H: b.Height,
				},
				Kind:  kind,
				Alive: true,
			})
		}
	}
}

// serve centers the paddle and puts the ball above it heading up, left or
// right at random.
func (g *Game) serve() {
	g.paddleX = g.width() / 2
	g.ball = core.Vec{X: g.width() / 2, Y: g.PaddleY() - g.cfg.Ball.Radius - 2}
	dir := 1.0
	if g.rng.Float64() < 0.5 {
		dir = -1
	}
	g.vel = core.Vec{X: g.cfg.Ball.Speed * dir, Y: -g.cfg.Ball.Speed}
}

func (g *Game) value(k BrickKind) int {
	switch k {
	case KindBrrr:
		return g.cfg.Scoring.TopRow
	case KindDog:
		return g.cfg.Scoring.BottomRow
	default:
		return g.cfg.Scoring.Middle
	}
}

func (g *Game) clampPaddle() {
	half := g.cfg.Paddle.Width / 2
	g.paddleX = core.ClampF(g.paddleX, half+g.cfg.Paddle.Margin, g.width()-half-g.cfg.Paddle.Margin)
}

// primary starts a ready game or restarts a finished one.
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
			switch ev.Intent {
			case core.IntentLeft:
				g.moveLeft = true
				g.session.Start()
			case core.IntentRight:
				g.moveRight = true
				g.session.Start()
			case core.IntentPrimary:
				g.primary()
			case core.IntentRestart:
				if g.session.State.Terminal() {
					g.primary()
				}
			}
		case core.KeyRelease:
			switch ev.Intent {
			case core.IntentLeft:
				g.moveLeft = false
			case core.IntentRight:
				g.moveRight = false
			}
		case core.PointerDown:
			g.primary()
			// A restart tap leaves the paddle served at center.
			if g.session.Playing() {
				g.paddleX = ev.X
				g.clampPaddle()
			}
		case core.PointerMove:
			if ev.Held && g.session.Playing() {
				g.paddleX = ev.X
				g.clampPaddle()
			}
		}
	}
}

// Update applies input and advances paddle, ball and bricks by dt.
func (g *Game) Update(dt time.Duration, in core.InputFrame) core.StepResult {
	before := g.session.State
	g.applyInput(in)
	if g.session.Playing() {
		g.tick(core.Millis(dt))
	}
	return core.StepResult{
		State:    g.session.Snapshot(),
		Finished: !before.Terminal() && g.session.State.Terminal(),
	}
}

func (g *Game) tick(ms float64) {
	g.ticks++
	r := g.cfg.Ball.Radius

	dir := 0.0
	if g.moveRight {
		dir++
	}
	if g.moveLeft {
		dir--
	}
	g.paddleX += dir * g.cfg.Paddle.Speed * ms
	g.clampPaddle()

	g.ball = g.ball.Add(g.vel.Scale(ms))

	// Walls
	if g.ball.X-r < 0 {
		g.ball.X = r
		g.vel.X = math.Abs(g.vel.X)
	} else if g.ball.X+r > g.width() {
		g.ball.X = g.width() - r
		g.vel.X = -math.Abs(g.vel.X)
	}
	if g.ball.Y-r < 0 {
		g.ball.Y = r
		g.vel.Y = math.Abs(g.vel.Y)
	}

	g.bouncePaddle()

	if g.ball.Y-r > g.height() {
		g.session.Finish(false)
		return
	}

	g.hitBricks()
	if g.Remaining() == 0 {
		g.session.Finish(true)
	}
}

// bouncePaddle reflects the ball upward with an angle taken from where it
// struck the paddle, at exactly the boosted speed.
func (g *Game) bouncePaddle() {
	r := g.cfg.Ball.Radius
	half := g.cfg.Paddle.Width / 2
	top := g.PaddleY() - g.cfg.Paddle.Height/2
	bottom := g.PaddleY() + g.cfg.Paddle.Height/2

	if g.vel.Y <= 0 ||
		g.ball.Y+r <= top || g.ball.Y+r >= bottom+6 ||
		g.ball.X <= g.paddleX-half || g.ball.X >= g.paddleX+half {
		return
	}

	target := g.cfg.Ball.Speed * g.cfg.Ball.BounceBoost
	hit := (g.ball.X - g.paddleX) / half
	g.ball.Y = top - r
	g.vel = core.Vec{X: target * hit, Y: -math.Abs(g.vel.Y)}.Normalize(target)
}

// hitBricks destroys every brick the ball overlaps and pushes the ball out
// along the axis of least penetration.
func (g *Game) hitBricks() {
	r := g.cfg.Ball.Radius
	for i := range g.bricks {
		b := &g.bricks[i]
		if !b.Alive {
			continue
		}
		ballBox := core.CenteredBox(g.ball.X, g.ball.Y, 2*r, 2*r)
		if !ballBox.Intersects(b.Box) {
			continue
		}
		b.Alive = false
		g.session.AddScore(g.value(b.Kind))

		left := ballBox.Right() - b.Box.X
		right := b.Box.Right() - ballBox.X
		top := ballBox.Bottom() - b.Box.Y
		bottom := b.Box.Bottom() - ballBox.Y
		switch math.Min(math.Min(left, right), math.Min(top, bottom)) {
		case left:
			g.ball.X = b.Box.X - r
			g.vel.X = -math.Abs(g.vel.X)
		case right:
			g.ball.X = b.Box.Right() + r
			g.vel.X = math.Abs(g.vel.X)
		case top:
			g.ball.Y = b.Box.Y - r
			g.vel.Y = -math.Abs(g.vel.Y)
		default:
			g.ball.Y = b.Box.Bottom() + r
			g.vel.Y = math.Abs(g.vel.Y)
		}
	}
}

// Remaining returns the number of live bricks.
func (g *Game) Remaining() int {
	n := 0
	for _, b := range g.bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// State returns lifecycle, score and best.
func (g *Game) State() core.GameState {
	return g.session.Snapshot()
}
