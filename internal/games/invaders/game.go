// Package invaders implements Dog Invaders: a bone ship against a marching
// formation of neon dog heads, power-up drops and a boss wave.
package invaders

import (
	"math"
	"math/rand"
	"time"

	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
)

// Sound effects, named after their files under sounds/.
const (
	SoundShoot    core.Sound = "dog_shoot"
	SoundHit      core.Sound = "dog_hit"
	SoundPowerUp  core.Sound = "power_up"
	SoundBossHit  core.Sound = "boss_hit"
	SoundGameOver core.Sound = "game_over"
)

// Bullet is a projectile moving vertically.
type Bullet struct {
	X, Y float64
	DY   float64 // px per ms
}

// Enemy is one invader of the formation.
type Enemy struct {
	X, Y  float64
	Row   int
	Alive bool
}

// PowerKind enumerates the power-up drops.
type PowerKind uint8

const (
	PowerRapid PowerKind = iota
	PowerDouble
	PowerShield
	PowerSpeed
	powerKinds
)

// Label returns the short text printed on a drop.
func (k PowerKind) Label() string {
	switch k {
	case PowerRapid:
		return "R"
	case PowerDouble:
		return "2X"
	case PowerShield:
		return "S"
	default:
		return "SPD"
	}
}

// PowerUp is a falling drop.
type PowerUp struct {
	X, Y float64
	Kind PowerKind
}

// Boss is the final wave.
type Boss struct {
	Active bool
	X, Y   float64
	Dir    float64
	HP     int
	shoot  time.Duration
}

// Game implements Dog Invaders.
type Game struct {
	cfg      config.InvadersConfig
	fixedCfg bool
	rng      *rand.Rand
	session  core.Session

	playerX   float64
	moveLeft  bool
	moveRight bool
	cooldown  core.Countdown
	firedNow  bool

	enemies    []Enemy
	enemyDir   float64
	enemyMove  time.Duration
	enemyShoot time.Duration

	boss Boss

	playerBullets []Bullet
	enemyBullets  []Bullet
	bossBullets   []Bullet
	powerUps      []PowerUp
	effects       [powerKinds]core.Countdown

	sounds []core.Sound // effects of the current Update
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
	return &Game{cfg: config.DefaultInvadersConfig()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name.
func (g *Game) Title() string { return "Dog Invaders" }

// Subtitle returns the games index blurb.
func (g *Game) Subtitle() string { return "Shoot first · Ask never" }

// Size returns the logical surface size.
func (g *Game) Size() (int, int) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

func (g *Game) loadConfig() {
	if g.fixedCfg {
		return
	}
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if p, err := config.ParseDifficulty(difficultyPreset); err == nil {
		config.ApplyInvadersPreset(&cfg, p)
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
	g.playerX = g.width() / 2
	g.moveLeft, g.moveRight = false, false
	g.cooldown.Stop()
	g.firedNow = false
	g.playerBullets = nil
	g.enemyBullets = nil
	g.bossBullets = nil
	g.powerUps = nil
	for i := range g.effects {
		g.effects[i].Stop()
	}
	g.boss = Boss{}
	g.ticks = 0
	g.spawnFormation()
}

func (g *Game) width() float64  { return float64(g.cfg.Canvas.Width) }
func (g *Game) height() float64 { return float64(g.cfg.Canvas.Height) }

func (g *Game) spawnFormation() {
	e := g.cfg.Enemies
	g.enemies = make([]Enemy, 0, e.Rows*e.Cols)
	for row := 0; row < e.Rows; row++ {
		for col := 0; col < e.Cols; col++ {
			g.enemies = append(g.enemies, Enemy{
				X:     e.StartX + float64(col)*e.SpacingX,
				Y:     e.StartY + float64(row)*e.SpacingY,
				Row:   row,
				Alive: true,
			})
		}
	}
	g.enemyDir = 1
	g.enemyMove = 0
	g.enemyShoot = 0
}

func (g *Game) spawnBoss() {
	b := g.cfg.Boss
	g.boss = Boss{Active: true, X: g.width() / 2, Y: b.Y, Dir: 1, HP: b.MaxHP}
	g.bossBullets = nil
}

// Active reports whether a power-up effect is running.
func (g *Game) Active(k PowerKind) bool {
	return g.effects[k].Active()
}

// primary starts and shoots, or restarts a finished game.
func (g *Game) primary() {
	if g.session.State.Terminal() {
		g.session.Restart()
		g.restart()
		return
	}
	g.session.Start()
	g.shoot()
}

func (g *Game) shoot() {
	if g.cooldown.Active() || !g.session.Playing() {
		return
	}
	s := g.cfg.Shots
	cd := float64(s.CooldownMs)
	if g.Active(PowerRapid) {
		cd *= s.RapidFactor
	}
	g.cooldown.Set(time.Duration(math.Round(cd * float64(time.Millisecond))))
	g.firedNow = true
	g.sounds = append(g.sounds, SoundShoot)

	y := g.cfg.Player.Y - g.cfg.Player.Height/2
	g.playerBullets = append(g.playerBullets, Bullet{X: g.playerX, Y: y, DY: s.Speed})
	if g.Active(PowerDouble) {
		g.playerBullets = append(g.playerBullets,
			Bullet{X: g.playerX - s.Spread, Y: y, DY: s.Speed},
			Bullet{X: g.playerX + s.Spread, Y: y, DY: s.Speed},
		)
	}
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
		}
	}
}

// Update applies input and advances one frame: player, formation, boss,
// then bullets and drops.
func (g *Game) Update(dt time.Duration, in core.InputFrame) core.StepResult {
	before := g.session.State
	g.firedNow = false
	g.sounds = nil
	g.applyInput(in)
	if g.session.Playing() {
		g.tick(dt)
	}
	return core.StepResult{
		State:    g.session.Snapshot(),
		Finished: !before.Terminal() && g.session.State.Terminal(),
		Sounds:   g.sounds,
	}
}

// lose ends the run. The game over sound plays once, however many
// things killed the ship this frame.
func (g *Game) lose() {
	if g.session.Finish(false) {
		g.sounds = append(g.sounds, SoundGameOver)
	}
}

func (g *Game) tick(dt time.Duration) {
	g.ticks++
	if !g.firedNow {
		g.cooldown.Tick(dt)
	}
	for i := range g.effects {
		g.effects[i].Tick(dt)
	}

	ms := core.Millis(dt)
	g.updatePlayer(ms)
	g.updateEnemies(dt)
	g.updateBoss(dt, ms)
	g.updateProjectiles(ms)
}

func (g *Game) updatePlayer(ms float64) {
	p := g.cfg.Player
	speed := p.Speed
	if g.Active(PowerSpeed) {
		speed *= p.SpeedBoost
	}
	dir := 0.0
	if g.moveRight {
		dir++
	}
	if g.moveLeft {
		dir--
	}
	half := p.Width / 2
	g.playerX = core.ClampF(g.playerX+dir*speed*ms, half+p.Margin, g.width()-half-p.Margin)
}

// updateEnemies marches the formation. Once it is wiped out the boss
// takes over and the formation stops.
func (g *Game) updateEnemies(dt time.Duration) {
	if g.boss.Active || !g.session.Playing() {
		return
	}
	e := g.cfg.Enemies
	g.enemyMove += dt
	g.enemyShoot += dt

	alive := g.aliveEnemies()
	if len(alive) == 0 {
		g.spawnBoss()
		return
	}

	if g.enemyMove >= core.Ms(e.MoveMs) {
		g.enemyMove = 0
		hitEdge := false
		for _, i := range alive {
			next := g.enemies[i].X + e.StepX*g.enemyDir
			if next < e.Edge || next > g.width()-e.Edge {
				hitEdge = true
				break
			}
		}
		if hitEdge {
			g.enemyDir = -g.enemyDir
			for _, i := range alive {
				g.enemies[i].Y += e.StepY
				if g.enemies[i].Y > g.cfg.Player.Y-e.DangerGap {
					g.lose()
				}
			}
		} else {
			for _, i := range alive {
				g.enemies[i].X += e.StepX * g.enemyDir
			}
		}
	}

	if g.enemyShoot >= core.Ms(e.ShootMs) {
		g.enemyShoot = 0
		shooter := g.enemies[alive[g.rng.Intn(len(alive))]]
		g.enemyBullets = append(g.enemyBullets, Bullet{X: shooter.X, Y: shooter.Y + 10, DY: e.BulletSpeed})
	}
}

func (g *Game) aliveEnemies() []int {
	var idx []int
	for i, e := range g.enemies {
		if e.Alive {
			idx = append(idx, i)
		}
	}
	return idx
}

func (g *Game) updateBoss(dt time.Duration, ms float64) {
	if !g.boss.Active || !g.session.Playing() {
		return
	}
	b := g.cfg.Boss
	half := b.Width / 2
	g.boss.X += g.boss.Dir * b.Speed * ms
	if g.boss.X < half+b.Edge || g.boss.X > g.width()-half-b.Edge {
		g.boss.Dir = -g.boss.Dir
	}

	g.boss.shoot += dt
	if g.boss.shoot >= core.Ms(b.ShootMs) {
		g.boss.shoot = 0
		y := g.boss.Y + b.Height/2
		dy := g.cfg.Enemies.BulletSpeed * b.BulletFactor
		g.bossBullets = append(g.bossBullets,
			Bullet{X: g.boss.X - b.Width/4, Y: y, DY: dy},
			Bullet{X: g.boss.X + b.Width/4, Y: y, DY: dy},
		)
	}
}

// moveBullets advances bullets and drops those outside (minY, maxY).
func moveBullets(bs []Bullet, ms, minY, maxY float64) []Bullet {
	live := bs[:0]
	for _, b := range bs {
		b.Y += b.DY * ms
		if b.Y > minY && b.Y < maxY {
			live = append(live, b)
		}
	}
	return live
}

func (g *Game) updateProjectiles(ms float64) {
	if !g.session.Playing() {
		return
	}
	h := g.height()
	g.playerBullets = moveBullets(g.playerBullets, ms, -30, math.Inf(1))
	g.enemyBullets = moveBullets(g.enemyBullets, ms, math.Inf(-1), h+30)
	g.bossBullets = moveBullets(g.bossBullets, ms, math.Inf(-1), h+30)

	drops := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.Y += g.cfg.PowerUps.Speed * ms
		if p.Y < h+20 {
			drops = append(drops, p)
		}
	}
	g.powerUps = drops

	g.hitEnemies()
	if g.boss.Active {
		g.hitBoss()
	}

	ship := core.CenteredBox(g.playerX, g.cfg.Player.Y, g.cfg.Player.Width, g.cfg.Player.Height)
	g.enemyBullets = g.hitPlayer(g.enemyBullets, ship)
	g.bossBullets = g.hitPlayer(g.bossBullets, ship)

	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		if ship.ContainsPoint(p.X, p.Y) {
			g.activate(p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	g.powerUps = kept
}

// hitEnemies lets each bullet destroy at most one invader.
func (g *Game) hitEnemies() {
	if g.boss.Active {
		return
	}
	half := g.cfg.Enemies.HitHalf
	live := g.playerBullets[:0]
	for _, b := range g.playerBullets {
		hit := false
		for i := range g.enemies {
			e := &g.enemies[i]
			if !e.Alive || !core.CenteredBox(e.X, e.Y, 2*half, 2*half).ContainsPoint(b.X, b.Y) {
				continue
			}
			e.Alive = false
			g.session.AddScore(g.cfg.Scoring.Enemy)
			g.sounds = append(g.sounds, SoundHit)
			g.maybeDrop(e.X, e.Y)
			hit = true
			break
		}
		if !hit {
			live = append(live, b)
		}
	}
	g.playerBullets = live
}

func (g *Game) maybeDrop(x, y float64) {
	if g.rng.Float64() > g.cfg.PowerUps.Chance {
		return
	}
	g.powerUps = append(g.powerUps, PowerUp{X: x, Y: y, Kind: PowerKind(g.rng.Intn(int(powerKinds)))})
}

func (g *Game) hitBoss() {
	b := g.cfg.Boss
	box := core.CenteredBox(g.boss.X, g.boss.Y, b.Width, b.Height)
	damage := 1
	if g.Active(PowerDouble) {
		damage = 2
	}
	live := g.playerBullets[:0]
	for _, bl := range g.playerBullets {
		if box.ContainsPoint(bl.X, bl.Y) {
			g.boss.HP -= damage
			g.sounds = append(g.sounds, SoundBossHit)
			continue
		}
		live = append(live, bl)
	}
	g.playerBullets = live

	if g.boss.HP <= 0 {
		g.boss.Active = false
		g.session.Finish(true)
	}
}

// hitPlayer removes bullets striking the ship. The shield eats one hit.
func (g *Game) hitPlayer(bs []Bullet, ship core.Box) []Bullet {
	live := bs[:0]
	for _, b := range bs {
		if !ship.ContainsPoint(b.X, b.Y) {
			live = append(live, b)
			continue
		}
		if g.Active(PowerShield) {
			g.effects[PowerShield].Stop()
			continue
		}
		g.lose()
	}
	return live
}

// activate starts an effect. Picking up a running effect restarts its timer.
func (g *Game) activate(k PowerKind) {
	g.effects[k].Set(core.Ms(g.cfg.PowerUps.DurationMs))
	g.sounds = append(g.sounds, SoundPowerUp)
}

// State returns lifecycle, score and best.
func (g *Game) State() core.GameState {
	return g.session.Snapshot()
}
