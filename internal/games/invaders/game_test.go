package invaders

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
)

func newGame(t *testing.T, cfg config.InvadersConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 11})
	return g
}

func playing(t *testing.T) *Game {
	t.Helper()
	g := newGame(t, config.DefaultInvadersConfig())
	g.session.Start()
	return g
}

func press(i core.Intent) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(i)
	return f
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func killFormation(g *Game) {
	for i := range g.enemies {
		g.enemies[i].Alive = false
	}
}

func TestFormation(t *testing.T) {
	g := newGame(t, config.DefaultInvadersConfig())

	if len(g.enemies) != 32 {
		t.Fatalf("len(enemies) = %d, expected 32", len(g.enemies))
	}
	first, last := g.enemies[0], g.enemies[31]
	if first.X != 40 || first.Y != 70 {
		t.Errorf("enemies[0] = (%v,%v), expected (40,70)", first.X, first.Y)
	}
	if last.X != 278 || last.Y != 166 || last.Row != 3 {
		t.Errorf("enemies[31] = %+v, expected (278,166) row 3", last)
	}
	if g.playerX != 180 {
		t.Errorf("playerX = %v, expected 180", g.playerX)
	}
}

func TestNoMotionWhileReady(t *testing.T) {
	g := newGame(t, config.DefaultInvadersConfig())
	g.enemyBullets = append(g.enemyBullets, Bullet{X: 50, Y: 200, DY: 0.25})
	before := g.Snapshot()

	g.Update(2*time.Second, idle())

	if got := g.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Errorf("Snapshot() changed while ready:\n%+v\n%+v", before, got)
	}
}

// finished returns a game that just ended, lost or won.
func finished(t *testing.T, win bool) *Game {
	t.Helper()
	g := playing(t)
	if win {
		killFormation(g)
		g.Update(0, idle())
		g.boss.HP = 1
		g.playerBullets = []Bullet{{X: g.boss.X, Y: 115, DY: -0.5}}
	} else {
		g.enemyBullets = []Bullet{{X: 180, Y: 418, DY: 0.25}}
	}
	g.Update(time.Millisecond, idle())
	if !g.State().Lifecycle.Terminal() {
		t.Fatalf("Lifecycle = %v, expected a terminal state", g.State().Lifecycle)
	}
	return g
}

func TestNoMotionWhileFinished(t *testing.T) {
	tests := []struct {
		name string
		win  bool
	}{
		{"gameover", false},
		{"win", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := finished(t, tt.win)
			g.enemyBullets = append(g.enemyBullets, Bullet{X: 50, Y: 200, DY: 0.25})
			g.powerUps = append(g.powerUps, PowerUp{X: 90, Y: 100, Kind: PowerRapid})
			before := g.Snapshot()

			for i := 0; i < 180; i++ {
				in := core.NewInputFrame()
				switch i % 4 {
				case 0:
					in.Set(core.IntentLeft)
				case 1:
					in.Add(core.InputEvent{Kind: core.PointerMove, X: 20, Y: 400, Held: true})
				case 2:
					in.Release(core.IntentLeft)
					in.Set(core.IntentRight)
				case 3:
					in.Release(core.IntentRight)
				}
				if res := g.Update(16*time.Millisecond, in); len(res.Sounds) != 0 {
					t.Fatalf("Update() sounds = %v after finishing, expected none", res.Sounds)
				}
			}

			if got := g.Snapshot(); !reflect.DeepEqual(got, before) {
				t.Errorf("Snapshot() changed after finishing:\n%+v\n%+v", before, got)
			}
		})
	}
}

func TestSounds(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game) core.InputFrame
		want  []core.Sound
	}{
		{
			name:  "quiet frame",
			setup: func(g *Game) core.InputFrame { return idle() },
		},
		{
			name:  "shoot",
			setup: func(g *Game) core.InputFrame { return press(core.IntentPrimary) },
			want:  []core.Sound{SoundShoot},
		},
		{
			name: "enemy hit",
			setup: func(g *Game) core.InputFrame {
				g.playerBullets = []Bullet{{X: 40, Y: 75, DY: -0.5}}
				return idle()
			},
			want: []core.Sound{SoundHit},
		},
		{
			name: "power up",
			setup: func(g *Game) core.InputFrame {
				g.powerUps = []PowerUp{{X: 180, Y: 420, Kind: PowerSpeed}}
				return idle()
			},
			want: []core.Sound{SoundPowerUp},
		},
		{
			name: "boss hit",
			setup: func(g *Game) core.InputFrame {
				killFormation(g)
				g.Update(0, idle())
				g.playerBullets = []Bullet{{X: g.boss.X, Y: 115, DY: -0.5}}
				return idle()
			},
			want: []core.Sound{SoundBossHit},
		},
		{
			name: "game over plays once",
			setup: func(g *Game) core.InputFrame {
				g.enemyBullets = []Bullet{{X: 180, Y: 418, DY: 0.25}}
				g.bossBullets = []Bullet{{X: 182, Y: 418, DY: 0.3}}
				return idle()
			},
			want: []core.Sound{SoundGameOver},
		},
		{
			name: "shield hit is silent",
			setup: func(g *Game) core.InputFrame {
				g.activate(PowerShield)
				g.enemyBullets = []Bullet{{X: 180, Y: 418, DY: 0.25}}
				return idle()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := playing(t)
			in := tt.setup(g)

			res := g.Update(time.Millisecond, in)

			if !reflect.DeepEqual(res.Sounds, tt.want) {
				t.Errorf("Update() sounds = %v, expected %v", res.Sounds, tt.want)
			}
		})
	}
}

func TestSoundPath(t *testing.T) {
	if got := SoundBossHit.Path(); got != "sounds/boss_hit.wav" {
		t.Errorf("Path() = %q, expected sounds/boss_hit.wav", got)
	}
}

func TestFormationMarch(t *testing.T) {
	g := playing(t)

	g.Update(449*time.Millisecond, idle())
	if g.enemies[0].X != 40 {
		t.Fatalf("enemies[0].X = %v before 450ms, expected 40", g.enemies[0].X)
	}
	g.Update(time.Millisecond, idle())
	if g.enemies[0].X != 48 {
		t.Errorf("enemies[0].X = %v after 450ms, expected 48", g.enemies[0].X)
	}
	if g.enemyMove != 0 {
		t.Errorf("enemyMove = %v, expected reset", g.enemyMove)
	}
}

func TestFormationEdge(t *testing.T) {
	g := playing(t)
	for i := range g.enemies {
		g.enemies[i].X += 60
	}

	g.Update(450*time.Millisecond, idle())

	if g.enemyDir != -1 {
		t.Errorf("enemyDir = %v, expected -1", g.enemyDir)
	}
	if g.enemies[0].X != 100 || g.enemies[0].Y != 88 {
		t.Errorf("enemies[0] = (%v,%v), expected (100,88)", g.enemies[0].X, g.enemies[0].Y)
	}
}

func TestFormationReachesShip(t *testing.T) {
	g := playing(t)
	for i := range g.enemies {
		g.enemies[i].X += 60
		g.enemies[i].Y = 380
	}

	res := g.Update(450*time.Millisecond, idle())

	if res.State.Lifecycle != core.GameOver || !res.Finished {
		t.Errorf("Update() = %+v, expected finished gameover", res)
	}
}

func TestEnemyFire(t *testing.T) {
	g := playing(t)

	g.Update(899*time.Millisecond, idle())
	if len(g.enemyBullets) != 0 {
		t.Fatalf("len(enemyBullets) = %d before 900ms, expected 0", len(g.enemyBullets))
	}
	g.Update(time.Millisecond, idle())
	if len(g.enemyBullets) != 1 {
		t.Errorf("len(enemyBullets) = %d after 900ms, expected 1", len(g.enemyBullets))
	}
}

func TestShotCooldown(t *testing.T) {
	g := newGame(t, config.DefaultInvadersConfig())

	g.Update(0, press(core.IntentPrimary))
	if g.State().Lifecycle != core.Playing {
		t.Fatalf("Lifecycle = %v, expected playing", g.State().Lifecycle)
	}
	if len(g.playerBullets) != 1 {
		t.Fatalf("len(playerBullets) = %d, expected 1", len(g.playerBullets))
	}
	if b := g.playerBullets[0]; b.X != 180 || b.Y != 412 || b.DY != -0.5 {
		t.Errorf("bullet = %+v, expected {180 412 -0.5}", b)
	}

	g.Update(219*time.Millisecond, idle())
	g.Update(0, press(core.IntentPrimary))
	if len(g.playerBullets) != 1 {
		t.Errorf("len(playerBullets) = %d during cooldown, expected 1", len(g.playerBullets))
	}

	g.Update(time.Millisecond, idle())
	g.Update(0, press(core.IntentPrimary))
	if len(g.playerBullets) != 2 {
		t.Errorf("len(playerBullets) = %d after cooldown, expected 2", len(g.playerBullets))
	}
}

func TestPowerShots(t *testing.T) {
	t.Run("rapid", func(t *testing.T) {
		g := playing(t)
		g.activate(PowerRapid)
		g.Update(0, press(core.IntentPrimary))
		if got := g.cooldown.Left(); got != 99*time.Millisecond {
			t.Errorf("cooldown.Left() = %v, expected 99ms", got)
		}
	})

	t.Run("double", func(t *testing.T) {
		g := playing(t)
		g.activate(PowerDouble)
		g.Update(0, press(core.IntentPrimary))
		if len(g.playerBullets) != 3 {
			t.Fatalf("len(playerBullets) = %d, expected 3", len(g.playerBullets))
		}
		if g.playerBullets[1].X != 171 || g.playerBullets[2].X != 189 {
			t.Errorf("side bullets at %v and %v, expected 171 and 189", g.playerBullets[1].X, g.playerBullets[2].X)
		}
	})

	t.Run("speed", func(t *testing.T) {
		g := playing(t)
		g.activate(PowerSpeed)
		f := core.NewInputFrame()
		f.Set(core.IntentRight)
		g.Update(10*time.Millisecond, f)
		if !approx(g.playerX, 180+0.35*1.7*10) {
			t.Errorf("playerX = %v, expected %v", g.playerX, 180+0.35*1.7*10)
		}
	})
}

func TestBulletKillsOneEnemy(t *testing.T) {
	g := playing(t)
	g.playerBullets = []Bullet{{X: 40, Y: 75, DY: -0.5}}

	g.Update(time.Millisecond, idle())

	if g.enemies[0].Alive {
		t.Errorf("enemies[0] still alive")
	}
	if len(g.playerBullets) != 0 {
		t.Errorf("len(playerBullets) = %d, expected bullet consumed", len(g.playerBullets))
	}
	if st := g.State(); st.Score != 10 || st.Best != 10 {
		t.Errorf("State() = %+v, expected score 10 best 10", st)
	}
	if n := len(g.aliveEnemies()); n != 31 {
		t.Errorf("alive = %d, expected 31", n)
	}
}

func TestPowerUpDrop(t *testing.T) {
	tests := []struct {
		name   string
		chance float64
		want   int
	}{
		{"always", 1, 1},
		{"never", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultInvadersConfig()
			cfg.PowerUps.Chance = tt.chance
			g := newGame(t, cfg)
			g.session.Start()
			g.playerBullets = []Bullet{{X: 40, Y: 75, DY: -0.5}}

			g.Update(time.Millisecond, idle())

			if len(g.powerUps) != tt.want {
				t.Errorf("len(powerUps) = %d, expected %d", len(g.powerUps), tt.want)
			}
		})
	}
}

func TestPowerUpPickupRestartsTimer(t *testing.T) {
	g := playing(t)
	g.effects[PowerShield].Set(time.Second)
	g.powerUps = []PowerUp{{X: 180, Y: 420, Kind: PowerShield}}

	g.Update(time.Millisecond, idle())

	if len(g.powerUps) != 0 {
		t.Errorf("len(powerUps) = %d, expected picked up", len(g.powerUps))
	}
	if got := g.effects[PowerShield].Left(); got != 8*time.Second {
		t.Errorf("shield Left() = %v, expected 8s", got)
	}

	g.Update(8*time.Second, idle())
	if g.Active(PowerShield) {
		t.Errorf("shield still active after 8s")
	}
}

func TestShieldAbsorbsOneHit(t *testing.T) {
	g := playing(t)
	g.activate(PowerShield)
	g.enemyBullets = []Bullet{{X: 180, Y: 418, DY: 0.25}}

	g.Update(time.Millisecond, idle())

	if g.State().Lifecycle != core.Playing {
		t.Fatalf("Lifecycle = %v, expected shield to absorb", g.State().Lifecycle)
	}
	if g.Active(PowerShield) || len(g.enemyBullets) != 0 {
		t.Errorf("shield=%v bullets=%d, expected shield spent and bullet gone", g.Active(PowerShield), len(g.enemyBullets))
	}

	g.bossBullets = []Bullet{{X: 180, Y: 418, DY: 0.3}}
	res := g.Update(time.Millisecond, idle())
	if res.State.Lifecycle != core.GameOver || !res.Finished {
		t.Errorf("Update() = %+v, expected finished gameover", res)
	}
}

func TestBossSpawnsAfterLastEnemy(t *testing.T) {
	g := playing(t)
	killFormation(g)
	g.enemies[0].Alive = true
	g.playerBullets = []Bullet{{X: 40, Y: 75, DY: -0.5}}

	g.Update(time.Millisecond, idle())
	if g.boss.Active {
		t.Fatalf("boss spawned in the same tick the last enemy died")
	}

	g.Update(16*time.Millisecond, idle())
	if !g.boss.Active || g.boss.HP != 40 {
		t.Fatalf("boss = %+v, expected active with 40 HP", g.boss)
	}
	if !approx(g.boss.X, 180+0.18*16) || g.boss.Y != 110 {
		t.Errorf("boss at (%v,%v), expected (%v,110)", g.boss.X, g.boss.Y, 180+0.18*16)
	}

	g.boss.HP = 39
	g.Update(16*time.Millisecond, idle())
	if g.boss.HP != 39 {
		t.Errorf("boss respawned: HP = %d, expected 39", g.boss.HP)
	}
}

func TestBossDamageAndWin(t *testing.T) {
	g := playing(t)
	killFormation(g)
	g.Update(0, idle())
	if !g.boss.Active {
		t.Fatalf("boss not spawned")
	}

	g.playerBullets = []Bullet{{X: g.boss.X, Y: 115, DY: -0.5}}
	g.Update(time.Millisecond, idle())
	if g.boss.HP != 39 {
		t.Errorf("boss.HP = %d, expected 39", g.boss.HP)
	}

	g.activate(PowerDouble)
	g.playerBullets = []Bullet{{X: g.boss.X, Y: 115, DY: -0.5}}
	g.Update(time.Millisecond, idle())
	if g.boss.HP != 37 {
		t.Errorf("boss.HP = %d, expected 37", g.boss.HP)
	}

	g.boss.HP = 1
	g.playerBullets = []Bullet{{X: g.boss.X, Y: 115, DY: -0.5}}
	res := g.Update(time.Millisecond, idle())
	if res.State.Lifecycle != core.Win || !res.Finished {
		t.Errorf("Update() = %+v, expected finished win", res)
	}
	if g.boss.Active {
		t.Errorf("boss still active after defeat")
	}
}

func TestBossMovement(t *testing.T) {
	g := playing(t)
	killFormation(g)
	g.Update(0, idle())
	g.boss.X, g.boss.Dir = 52, -1

	g.Update(10*time.Millisecond, idle())
	if g.boss.Dir != 1 {
		t.Errorf("boss.Dir = %v, expected bounce to 1", g.boss.Dir)
	}

	g.boss.shoot = 0
	g.Update(700*time.Millisecond, idle())
	if len(g.bossBullets) != 2 {
		t.Fatalf("len(bossBullets) = %d, expected 2", len(g.bossBullets))
	}
	l, r := g.bossBullets[0], g.bossBullets[1]
	if !approx(r.X-l.X, 35) || !approx(l.DY, 0.3) {
		t.Errorf("boss bullets = %+v %+v, expected 35px apart at 0.3px/ms", l, r)
	}
}

func TestCulling(t *testing.T) {
	g := playing(t)
	g.playerBullets = []Bullet{{X: 5, Y: -29, DY: -0.5}, {X: 5, Y: -20, DY: -0.5}}
	g.enemyBullets = []Bullet{{X: 5, Y: 505, DY: 0.25}, {X: 5, Y: 509, DY: 0.25}}
	g.powerUps = []PowerUp{{X: 5, Y: 499}, {X: 5, Y: 490}}

	g.Update(10*time.Millisecond, idle())

	if len(g.playerBullets) != 1 || len(g.enemyBullets) != 1 || len(g.powerUps) != 1 {
		t.Errorf("after cull: player=%d enemy=%d drops=%d, expected 1 each",
			len(g.playerBullets), len(g.enemyBullets), len(g.powerUps))
	}
}

func TestRestartKeepsBest(t *testing.T) {
	g := playing(t)
	g.playerBullets = []Bullet{{X: 40, Y: 75, DY: -0.5}}
	g.Update(time.Millisecond, idle())
	g.enemyBullets = []Bullet{{X: g.playerX, Y: 418, DY: 0.25}}
	g.Update(time.Millisecond, idle())
	if g.State().Lifecycle != core.GameOver {
		t.Fatalf("Lifecycle = %v, expected gameover", g.State().Lifecycle)
	}

	g.Update(0, press(core.IntentRestart))

	st := g.State()
	if st.Lifecycle != core.Ready || st.Score != 0 || st.Best != 10 {
		t.Errorf("State() = %+v, expected ready score 0 best 10", st)
	}
	if len(g.aliveEnemies()) != 32 {
		t.Errorf("alive = %d after restart, expected 32", len(g.aliveEnemies()))
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t, config.DefaultInvadersConfig())
		for i := 0; i < 500; i++ {
			in := core.NewInputFrame()
			switch {
			case i%3 == 0:
				in.Set(core.IntentPrimary)
			case i%60 == 1:
				in.Set(core.IntentLeft)
			case i%60 == 31:
				in.Release(core.IntentLeft)
			}
			g.Update(16*time.Millisecond, in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Snapshot() mismatch:\n%+v\n%+v", a, b)
	}
}
