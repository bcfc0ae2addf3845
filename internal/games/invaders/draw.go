package invaders

import (
	"fmt"
	"math"
	"time"

	"github.com/anago-arcade/anago/internal/core"
)

var (
	faceColors  = [...]core.Color{core.ColorPink, core.ColorBone, core.ColorLavender, core.ColorRose}
	powerColors = [...]core.Color{
		PowerRapid:  core.ColorLavender,
		PowerDouble: core.ColorPink,
		PowerShield: core.ColorGreen,
		PowerSpeed:  core.ColorCyan,
	}
)

// Draw renders the CRT grid, formation or boss, ship, shots and overlays.
func (g *Game) Draw(dst core.Canvas, now time.Duration) {
	w, h := dst.Size()
	dst.Clear(core.ColorNight)

	line := core.Glyph(core.ColorGrid, '·')
	for x := 0.0; x < w; x += 24 {
		dst.Line(x+0.5, 0, x+0.5, h, line)
	}
	for y := 0.0; y < h; y += 24 {
		dst.Line(0, y+0.5, w, y+0.5, line)
	}
	glitchY := float64(int64(now/(110*time.Millisecond))%int64(h)) + 0.5
	dst.Line(0, glitchY, w, glitchY, core.Glyph(core.ColorRose, '─'))

	t := core.Millis(now)
	for _, e := range g.enemies {
		if e.Alive {
			g.drawDog(dst, e, t)
		}
	}
	if g.boss.Active {
		g.drawBoss(dst)
	}
	g.drawShip(dst)

	for _, b := range g.playerBullets {
		dst.FillRect(core.Box{X: b.X - 1, Y: b.Y - 8, W: 2, H: 12}, core.Glyph(core.ColorLavender, '|'))
	}
	for _, b := range g.enemyBullets {
		dst.FillRect(core.Box{X: b.X - 2, Y: b.Y - 6, W: 4, H: 10}, core.Glyph(core.ColorRose, '!'))
	}
	for _, b := range g.bossBullets {
		dst.FillRect(core.Box{X: b.X - 2, Y: b.Y - 6, W: 4, H: 12}, core.Glyph(core.ColorRose, '!'))
	}
	for _, p := range g.powerUps {
		dst.FillCircle(p.X, p.Y, 6, core.Solid(powerColors[p.Kind]))
		dst.Text(p.X, p.Y, p.Kind.Label(), core.ColorBlack, core.AlignCenter)
	}

	dst.Text(10, 18, fmt.Sprintf("SCORE: %d", g.session.Score), core.ColorWhite, core.AlignLeft)
	dst.Text(w-10, 18, fmt.Sprintf("BEST: %d", g.session.Best), core.ColorWhite, core.AlignRight)

	switch g.session.State {
	case core.Ready:
		core.Banner(dst, "DOG INVADERS", core.ColorWhite,
			"Move: Arrows / A-D · Shoot: Space / Tap",
			"Bone ship vs. neon dog-head invaders")
	case core.Win:
		core.Banner(dst, "SECTOR CLEARED", core.ColorGreen, g.scoreLine(), "Tap or Space to restart")
	case core.GameOver:
		core.Banner(dst, "GAME OVER", core.ColorRose, g.scoreLine(), "Tap or Space to restart")
	}
}

func (g *Game) scoreLine() string {
	return fmt.Sprintf("Score: %d  ·  Best: %d", g.session.Score, g.session.Best)
}

func (g *Game) drawDog(dst core.Canvas, e Enemy, t float64) {
	const head = 18.0
	x := e.X + math.Sin(t/160+e.Y*0.1+e.X*0.05)*1.5
	dst.FillRect(core.CenteredBox(x, e.Y, head, head), core.Glyph(faceColors[e.Row%len(faceColors)], 'W'))
	dst.FillRect(core.Box{X: x - head/2, Y: e.Y - head/2 - 3, W: 4, H: 5}, core.Solid(core.ColorPurple))
	dst.FillRect(core.Box{X: x + head/2 - 4, Y: e.Y - head/2 - 3, W: 4, H: 5}, core.Solid(core.ColorPurple))
	dst.FillCircle(x-4, e.Y-1, 2, core.Solid(core.ColorBlack))
	dst.FillCircle(x+4, e.Y-1, 2, core.Solid(core.ColorBlack))
}

func (g *Game) drawBoss(dst core.Canvas) {
	b := g.cfg.Boss
	x, y := g.boss.X, g.boss.Y
	dst.FillRect(core.CenteredBox(x, y, b.Width, b.Height), core.Glyph(core.ColorBone, '▓'))
	dst.FillCircle(x-10, y-4, 4, core.Solid(core.ColorBlack))
	dst.FillCircle(x+10, y-4, 4, core.Solid(core.ColorBlack))

	ratio := math.Max(float64(g.boss.HP), 0) / float64(b.MaxHP)
	bar := core.Box{X: x - 30, Y: y - b.Height/2 - 14, W: 60, H: 5}
	dst.FillRect(bar, core.Solid(core.ColorStone))
	bar.W *= ratio
	dst.FillRect(bar, core.Solid(core.ColorPurple))
}

func (g *Game) drawShip(dst core.Canvas) {
	p := g.cfg.Player
	x, y := g.playerX, p.Y
	const endRadius = 7
	dst.FillRect(core.CenteredBox(x, y, p.Width-2*endRadius, 10), core.Glyph(core.ColorBone, '='))
	for _, ex := range []float64{x - p.Width/2 + endRadius, x + p.Width/2 - endRadius} {
		dst.FillCircle(ex, y-5, endRadius/2+1, core.Solid(core.ColorBone))
		dst.FillCircle(ex, y+5, endRadius/2+1, core.Solid(core.ColorBone))
	}
	if g.Active(PowerShield) {
		dst.FillCircle(x, y-24, 3, core.Glyph(core.ColorGreen, '^'))
	}
}
