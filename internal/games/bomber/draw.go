package bomber

import (
	"fmt"
	"math"
	"time"

	"github.com/anago-arcade/anago/internal/core"
)

// Draw renders the scrolling grid, tiles, bombs, blasts, the dog and HUD.
func (g *Game) Draw(dst core.Canvas, now time.Duration) {
	w, h := dst.Size()
	dst.Clear(core.ColorNight)

	const spacing = 24.0
	offset := math.Mod(core.Millis(now)*0.04, spacing)
	line := core.Glyph(core.ColorGrid, '·')
	for x := -spacing; x < w+spacing; x += spacing {
		dst.Line(x+offset, 0, x+offset, h, line)
	}
	for y := -spacing; y < h+spacing; y += spacing {
		dst.Line(0, y+offset, w, y+offset, line)
	}

	g.drawTiles(dst)
	g.drawBombs(dst)
	g.drawExplosions(dst)
	g.drawPlayer(dst)

	dst.Text(12, 22, fmt.Sprintf("SCORE: %d", g.session.Score), core.ColorWhite, core.AlignLeft)
	dst.Text(w-12, 22, fmt.Sprintf("BEST: %d", g.session.Best), core.ColorWhite, core.AlignRight)

	top := float64(g.cfg.Grid.Top)
	switch g.session.State {
	case core.Ready:
		dst.Text(w/2, top-32, "DOG BOMBER", core.ColorWhite, core.AlignCenter)
		dst.Text(w/2, top-12, "Move: tap around dog · Bomb: tap on dog (or Space / Enter)", core.ColorLavender, core.AlignCenter)
	case core.Win:
		core.Banner(dst, "AREA CLEARED", core.ColorGreen, g.scoreLine(), "Tap / Space / Enter to restart")
	case core.GameOver:
		core.Banner(dst, "DOG FRIED", core.ColorRose, g.scoreLine(), "Tap / Space / Enter to restart")
	}
}

func (g *Game) scoreLine() string {
	return fmt.Sprintf("Score: %d  ·  Best: %d", g.session.Score, g.session.Best)
}

func (g *Game) tileBox(x, y int, inset float64) core.Box {
	t := float64(g.cfg.Grid.Tile)
	return core.Box{
		X: g.gridLeft() + float64(x)*t + inset,
		Y: float64(g.cfg.Grid.Top) + float64(y)*t + inset,
		W: t - 2*inset,
		H: t - 2*inset,
	}
}

func (g *Game) drawTiles(dst core.Canvas) {
	for y, row := range g.grid {
		for x, tile := range row {
			switch tile {
			case TileSolid:
				dst.FillRect(g.tileBox(x, y, 2), core.Solid(core.ColorStone))
			case TileCrate:
				b := g.tileBox(x, y, 3)
				dst.FillRect(b, core.Glyph(core.ColorPurple, '▒'))
				cx, cy := b.Center()
				dst.Text(cx, cy, "DOG", core.ColorBone, core.AlignCenter)
			}
		}
	}
}

func (g *Game) drawBombs(dst core.Canvas) {
	fuse := float64(g.cfg.Bombs.FuseMs)
	t := float64(g.cfg.Grid.Tile)
	for _, b := range g.bombs {
		cx, cy := g.tileCenter(b.X, b.Y)
		ratio := 0.0
		if fuse > 0 {
			ratio = math.Max(core.Millis(b.Fuse.Left()), 0) / fuse
		}
		r := t / 3 * (1 + 0.15*math.Sin((1-ratio)*10))
		dst.FillCircle(cx, cy, r, core.Glyph(core.ColorLavender, '●'))
		dst.Line(cx, cy-r, cx, cy-r-6, core.Glyph(core.ColorOrange, '\''))
	}
}

func (g *Game) drawExplosions(dst core.Canvas) {
	t := float64(g.cfg.Grid.Tile)
	arm := t * 0.28
	size := t * 0.9
	for _, e := range g.explosions {
		cx, cy := g.tileCenter(e.X, e.Y)
		st := core.Glyph(core.ColorRose, '✶')
		dst.FillRect(core.CenteredBox(cx, cy, arm, size), st)
		dst.FillRect(core.CenteredBox(cx, cy, size, arm), st)
	}
}

func (g *Game) drawPlayer(dst core.Canvas) {
	cx, cy := g.PlayerCenter()
	size := float64(g.cfg.Grid.Tile) * 0.7
	half := size / 2
	earW, earH := size*0.25, size*0.35

	dst.FillRect(core.Box{X: cx - half + 2, Y: cy - half - earH*0.4, W: earW, H: earH}, core.Solid(core.ColorPurple))
	dst.FillRect(core.Box{X: cx + half - earW - 2, Y: cy - half - earH*0.4, W: earW, H: earH}, core.Solid(core.ColorPurple))
	dst.FillRect(core.CenteredBox(cx, cy, size, size), core.Glyph(core.ColorBone, '@'))
	dst.FillCircle(cx-size*0.18, cy-size*0.05, 2.5, core.Solid(core.ColorBlack))
	dst.FillCircle(cx+size*0.18, cy-size*0.05, 2.5, core.Solid(core.ColorBlack))
}
