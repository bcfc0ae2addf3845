package breakout

import (
	"fmt"
	"math"
	"time"

	"github.com/anago-arcade/anago/internal/core"
)

var brickColors = map[BrickKind]core.Color{
	KindBrrr:  core.ColorGreen,
	KindDog:   core.ColorPink,
	KindJeets: core.ColorPurple,
}

// Draw renders the drifting grid, the wall, paddle, ball and overlays.
func (g *Game) Draw(dst core.Canvas, now time.Duration) {
	w, h := dst.Size()
	dst.Clear(core.ColorNight)

	const spacing = 32.0
	offset := math.Mod(core.Millis(now)*0.04, spacing)
	line := core.Glyph(core.ColorGrid, '·')
	for x := -spacing; x < w+spacing; x += spacing {
		dst.Line(x+offset, 0, x+offset, h, line)
	}
	for y := -spacing; y < h+spacing; y += spacing {
		dst.Line(0, y+offset, w, y+offset, line)
	}

	for _, b := range g.bricks {
		if !b.Alive {
			continue
		}
		dst.FillRect(b.Box, core.Solid(brickColors[b.Kind]))
		cx, cy := b.Box.Center()
		dst.Text(cx, cy, b.Kind.Label(), core.ColorBlack, core.AlignCenter)
	}

	paddle := core.CenteredBox(g.paddleX, g.PaddleY(), g.cfg.Paddle.Width, g.cfg.Paddle.Height)
	dst.FillRect(paddle, core.Solid(core.ColorPurple))
	dst.Text(g.paddleX, g.PaddleY(), "BRRR", core.ColorWhite, core.AlignCenter)

	dst.FillCircle(g.ball.X, g.ball.Y, g.cfg.Ball.Radius, core.Glyph(core.ColorLavender, '●'))
	dst.FillCircle(g.ball.X+2, g.ball.Y-1, 2, core.Solid(core.ColorBlack))

	dst.Text(10, 24, fmt.Sprintf("SCORE %d", g.session.Score), core.ColorWhite, core.AlignLeft)
	dst.Text(w-10, 24, fmt.Sprintf("BEST %d", g.session.Best), core.ColorWhite, core.AlignRight)

	switch g.session.State {
	case core.Ready:
		core.Banner(dst, "ANAGO BREAKOUT", core.ColorWhite,
			"Move: Arrows / A-D / Drag",
			"Break BRRR blocks · Don't drop the ball")
	case core.Win:
		core.Banner(dst, "SECTOR CLEARED", core.ColorGreen, g.scoreLines()...)
	case core.GameOver:
		core.Banner(dst, "GAME OVER", core.ColorRose, g.scoreLines()...)
	}
}

func (g *Game) scoreLines() []string {
	return []string{
		fmt.Sprintf("SCORE %d", g.session.Score),
		fmt.Sprintf("BEST %d", g.session.Best),
		"Tap / Space to restart",
	}
}
