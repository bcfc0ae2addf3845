package flappy

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/anago-arcade/anago/internal/core"
)

const spriteSize = 40

// Draw renders the grid, ground, pipes, the flyer and overlays.
func (g *Game) Draw(dst core.Canvas, now time.Duration) {
	w, h := dst.Size()
	dst.Clear(core.ColorNight)

	const spacing = 40.0
	offset := math.Mod(core.Millis(now)*0.05, spacing)
	line := core.Glyph(core.ColorGrid, '·')
	for x := -spacing; x < w+spacing; x += spacing {
		dst.Line(x+offset, 0, x+offset, h, line)
	}
	for y := -spacing; y < h+spacing; y += spacing {
		dst.Line(0, y+offset, w, y+offset, line)
	}

	ground := g.cfg.Physics.GroundHeight
	dst.FillRect(core.Box{X: 0, Y: h - ground, W: w, H: ground}, core.Solid(core.ColorDeep))

	for _, p := range g.pipes {
		boxes := g.pipeBoxes(p)
		for _, b := range boxes {
			dst.FillRect(b, core.Glyph(core.ColorPurple, '█'))
		}
		stripe := core.Glyph(core.ColorLavender, '│')
		dst.FillRect(core.Box{X: p.X + 6, Y: 0, W: 4, H: boxes[0].H}, stripe)
		dst.FillRect(core.Box{X: p.X + g.cfg.Pipes.Width - 10, Y: boxes[1].Y, W: 4, H: boxes[1].H}, stripe)
	}

	g.drawPlayer(dst)

	dst.Text(w/2, 46, strconv.Itoa(g.session.Score), core.ColorWhite, core.AlignCenter)
	dst.Text(w-10, 22, fmt.Sprintf("BEST %d", g.session.Best), core.ColorLavender, core.AlignRight)

	switch g.session.State {
	case core.Ready:
		core.Banner(dst, "FLAPPY ANAGO", core.ColorWhite,
			"TAP / CLICK / SPACE TO START",
			"AVOID THE GLITCH PIPES")
	case core.GameOver:
		core.Banner(dst, "GAME OVER", core.ColorRose,
			fmt.Sprintf("SCORE %d", g.session.Score),
			fmt.Sprintf("BEST %d", g.session.Best),
			"TAP / SPACE TO RESTART")
	}
}

func (g *Game) drawPlayer(dst core.Canvas) {
	x, y, r := g.cfg.Player.X, g.playerY, g.cfg.Player.Radius
	if g.sprite != nil && dst.Image(g.sprite, core.CenteredBox(x, y, spriteSize, spriteSize)) {
		return
	}
	dst.FillCircle(x, y, r, core.Glyph(core.ColorPurple, '●'))
	dst.FillCircle(x+6, y-4, 4, core.Solid(core.ColorWhite))
	dst.FillCircle(x+7, y-4, 2, core.Solid(core.ColorBlack))
}
