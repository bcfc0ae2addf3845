package snake

import (
	"fmt"
	"time"

	"github.com/anago-arcade/anago/internal/core"
)

// Draw renders the board, the snake, the token and the overlays.
func (g *Game) Draw(dst core.Canvas, now time.Duration) {
	w, h := dst.Size()
	cell := float64(g.cfg.Grid.Cell)
	dst.Clear(core.ColorNight)

	// Grid
	grid := core.Glyph(core.ColorGrid, '·')
	for x := 0; x <= g.cfg.Grid.Cols; x++ {
		dst.Line(float64(x)*cell, 0, float64(x)*cell, h, grid)
	}
	for y := 0; y <= g.cfg.Grid.Rows; y++ {
		dst.Line(0, float64(y)*cell, w, float64(y)*cell, grid)
	}

	// Glitch line drifting one row every 120ms
	row := int(now/(120*time.Millisecond)) % g.cfg.Grid.Rows
	dst.FillRect(core.Box{X: 0, Y: float64(row)*cell + cell/2, W: w, H: 1}, core.Glyph(core.ColorPurple, '─'))

	// Token
	const inset = 3
	dst.FillRect(core.Box{
		X: float64(g.food.X)*cell + inset,
		Y: float64(g.food.Y)*cell + inset,
		W: cell - 2*inset,
		H: cell - 2*inset,
	}, core.Glyph(core.ColorRose, '$'))

	for i := len(g.snake) - 1; i >= 0; i-- {
		p := g.snake[i]
		b := core.Box{X: float64(p.X)*cell + 1, Y: float64(p.Y)*cell + 1, W: cell - 2, H: cell - 2}
		if i == 0 {
			dst.FillRect(b, core.Glyph(core.ColorPink, '@'))
		} else {
			dst.FillRect(b, core.Glyph(core.ColorPurple, 'o'))
		}
	}

	dst.Text(8, 18, fmt.Sprintf("SCORE: %d", g.session.Score), core.ColorWhite, core.AlignLeft)
	dst.Text(w-8, 18, fmt.Sprintf("BEST: %d", g.session.Best), core.ColorWhite, core.AlignRight)

	switch g.session.State {
	case core.Ready:
		core.Banner(dst, "ANAGO SNAKE", core.ColorPink, "Tap or Swipe to start")
	case core.GameOver:
		core.Banner(dst, "GAME OVER", core.ColorRed,
			fmt.Sprintf("Score: %d  ·  Best: %d", g.session.Score, g.session.Best),
			"Tap or Swipe to restart")
	}
}
