package meme

import (
	"image"
	"image/color"

	"github.com/anago-arcade/anago/internal/assets"
	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/raster"
)

var (
	captionInk    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	captionShadow = color.RGBA{A: 0xFF}
)

// Composer renders looks onto a transparent square canvas.
type Composer struct {
	cfg    config.MemeConfig
	assets *assets.Loader
}

// NewComposer creates a composer. A nil loader draws every layer with its
// procedural fallback.
func NewComposer(cfg config.MemeConfig, a *assets.Loader) *Composer {
	if cfg.Size <= 0 {
		cfg.Size = config.DefaultMemeConfig().Size
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	return &Composer{cfg: cfg, assets: a}
}

// Size returns the logical edge length of the meme.
func (c *Composer) Size() int {
	return c.cfg.Size
}

// Compose renders l at the configured pixel ratio.
func (c *Composer) Compose(l *Look) *image.RGBA {
	return c.ComposeAt(l, float64(c.cfg.Scale))
}

// ComposeAt renders l at an arbitrary pixel ratio. Previews use ratios
// below one.
func (c *Composer) ComposeAt(l *Look, scale float64) *image.RGBA {
	cv := raster.New(c.cfg.Size, c.cfg.Size, scale)
	full := core.Box{W: float64(c.cfg.Size), H: float64(c.cfg.Size)}

	if !c.layer(cv, c.cfg.Base, full) {
		drawBaseDog(cv, full)
	}
	for _, t := range l.Layers() {
		if !c.layer(cv, t.Src, full) {
			drawTraitFallback(cv, t, full)
		}
	}

	top, bottom := l.Captions()
	c.caption(cv, top, true)
	c.caption(cv, bottom, false)
	return cv.RGBA()
}

// Missing lists the asset paths that Compose would replace with fallbacks.
func (c *Composer) Missing(l *Look) []string {
	var out []string
	if !c.assets.Exists(c.cfg.Base) {
		out = append(out, c.cfg.Base)
	}
	for _, t := range l.Layers() {
		if !c.assets.Exists(t.Src) {
			out = append(out, t.Src)
		}
	}
	return out
}

func (c *Composer) layer(cv *raster.Canvas, src string, b core.Box) bool {
	img, err := c.assets.Image(src)
	if err != nil {
		return false
	}
	return cv.Image(img, b)
}

// caption draws s centered horizontally, Margin pixels from the top or
// bottom edge. Text wider than WidthRatio of the canvas is shrunk to fit.
func (c *Composer) caption(cv *raster.Canvas, s string, top bool) {
	if s == "" {
		return
	}
	size := float64(c.cfg.Size)
	height := float64(c.cfg.Caption.Height)
	if maxW := size * c.cfg.Caption.WidthRatio; maxW > 0 {
		if w := cv.MeasureText(s, height); w > maxW {
			height *= maxW / w
		}
	}
	y := float64(c.cfg.Caption.Margin) + height/2
	if !top {
		y = size - y
	}
	x := size / 2
	for _, d := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}, {-1, -1}, {1, 1}, {-1, 1}, {1, -1}} {
		cv.TextRGBA(x+d[0], y+d[1], s, captionShadow, core.AlignCenter, height)
	}
	cv.TextRGBA(x, y, s, captionInk, core.AlignCenter, height)
}
