package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/raster"
)

// Canvas draws a game onto an ebiten image in logical pixels. The
// window's Layout makes logical and screen pixels the same.
type Canvas struct {
	dst    *ebiten.Image
	w, h   float64
	face   text.Face
	opts   text.DrawOptions
	images map[image.Image]*ebiten.Image
}

// NewCanvas creates a canvas for a w x h logical surface.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		w:      float64(w),
		h:      float64(h),
		face:   text.NewGoXFace(basicfont.Face7x13),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Target sets the image the next Draw paints on.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the logical surface size.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear fills the whole target.
func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(raster.ColorOf(col))
}

// FillRect fills b.
func (c *Canvas) FillRect(b core.Box, st core.Style) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), raster.ColorOf(st.Color), false)
}

// FillCircle fills an antialiased circle.
func (c *Canvas) FillCircle(cx, cy, r float64, st core.Style) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), raster.ColorOf(st.Color), true)
}

// Line strokes a one pixel line.
func (c *Canvas) Line(x0, y0, x1, y1 float64, st core.Style) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, raster.ColorOf(st.Color), true)
}

// Text draws s vertically centered on y.
func (c *Canvas) Text(x, y float64, s string, col core.Color, align core.Align) {
	c.opts.GeoM.Reset()
	c.opts.GeoM.Translate(x, y)
	c.opts.ColorScale.Reset()
	c.opts.ColorScale.ScaleWithColor(raster.ColorOf(col))
	c.opts.LayoutOptions.PrimaryAlign = textAlign(align)
	c.opts.LayoutOptions.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.face, &c.opts)
}

func textAlign(a core.Align) text.Align {
	switch a {
	case core.AlignCenter:
		return text.AlignCenter
	case core.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// Image draws img scaled to fit inside b, keeping its aspect ratio.
// Uploaded textures are cached per source image.
func (c *Canvas) Image(img image.Image, b core.Box) bool {
	if img == nil || b.W <= 0 || b.H <= 0 {
		return false
	}
	tex, ok := c.images[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		c.images[img] = tex
	}

	src := img.Bounds()
	box := image.Rect(int(b.X), int(b.Y), int(b.Right()), int(b.Bottom()))
	fit := raster.Contain(src, box)
	if fit.Empty() {
		return true
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(fit.Dx())/float64(src.Dx()), float64(fit.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(fit.Min.X), float64(fit.Min.Y))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(tex, op)
	return true
}

var _ core.Canvas = (*Canvas)(nil)

