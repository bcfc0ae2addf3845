// Package raster implements core.Canvas on an in-memory RGBA image. It
// backs PNG screenshots of games and the meme compositor.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/anago-arcade/anago/internal/core"
)

// Canvas paints logical-pixel drawing calls onto an RGBA image. Scale is
// the device pixel ratio: a 512x512 surface at scale 2 is 1024x1024 pixels.
type Canvas struct {
	img   *image.RGBA
	w, h  float64
	scale float64
	face  font.Face

	// TextHeight is the logical height of text drawn by Text.
	TextHeight float64
}

// New creates a transparent canvas of w x h logical pixels.
func New(w, h int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	px := image.Rect(0, 0, int(math.Round(float64(w)*scale)), int(math.Round(float64(h)*scale)))
	return &Canvas{
		img:        image.NewRGBA(px),
		w:          float64(w),
		h:          float64(h),
		scale:      scale,
		face:       basicfont.Face7x13,
		TextHeight: 13,
	}
}

// RGBA returns the backing image.
func (c *Canvas) RGBA() *image.RGBA {
	return c.img
}

// ColorOf converts a palette entry to an opaque RGBA color.
func ColorOf(col core.Color) color.RGBA {
	r, g, b := col.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Size returns the logical surface size.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *Canvas) px(b core.Box) image.Rectangle {
	return image.Rect(
		int(math.Round(b.X*c.scale)),
		int(math.Round(b.Y*c.scale)),
		int(math.Round(b.Right()*c.scale)),
		int(math.Round(b.Bottom()*c.scale)),
	).Intersect(c.img.Bounds())
}

// Clear fills the whole image.
func (c *Canvas) Clear(col core.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(ColorOf(col)), image.Point{}, draw.Src)
}

// Erase makes the whole image transparent.
func (c *Canvas) Erase() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// FillRect fills a logical box.
func (c *Canvas) FillRect(b core.Box, st core.Style) {
	draw.Draw(c.img, c.px(b), image.NewUniform(ColorOf(st.Color)), image.Point{}, draw.Src)
}

// FillCircle fills every pixel whose center lies within r of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, st core.Style) {
	c.FillCircleRGBA(cx, cy, r, ColorOf(st.Color))
}

// FillCircleRGBA is FillCircle with an arbitrary color, alpha included.
func (c *Canvas) FillCircleRGBA(cx, cy, r float64, col color.RGBA) {
	bounds := c.px(core.CenteredBox(cx, cy, 2*r, 2*r))
	scx, scy, sr := cx*c.scale, cy*c.scale, r*c.scale
	src := image.NewUniform(col)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if math.Hypot(float64(x)+0.5-scx, float64(y)+0.5-scy) <= sr {
				draw.Draw(c.img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
			}
		}
	}
}

// Line draws a line one logical pixel wide.
func (c *Canvas) Line(x0, y0, x1, y1 float64, st core.Style) {
	col := ColorOf(st.Color)
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))*c.scale)) + 1
	w := int(math.Max(1, math.Round(c.scale)))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int((x0 + (x1-x0)*t) * c.scale)
		y := int((y0 + (y1-y0)*t) * c.scale)
		draw.Draw(c.img, image.Rect(x, y, x+w, y+w).Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
	}
}

// Text draws s vertically centered on y using the bitmap font, scaled to
// TextHeight logical pixels.
func (c *Canvas) Text(x, y float64, s string, col core.Color, align core.Align) {
	c.TextRGBA(x, y, s, ColorOf(col), align, c.TextHeight)
}

// TextRGBA draws text at an explicit logical height and color.
func (c *Canvas) TextRGBA(x, y float64, s string, col color.RGBA, align core.Align, height float64) {
	if s == "" {
		return
	}
	glyphs := c.renderText(s, col)
	gb := glyphs.Bounds()
	k := height * c.scale / float64(gb.Dy())
	w := int(math.Round(float64(gb.Dx()) * k))
	hpx := int(math.Round(float64(gb.Dy()) * k))

	left := x * c.scale
	switch align {
	case core.AlignCenter:
		left -= float64(w) / 2
	case core.AlignRight:
		left -= float64(w)
	}
	top := y*c.scale - float64(hpx)/2
	dst := image.Rect(int(left), int(top), int(left)+w, int(top)+hpx)
	xdraw.NearestNeighbor.Scale(c.img, dst, glyphs, gb, xdraw.Over, nil)
}

// MeasureText returns the logical width of s at the given height.
func (c *Canvas) MeasureText(s string, height float64) float64 {
	m := c.face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	adv := font.MeasureString(c.face, s).Ceil()
	return float64(adv) * height / float64(lineH)
}

// renderText rasterizes s at the font's native size on a transparent image.
func (c *Canvas) renderText(s string, col color.RGBA) *image.RGBA {
	m := c.face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	adv := font.MeasureString(c.face, s).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, max(adv, 1), lineH))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(s)
	return img
}

// Image draws img scaled to fit inside b, preserving aspect ratio and
// centered ("object-contain").
func (c *Canvas) Image(img image.Image, b core.Box) bool {
	if img == nil {
		return false
	}
	dst := Contain(img.Bounds(), c.px(b))
	xdraw.CatmullRom.Scale(c.img, dst, img, img.Bounds(), xdraw.Over, nil)
	return true
}

// Contain fits src inside dst preserving aspect ratio, centered.
func Contain(src, dst image.Rectangle) image.Rectangle {
	sw, sh := float64(src.Dx()), float64(src.Dy())
	dw, dh := float64(dst.Dx()), float64(dst.Dy())
	if sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	k := math.Min(dw/sw, dh/sh)
	w := int(math.Round(sw * k))
	h := int(math.Round(sh * k))
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
