package core

import "image"

// Align anchors a text run horizontally around its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style describes how a filled shape is painted. Glyph is only used by
// cell-based canvases; zero means "solid background".
type Style struct {
	Color Color
	Glyph rune
}

// Solid returns a solid-fill style of the given color.
func Solid(c Color) Style {
	return Style{Color: c}
}

// Glyph returns a style that draws r in color c on cell canvases.
func Glyph(c Color, r rune) Style {
	return Style{Color: c, Glyph: r}
}

// Canvas is the 2D surface the Draw stage paints on. Coordinates are in
// the game's logical pixels; implementations scale to their device.
// Text is vertically centered on y.
type Canvas interface {
	Size() (w, h float64)
	Clear(c Color)
	FillRect(b Box, st Style)
	FillCircle(cx, cy, r float64, st Style)
	Line(x0, y0, x1, y1 float64, st Style)
	Text(x, y float64, s string, c Color, align Align)
	// Image blits img scaled into b. It returns false when the canvas
	// cannot draw images, so callers fall back to a procedural shape.
	Image(img image.Image, b Box) bool
}

// Banner draws a centered overlay panel with a title and hint lines.
// Every game uses it for its ready and terminal overlays.
func Banner(dst Canvas, title string, titleColor Color, lines ...string) {
	w, h := dst.Size()
	panelH := 44 + float64(len(lines))*18
	panel := CenteredBox(w/2, h/2, w*0.8, panelH)
	dst.FillRect(panel, Solid(ColorDeep))
	dst.FillRect(Box{X: panel.X, Y: panel.Y, W: panel.W, H: 2}, Solid(ColorPurple))
	dst.FillRect(Box{X: panel.X, Y: panel.Bottom() - 2, W: panel.W, H: 2}, Solid(ColorPurple))

	y := panel.Y + 18
	dst.Text(w/2, y, title, titleColor, AlignCenter)
	for _, line := range lines {
		y += 18
		dst.Text(w/2, y, line, ColorLavender, AlignCenter)
	}
}
