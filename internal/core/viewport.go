package core

import (
	"image"
	"math"
)

// CellAspect is how many logical pixels tall a terminal cell is relative
// to its width. Most terminal fonts are about twice as tall as wide.
const CellAspect = 2.0

// Viewport maps a game's logical pixel surface onto a grid of terminal
// cells, preserving aspect ratio and centering the result.
type Viewport struct {
	LogicalW, LogicalH float64
	Cols, Rows         int

	sx, sy       float64 // cells per logical pixel
	offX, offY   int
	usedW, usedH int
}

// NewViewport fits a logicalW x logicalH surface into cols x rows cells.
func NewViewport(logicalW, logicalH float64, cols, rows int) Viewport {
	v := Viewport{LogicalW: logicalW, LogicalH: logicalH, Cols: cols, Rows: rows}
	if logicalW <= 0 || logicalH <= 0 || cols <= 0 || rows <= 0 {
		return v
	}
	k := math.Min(float64(cols)/logicalW, float64(rows)*CellAspect/logicalH)
	v.sx = k
	v.sy = k / CellAspect
	v.usedW = Max(1, int(math.Round(logicalW*v.sx)))
	v.usedH = Max(1, int(math.Round(logicalH*v.sy)))
	v.offX = (cols - v.usedW) / 2
	v.offY = (rows - v.usedH) / 2
	return v
}

// Area returns the cell rectangle the surface occupies.
func (v Viewport) Area() Rect {
	return NewRect(v.offX, v.offY, v.usedW, v.usedH)
}

// ToCell converts a logical point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return v.offX + int(math.Floor(x*v.sx)), v.offY + int(math.Floor(y*v.sy))
}

// ToLogical converts a cell to the logical point at its center.
// ok is false when the cell lies outside the surface.
func (v Viewport) ToLogical(col, row int) (x, y float64, ok bool) {
	if v.sx == 0 || v.sy == 0 {
		return 0, 0, false
	}
	ok = v.Area().Contains(col, row)
	x = (float64(col-v.offX) + 0.5) / v.sx
	y = (float64(row-v.offY) + 0.5) / v.sy
	return x, y, ok
}

// CellRect converts a logical box to the cells it covers. A non-empty box
// always covers at least one cell.
func (v Viewport) CellRect(b Box) Rect {
	x0 := int(math.Round(b.X * v.sx))
	x1 := int(math.Round(b.Right() * v.sx))
	y0 := int(math.Round(b.Y * v.sy))
	y1 := int(math.Round(b.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(v.offX+x0, v.offY+y0, x1-x0, y1-y0)
}

// CellCanvas is a Canvas that paints a game onto a Screen through a
// Viewport. Solid fills become cell backgrounds; glyph fills and text
// become colored runes.
type CellCanvas struct {
	screen *Screen
	view   Viewport
}

// NewCellCanvas creates a canvas drawing the given viewport onto screen.
func NewCellCanvas(screen *Screen, view Viewport) *CellCanvas {
	return &CellCanvas{screen: screen, view: view}
}

// Size returns the logical surface size.
func (c *CellCanvas) Size() (float64, float64) {
	return c.view.LogicalW, c.view.LogicalH
}

// Clear paints the whole viewport area.
func (c *CellCanvas) Clear(col Color) {
	a := c.view.Area()
	for y := a.Y; y < a.Bottom(); y++ {
		for x := a.X; x < a.Right(); x++ {
			c.screen.SetCell(x, y, Cell{Rune: ' ', Bg: col})
		}
	}
}

func (c *CellCanvas) plot(x, y int, st Style) {
	if !c.view.Area().Contains(x, y) {
		return
	}
	if st.Glyph == 0 {
		c.screen.Paint(x, y, st.Color)
		return
	}
	c.screen.Ink(x, y, st.Glyph, st.Color)
}

// FillRect fills the cells covered by b.
func (c *CellCanvas) FillRect(b Box, st Style) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	r := c.view.CellRect(b)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.plot(x, y, st)
		}
	}
}

// FillCircle fills every cell whose center lies inside the circle, and
// always the cell holding the circle's center.
func (c *CellCanvas) FillCircle(cx, cy, r float64, st Style) {
	bounds := c.view.CellRect(CenteredBox(cx, cy, 2*r, 2*r))
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			lx, ly, _ := c.view.ToLogical(x, y)
			if math.Hypot(lx-cx, ly-cy) <= r {
				c.plot(x, y, st)
			}
		}
	}
	col, row := c.view.ToCell(cx, cy)
	c.plot(col, row, st)
}

// Line plots a line by sampling at sub-cell steps.
func (c *CellCanvas) Line(x0, y0, x1, y1 float64, st Style) {
	c0, r0 := c.view.ToCell(x0, y0)
	c1, r1 := c.view.ToCell(x1, y1)
	steps := Max(Abs(c1-c0), Abs(r1-r0))*2 + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col, row := c.view.ToCell(x0+(x1-x0)*t, y0+(y1-y0)*t)
		c.plot(col, row, st)
	}
}

// Text writes s on the row containing y.
func (c *CellCanvas) Text(x, y float64, s string, col Color, align Align) {
	runes := []rune(s)
	cx, cy := c.view.ToCell(x, y)
	switch align {
	case AlignCenter:
		cx -= len(runes) / 2
	case AlignRight:
		cx -= len(runes)
	}
	// Text may spill into the letterbox.
	for i, r := range runes {
		c.screen.Ink(cx+i, cy, r, col)
	}
}

// Image is not supported on cell canvases.
func (c *CellCanvas) Image(image.Image, Box) bool {
	return false
}
