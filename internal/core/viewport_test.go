package core

import "testing"

func TestViewportFitsAndCenters(t *testing.T) {
	// 360x640 into 80x40 cells: height bound, k = 80/640
	v := NewViewport(360, 640, 80, 40)
	a := v.Area()

	if a.H != 40 {
		t.Errorf("Area().H = %d, expected 40", a.H)
	}
	if a.W != 45 {
		t.Errorf("Area().W = %d, expected 45", a.W)
	}
	if a.X != (80-45)/2 || a.Y != 0 {
		t.Errorf("Area() origin = (%d, %d), expected centered", a.X, a.Y)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(320, 320, 40, 20)

	col, row := v.ToCell(160, 160)
	x, y, ok := v.ToLogical(col, row)
	if !ok {
		t.Fatal("ToLogical() of the center cell should be inside")
	}
	if x < 152 || x > 168 || y < 152 || y > 168 {
		t.Errorf("ToLogical(ToCell(160,160)) = (%v, %v), expected within one cell", x, y)
	}

	if _, _, ok := v.ToLogical(-1, 0); ok {
		t.Error("cells left of the surface must report !ok")
	}
}

func TestCellCanvasFill(t *testing.T) {
	s := NewScreen(40, 20)
	c := NewCellCanvas(s, NewViewport(320, 320, 40, 20))

	c.Clear(ColorNight)
	c.FillRect(Box{X: 0, Y: 0, W: 16, H: 16}, Solid(ColorPink))
	c.Text(160, 160, "GO", ColorWhite, AlignCenter)

	area := NewViewport(320, 320, 40, 20).Area()
	if got := s.GetCell(area.X, area.Y); got.Bg != ColorPink {
		t.Errorf("top-left cell bg = %v, expected pink", got.Bg)
	}
	if got := s.GetCell(area.Right()-1, area.Bottom()-1); got.Bg != ColorNight {
		t.Errorf("bottom-right cell bg = %v, expected night", got.Bg)
	}
	if !containsRow(s, "GO") {
		t.Error("Text() should write into the screen")
	}
	if c.Image(nil, Box{}) {
		t.Error("cell canvases cannot draw images")
	}
}

func containsRow(s *Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x+len(text) <= s.Width(); x++ {
			if s.Row(y)[x:x+len(text)] == text {
				return true
			}
		}
	}
	return false
}
