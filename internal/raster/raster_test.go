package raster

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/anago-arcade/anago/internal/core"
)

func TestNewIsTransparentAndScaled(t *testing.T) {
	c := New(512, 512, 2)
	if got := c.RGBA().Bounds().Dx(); got != 1024 {
		t.Errorf("width = %d, expected 1024", got)
	}
	if _, _, _, a := c.RGBA().At(10, 10).RGBA(); a != 0 {
		t.Errorf("alpha = %d, expected transparent", a)
	}
	w, h := c.Size()
	if w != 512 || h != 512 {
		t.Errorf("Size() = %vx%v, expected logical 512x512", w, h)
	}
}

func TestFillRectAndCircle(t *testing.T) {
	c := New(100, 100, 1)
	c.FillRect(core.Box{X: 10, Y: 10, W: 20, H: 20}, core.Solid(core.ColorPurple))
	c.FillCircle(70, 70, 10, core.Solid(core.ColorGold))

	if got := c.RGBA().RGBAAt(15, 15); got != ColorOf(core.ColorPurple) {
		t.Errorf("rect pixel = %v, expected purple", got)
	}
	if got := c.RGBA().RGBAAt(35, 35); got.A != 0 {
		t.Errorf("pixel outside rect = %v, expected transparent", got)
	}
	if got := c.RGBA().RGBAAt(70, 70); got != ColorOf(core.ColorGold) {
		t.Errorf("circle center = %v, expected gold", got)
	}
	if got := c.RGBA().RGBAAt(70, 85); got.A != 0 {
		t.Errorf("pixel outside circle = %v, expected transparent", got)
	}
}

func TestTextDrawsPixels(t *testing.T) {
	c := New(200, 40, 1)
	c.Text(100, 20, "BRRR", core.ColorWhite, core.AlignCenter)

	painted := 0
	b := c.RGBA().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.RGBA().RGBAAt(x, y).A != 0 {
				painted++
				if x < 70 || x > 130 {
					t.Fatalf("centered text leaked to x=%d", x)
				}
			}
		}
	}
	if painted == 0 {
		t.Error("Text() drew nothing")
	}
}

func TestContain(t *testing.T) {
	got := Contain(image.Rect(0, 0, 200, 100), image.Rect(0, 0, 512, 512))
	want := image.Rect(0, 128, 512, 384)
	if got != want {
		t.Errorf("Contain() = %v, expected %v", got, want)
	}
}

func TestImageAndEncode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	c := New(64, 64, 1)
	if !c.Image(src, core.Box{W: 64, H: 64}) {
		t.Fatal("Image() should be supported")
	}
	if got := c.RGBA().RGBAAt(32, 32); got.A != 0xFF {
		t.Errorf("scaled image pixel = %v, expected opaque", got)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil || decoded.Bounds().Dx() != 64 {
		t.Errorf("decoded PNG = %v, %v", decoded.Bounds(), err)
	}
}
