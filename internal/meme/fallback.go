package meme

import (
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/raster"
)

// Fallback shapes are laid out on a unit square and scaled into the
// target box, so they line up with each other at any meme size.

func unit(b core.Box, x, y, w, h float64) core.Box {
	return core.Box{X: b.X + x*b.W, Y: b.Y + y*b.H, W: w * b.W, H: h * b.H}
}

func disc(cv *raster.Canvas, b core.Box, cx, cy, r float64, col core.Color) {
	cv.FillCircle(b.X+cx*b.W, b.Y+cy*b.H, r*b.W, core.Solid(col))
}

// drawBaseDog paints a flat purple Frenchie head.
func drawBaseDog(cv *raster.Canvas, b core.Box) {
	disc(cv, b, 0.30, 0.30, 0.11, core.ColorPurple)
	disc(cv, b, 0.70, 0.30, 0.11, core.ColorPurple)
	disc(cv, b, 0.30, 0.30, 0.06, core.ColorBone)
	disc(cv, b, 0.70, 0.30, 0.06, core.ColorBone)
	disc(cv, b, 0.50, 0.55, 0.30, core.ColorPurple)
	disc(cv, b, 0.50, 0.66, 0.14, core.ColorLavender)
	disc(cv, b, 0.40, 0.48, 0.05, core.ColorWhite)
	disc(cv, b, 0.60, 0.48, 0.05, core.ColorWhite)
	disc(cv, b, 0.40, 0.48, 0.025, core.ColorBlack)
	disc(cv, b, 0.60, 0.48, 0.025, core.ColorBlack)
	disc(cv, b, 0.50, 0.60, 0.035, core.ColorBlack)
}

// drawTraitFallback paints a simple placeholder in the slot of t's category.
func drawTraitFallback(cv *raster.Canvas, t Trait, b core.Box) {
	col := fallbackColor(t.ID)
	switch t.Category {
	case Hats:
		cv.FillRect(unit(b, 0.26, 0.22, 0.48, 0.05), core.Solid(col))
		cv.FillRect(unit(b, 0.34, 0.08, 0.32, 0.15), core.Solid(col))
	case Eyes:
		disc(cv, b, 0.40, 0.48, 0.045, col)
		disc(cv, b, 0.60, 0.48, 0.045, col)
	case Glasses:
		cv.FillRect(unit(b, 0.32, 0.44, 0.15, 0.08), core.Solid(col))
		cv.FillRect(unit(b, 0.53, 0.44, 0.15, 0.08), core.Solid(col))
		cv.FillRect(unit(b, 0.47, 0.46, 0.06, 0.02), core.Solid(col))
	case Mouth:
		cv.FillRect(unit(b, 0.42, 0.70, 0.16, 0.03), core.Solid(col))
	case Neck:
		cv.FillRect(unit(b, 0.28, 0.84, 0.44, 0.05), core.Solid(col))
	case Nose:
		disc(cv, b, 0.50, 0.60, 0.045, col)
	}
}

var fallbackPalette = []core.Color{
	core.ColorGold, core.ColorPink, core.ColorCyan, core.ColorGreen,
	core.ColorOrange, core.ColorRed, core.ColorRose, core.ColorWhite,
}

// fallbackColor picks a stable color per trait so different traits of the
// same category remain distinguishable.
func fallbackColor(id string) core.Color {
	var h uint32
	for i := 0; i < len(id); i++ {
		h = h*31 + uint32(id[i])
	}
	return fallbackPalette[h%uint32(len(fallbackPalette))]
}
