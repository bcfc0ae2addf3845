package core

// Color is an entry of the arcade palette. Every frontend maps the same
// entries: the TUI to true-color lipgloss styles, the raster and window
// canvases to RGBA.
type Color uint8

const (
	ColorDefault  Color = iota
	ColorNight          // #05010A page background
	ColorDeep           // #0B0616 panel background
	ColorGrid           // #2A1452 grid and scanlines
	ColorPurple         // #7A3FFF brand purple
	ColorLavender       // #C4B5FD
	ColorPink           // #F472FF neon pink
	ColorRose           // #FF6BD5 hostile bullets
	ColorBone           // #F9A8D4 bone highlight
	ColorGold           // #FACC15
	ColorOrange         // #FB923C
	ColorRed            // #EF4444
	ColorGreen          // #22C55E
	ColorCyan           // #22D3EE
	ColorSlate          // #64748B
	ColorStone          // #334155 solid tiles
	ColorCrate          // #92400E crates
	ColorWhite          // #F8FAFC
	ColorBlack          // #000000
)

// rgb holds the 24-bit value of every palette entry.
var rgb = [...]uint32{
	ColorDefault:  0xF8FAFC,
	ColorNight:    0x05010A,
	ColorDeep:     0x0B0616,
	ColorGrid:     0x2A1452,
	ColorPurple:   0x7A3FFF,
	ColorLavender: 0xC4B5FD,
	ColorPink:     0xF472FF,
	ColorRose:     0xFF6BD5,
	ColorBone:     0xF9A8D4,
	ColorGold:     0xFACC15,
	ColorOrange:   0xFB923C,
	ColorRed:      0xEF4444,
	ColorGreen:    0x22C55E,
	ColorCyan:     0x22D3EE,
	ColorSlate:    0x64748B,
	ColorStone:    0x334155,
	ColorCrate:    0x92400E,
	ColorWhite:    0xF8FAFC,
	ColorBlack:    0x000000,
}

// RGB returns the red, green and blue components of the color.
func (c Color) RGB() (r, g, b uint8) {
	v := rgb[ColorDefault]
	if int(c) < len(rgb) {
		v = rgb[c]
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	r, g, b := c.RGB()
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{r, g, b} {
		buf[1+i*2] = digits[v>>4]
		buf[2+i*2] = digits[v&0x0F]
	}
	return string(buf)
}
