package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anago-arcade/anago/internal/core"
)

// Painter turns cell buffers into styled strings for one output. SSH
// sessions get their own renderer so color detection follows the client.
type Painter struct {
	r      *lipgloss.Renderer
	styles map[[2]core.Color]lipgloss.Style
}

// NewPainter creates a painter for r. A nil renderer uses the default one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{r: r, styles: make(map[[2]core.Color]lipgloss.Style)}
}

// Renderer returns the lipgloss renderer in use.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.r
}

// Hex returns the palette entry as a lipgloss color.
func Hex(c core.Color) lipgloss.Color {
	r, g, b := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

func (p *Painter) style(fg, bg core.Color) lipgloss.Style {
	key := [2]core.Color{fg, bg}
	if st, ok := p.styles[key]; ok {
		return st
	}
	st := p.r.NewStyle()
	if fg != core.ColorDefault {
		st = st.Foreground(Hex(fg))
	}
	if bg != core.ColorDefault {
		st = st.Background(Hex(bg))
	}
	p.styles[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderHalfBlocks draws img two pixels per cell with '▀', the upper
// pixel as foreground and the lower one as background. Transparent pixels
// are blended over bg.
func (p *Painter) RenderHalfBlocks(img image.Image, bg core.Color) string {
	b := img.Bounds()
	br, bgG, bb := bg.RGB()
	back := color.RGBA{R: br, G: bgG, B: bb, A: 0xFF}

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteRune('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := over(img.At(x, y), back)
			bottom := back
			if y+1 < b.Max.Y {
				bottom = over(img.At(x, y+1), back)
			}
			st := p.r.NewStyle().
				Foreground(lipgloss.Color(hexRGBA(top))).
				Background(lipgloss.Color(hexRGBA(bottom)))
			sb.WriteString(st.Render("▀"))
		}
	}
	return sb.String()
}

// over composites c onto an opaque background.
func over(c color.Color, back color.RGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	if a == 0xFFFF {
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF}
	}
	inv := 0xFFFF - a
	mix := func(src uint32, dst uint8) uint8 {
		return uint8((src + uint32(dst)*0x101*inv/0xFFFF) >> 8)
	}
	return color.RGBA{R: mix(r, back.R), G: mix(g, back.G), B: mix(b, back.B), A: 0xFF}
}

func hexRGBA(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
