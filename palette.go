package termglass

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a 1-D color lookup table. Cell buffers carry palette indices
// as bytes scaled across the full 0..255 range (IndexByte); the resolver
// maps them back through AtByte. Alpha is stored but unused by decoding.
type Palette struct {
	colors []RGBA
}

// NewPalette creates a palette from a color slice. The slice is not
// copied; palettes are per-frame read-only inputs like every texture.
func NewPalette(colors []RGBA) *Palette {
	return &Palette{colors: colors}
}

// Default16 returns the classic 16-color text-mode palette.
func Default16() *Palette {
	return NewPalette([]RGBA{
		RGB(0, 0, 0),                // black
		RGB(0, 0, 0.666),            // blue
		RGB(0, 0.666, 0),            // green
		RGB(0, 0.666, 0.666),        // cyan
		RGB(0.666, 0, 0),            // red
		RGB(0.666, 0, 0.666),        // magenta
		RGB(0.666, 0.333, 0),        // brown
		RGB(0.666, 0.666, 0.666),    // light gray
		RGB(0.333, 0.333, 0.333),    // dark gray
		RGB(0.333, 0.333, 1),        // bright blue
		RGB(0.333, 1, 0.333),        // bright green
		RGB(0.333, 1, 1),            // bright cyan
		RGB(1, 0.333, 0.333),        // bright red
		RGB(1, 0.333, 1),            // bright magenta
		RGB(1, 1, 0.333),            // yellow
		RGB(1, 1, 1),                // white
	})
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }

// Color returns the color at index i, clamped to the table.
func (p *Palette) Color(i int) RGBA {
	if len(p.colors) == 0 {
		return Black
	}
	return p.colors[clampInt(i, 0, len(p.colors)-1)]
}

// IndexByte encodes palette index i as the byte a cell buffer carries:
// 255·i/(len−1), matching how the GPU path spreads indices across the
// normalized channel.
func (p *Palette) IndexByte(i int) uint8 {
	n := len(p.colors)
	if n <= 1 {
		return 0
	}
	return uint8(255 * clampInt(i, 0, n-1) / (n - 1))
}

// AtByte resolves an index byte back to its color.
func (p *Palette) AtByte(b uint8) RGBA {
	n := len(p.colors)
	if n <= 1 {
		return p.Color(0)
	}
	i := int(math.Round(float64(b) / 255 * float64(n-1)))
	return p.Color(i)
}

// Nearest returns the index of the palette color perceptually closest to
// c, using CIE Lab distance. Callers use this to quantize reference-image
// or selection colors into the palette before building a cell buffer.
func (p *Palette) Nearest(c RGBA) int {
	if len(p.colors) == 0 {
		return 0
	}
	target := colorful.Color{R: c.R, G: c.G, B: c.B}
	best := 0
	bestDist := math.Inf(1)
	for i, pc := range p.colors {
		d := target.DistanceLab(colorful.Color{R: pc.R, G: pc.G, B: pc.B})
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
