package termglass

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Pixmap is a rectangular RGBA pixel buffer. It is the texture type used
// throughout the pipeline: the compositor writes one, the output stage
// samples it, and callers read the final result from one.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// silently discarded.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel. Out-of-bounds reads return
// Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// SampleNearest samples the pixmap at normalized coordinates (u, v) with
// nearest-neighbor filtering. Coordinates are clamped to the edge, matching
// CLAMP_TO_EDGE texture addressing.
func (p *Pixmap) SampleNearest(u, v float64) RGBA {
	x := int(math.Floor(u * float64(p.width)))
	y := int(math.Floor(v * float64(p.height)))
	return p.GetPixel(clampInt(x, 0, p.width-1), clampInt(y, 0, p.height-1))
}

// SampleBilinear samples the pixmap at normalized coordinates (u, v) with
// bilinear filtering and edge clamping.
func (p *Pixmap) SampleBilinear(u, v float64) RGBA {
	fx := u*float64(p.width) - 0.5
	fy := v*float64(p.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clampInt(x0+1, 0, p.width-1)
	y1 := clampInt(y0+1, 0, p.height-1)
	x0 = clampInt(x0, 0, p.width-1)
	y0 = clampInt(y0, 0, p.height-1)

	c00 := p.GetPixel(x0, y0)
	c10 := p.GetPixel(x1, y0)
	c01 := p.GetPixel(x0, y1)
	c11 := p.GetPixel(x1, y1)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	return RGBA{
		R: lerp(lerp(c00.R, c10.R, tx), lerp(c01.R, c11.R, tx), ty),
		G: lerp(lerp(c00.G, c10.G, tx), lerp(c01.G, c11.G, tx), ty),
		B: lerp(lerp(c00.B, c10.B, tx), lerp(c01.B, c11.B, tx), ty),
		A: lerp(lerp(c00.A, c10.A, tx), lerp(c01.A, c11.A, tx), ty),
	}
}

// CopyPixel copies the raw bytes of pixel (sx, sy) from src to (x, y).
// Both coordinates must be in bounds; this is the exact-passthrough path
// used by the output stage, so no float round trip happens here.
func (p *Pixmap) CopyPixel(x, y int, src *Pixmap, sx, sy int) {
	di := (y*p.width + x) * 4
	si := (sy*src.width + sx) * 4
	copy(p.data[di:di+4], src.data[si:si+4])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
