package termglass

import (
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

// Luminance weights. The tone-mapping pass and the monochrome pass use
// slightly different calibrations; both are kept verbatim because they
// encode tested visual output.
const (
	// ITU-R BT.709 weights used by the monochrome conversion.
	lumR709 = 0.2126
	lumG709 = 0.7152
	lumB709 = 0.0722

	// Weights used by the contrast/saturation/brightness combination.
	lumRTone = 0.2125
	lumGTone = 0.7154
	lumBTone = 0.0721
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Gray creates an opaque gray color.
func Gray(v float64) RGBA {
	return RGBA{R: v, G: v, B: v, A: 1}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	nrgba := c.Color().(color.NRGBA)
	return nrgba.RGBA()
}

// Luminance709 returns the ITU-R BT.709 luminance of the color.
func (c RGBA) Luminance709() float64 {
	return c.R*lumR709 + c.G*lumG709 + c.B*lumB709
}

// Scale multiplies the RGB channels by f, leaving alpha unchanged.
func (c RGBA) Scale(f float64) RGBA {
	return RGBA{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// Mix linearly interpolates the RGB channels toward o by t.
// Alpha is taken from the receiver.
func (c RGBA) Mix(o RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A,
	}
}

// IsBlack reports whether the RGB channels are exactly zero.
// Overlay rectangles use exact black as a "disabled" sentinel.
func (c RGBA) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// clamp255 clamps v to [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
