package termglass

import "math"

// Decorations is the bit-packed per-cell decoration byte. It is
// transported through an 8-bit texture channel as a normalized float, so
// decoding must round to the nearest integer before testing bits —
// floating-point threshold comparisons would drift.
type Decorations uint8

const (
	// DecorUnderline draws a line across the bottom 1/16 of the cell.
	DecorUnderline Decorations = 1 << iota
	// DecorDoubleUnderline draws a second line one band higher.
	DecorDoubleUnderline
	// DecorStrikethrough draws a line through the middle of the cell.
	DecorStrikethrough
	// DecorDoubleHeight marks a glyph stretched across two cell rows.
	DecorDoubleHeight
	// DecorDoubleHeightBottom marks the second physical row of a
	// double-height glyph; the glyph sampler selects the bottom half.
	DecorDoubleHeightBottom
)

// DecodeDecorations decodes a normalized [0,1] channel value into
// decoration bits: round(255·v) interpreted as a bit field. Out-of-range
// input decodes to whichever bits land in range; there is no error path.
func DecodeDecorations(v float64) Decorations {
	return Decorations(uint8(int(math.Round(v*255)) & 0xFF))
}

// Encode returns the decoration bits as a normalized channel value.
func (d Decorations) Encode() float64 {
	return float64(d) / 255
}

// Has reports whether all bits of mask are set.
func (d Decorations) Has(mask Decorations) bool {
	return d&mask == mask
}

// Visibility marker values for the fourth attribute channel.
//
// The marker byte doubles as the blink flag: zero means always visible,
// MarkerHidden (exactly mid-range) means the cell contributes nothing,
// and any other nonzero value subjects the cell to the global blink
// toggle.
const (
	MarkerVisible uint8 = 0
	MarkerHidden  uint8 = 128
	MarkerBlink   uint8 = 255
)

// hiddenTolerance is the band around 0.5 (in normalized units) inside
// which a marker is treated as MarkerHidden.
const hiddenTolerance = 0.1

// markerHidden reports whether a raw marker byte encodes "fully
// transparent, skip drawing".
func markerHidden(m uint8) bool {
	return math.Abs(float64(m)/255-0.5) <= hiddenTolerance
}

// Cell is one character position in the terminal grid. It is the
// structured form of the 8 bytes a cell occupies across the two buffer
// layers.
type Cell struct {
	// Glyph is the glyph code in [0,255].
	Glyph uint8
	// Foreground and Background are palette index bytes (already scaled
	// to the 0..255 range by Palette.IndexByte).
	Foreground uint8
	Background uint8
	// Page selects the font page for extended glyph sets.
	Page uint8
	// Decor holds the packed decoration bits.
	Decor Decorations
	// Selected marks the cell as part of the active selection.
	Selected bool
	// Marker is the visibility/blink marker (MarkerVisible, MarkerHidden
	// or MarkerBlink).
	Marker uint8
}
