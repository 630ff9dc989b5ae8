package termglass

import (
	"math"

	"github.com/termglass/termglass/internal/parallel"
)

// Decoration bands in glyph-space vertical coordinates. Bands are
// sixteenths of the (possibly double-height) glyph, evaluated after the
// double-height adjustment so decorations land only in the active half.
const (
	underlineBandStart       = 15.0 / 16
	doubleUnderlineBandStart = 13.0 / 16
	doubleUnderlineBandEnd   = 14.0 / 16
	strikethroughBandStart   = 7.0 / 16
	strikethroughBandEnd     = 8.0 / 16
)

// referenceBlend is the fixed blend ratio for the reference image
// overlay: 20% image under 80% text.
const referenceBlend = 0.2

// Compositor is the terminal stage: it turns the cell buffer, font atlas
// and palette into an intermediate color buffer plus a selection mask.
// Every pixel is a pure function of the frame snapshot, so rows render in
// parallel.
type Compositor struct{}

// Render composites the frame into dst and writes the selection mask.
// dst and mask must have render-buffer dimensions (columns·glyph width ×
// rows·glyph height). ref, if non-nil, is the reference image already
// scaled to dst's size.
func (c *Compositor) Render(dst, mask *Pixmap, ref *Pixmap, f *Frame, pool *parallel.Pool) {
	w := dst.Width()
	h := dst.Height()
	pool.Rows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				col, sel := c.shadePixel(f, ref, w, h, x, y)
				dst.SetPixel(x, y, col)
				mask.SetPixel(x, y, RGBA{B: sel, A: sel})
			}
		}
	})
}

// shadePixel evaluates one output pixel. It returns the display color and
// the selection-mask value for the second output channel.
func (c *Compositor) shadePixel(f *Frame, ref *Pixmap, w, h, x, y int) (RGBA, float64) {
	gw := float64(f.Atlas.GlyphWidth())
	gh := float64(f.Atlas.GlyphHeight())

	// Pixel center in render-buffer space, shifted by the scroll offset,
	// then split into cell index and cell-local UV.
	px := float64(x) + 0.5 + f.PositionX
	py := float64(y) + 0.5 + f.PositionY
	cx := px / gw
	cy := py / gh
	colIdx := int(math.Floor(cx))
	rowIdx := int(math.Floor(cy))
	u := cx - math.Floor(cx)
	v := cy - math.Floor(cy)

	if colIdx < 0 || colIdx >= f.Buffer.Width() || rowIdx < 0 || rowIdx >= f.Buffer.Height() {
		return Transparent, 0
	}

	char, attr := f.Buffer.cellBytes(colIdx, rowIdx)
	deco := Decorations(attr[0])
	marker := attr[3]
	selected := attr[2] > 0

	fg := f.Palette.AtByte(char[1])
	bg := f.Palette.AtByte(char[2])

	// The caret always shows in the cell's own palette foreground,
	// resolved before any selection override.
	caretColor := fg
	caretColor.A = 1
	uvx := (float64(x) + 0.5) / float64(w)
	uvy := (float64(y) + 0.5) / float64(h)
	inCaret := f.Caret.Contains(uvx, uvy)

	if selected {
		if f.Monitor.SelectionBg.A > 0 {
			bg = f.Monitor.SelectionBg
		} else {
			bg = fg // invert the cell
		}
		if f.Monitor.SelectionFg.A > 0 {
			fg = f.Monitor.SelectionFg
		}
	}

	sel := 0.0
	if selected {
		sel = 1
	}

	// A mid-range marker means the cell contributes nothing at all. The
	// caret still punches through.
	if markerHidden(marker) {
		if inCaret {
			return caretColor, sel
		}
		return Transparent, sel
	}

	// Double-height glyphs sample half the glyph per physical row.
	gy := v
	if deco.Has(DecorDoubleHeight) {
		gy = v / 2
		if deco.Has(DecorDoubleHeightBottom) {
			gy += 0.5
		}
	}

	ink := f.Atlas.SampleGlyph(int(char[3]), char[0], u, gy)
	visible := marker == MarkerVisible || f.Blink

	out := bg
	if ink > 0.5 && visible {
		out = fg
	}

	// Decoration bands overwrite with foreground regardless of glyph
	// coverage or blink phase.
	if deco.Has(DecorUnderline) && gy >= underlineBandStart {
		out = fg
	}
	if deco.Has(DecorDoubleUnderline) && gy >= doubleUnderlineBandStart && gy < doubleUnderlineBandEnd {
		out = fg
	}
	if deco.Has(DecorStrikethrough) && gy >= strikethroughBandStart && gy < strikethroughBandEnd {
		out = fg
	}
	out.A = 1

	if f.ShowReference && ref != nil {
		img := ref.GetPixel(x, y)
		out = RGBA{
			R: img.R*referenceBlend + out.R*(1-referenceBlend),
			G: img.G*referenceBlend + out.G*(1-referenceBlend),
			B: img.B*referenceBlend + out.B*(1-referenceBlend),
			A: 1,
		}
	}

	if inCaret {
		out = caretColor
	}
	return out, sel
}
