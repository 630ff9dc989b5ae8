package termglass

import "math"

// atlasGridSize is the number of glyph cells per row and per column of an
// atlas page: 256 glyph codes laid out as (code mod 16, code div 16).
const atlasGridSize = 16

// FontAtlas holds rasterized glyph coverage for one or more 256-glyph
// font pages. Each page is a 16×16 grid of glyph cells stored as a single
// coverage byte per pixel (255 = ink, 0 = background).
type FontAtlas struct {
	glyphWidth  int // glyph cell width in pixels, including letter spacing
	glyphHeight int
	pages       [][]uint8 // one coverage plane per page
	pageLookup  map[int]int
}

// NewFontAtlas creates an atlas with the given glyph cell size and no
// pages. Pages are appended with AddPage.
func NewFontAtlas(glyphWidth, glyphHeight int) *FontAtlas {
	return &FontAtlas{
		glyphWidth:  glyphWidth,
		glyphHeight: glyphHeight,
		pageLookup:  map[int]int{},
	}
}

// GlyphWidth returns the glyph cell width in pixels.
func (a *FontAtlas) GlyphWidth() int { return a.glyphWidth }

// GlyphHeight returns the glyph cell height in pixels.
func (a *FontAtlas) GlyphHeight() int { return a.glyphHeight }

// PageCount returns the number of pages in the atlas.
func (a *FontAtlas) PageCount() int { return len(a.pages) }

// PageWidth returns the pixel width of one atlas page.
func (a *FontAtlas) PageWidth() int { return a.glyphWidth * atlasGridSize }

// PageHeight returns the pixel height of one atlas page.
func (a *FontAtlas) PageHeight() int { return a.glyphHeight * atlasGridSize }

// AddPage appends a coverage plane of PageWidth()×PageHeight() bytes and
// maps the caller's font identifier to the new dense page index. Font
// identifiers can be sparse (ANSI files address arbitrary font slots);
// the cell buffer stores the dense index.
func (a *FontAtlas) AddPage(fontID int, coverage []uint8) int {
	idx := len(a.pages)
	a.pages = append(a.pages, coverage)
	a.pageLookup[fontID] = idx
	return idx
}

// PageForFont resolves a sparse font identifier to its dense page index.
func (a *FontAtlas) PageForFont(fontID int) (int, bool) {
	idx, ok := a.pageLookup[fontID]
	return idx, ok
}

// Page returns the raw coverage plane for a page, or nil if out of range.
func (a *FontAtlas) Page(idx int) []uint8 {
	if idx < 0 || idx >= len(a.pages) {
		return nil
	}
	return a.pages[idx]
}

// SampleGlyph samples glyph coverage for the given page and glyph code at
// cell-local coordinates (u, v) in [0,1]×[0,1], origin top-left of the
// glyph cell. Returns coverage in [0,1].
//
// Local coordinates outside [0,1] return zero coverage; the compositor
// relies on this so neighboring double-height rows bleed correctly.
//
// The atlas coordinate is uv/16 offset by the glyph's grid cell. Sampling
// is nearest-neighbor on the unshifted uv/16 coordinate: the gradient
// used for filtering derives from the pre-offset coordinate, never from
// the final atlas coordinate, which is what keeps minification from
// bleeding texels across glyph cell boundaries.
func (a *FontAtlas) SampleGlyph(page int, code uint8, u, v float64) float64 {
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 0
	}
	if page < 0 || page >= len(a.pages) {
		return 0
	}

	cellX := int(code) % atlasGridSize
	cellY := int(code) / atlasGridSize

	// uv/16 plus the cell offset, resolved in page pixel space. The
	// in-cell texel index is computed from the local coordinate alone and
	// clamped inside the cell, so no query ever lands in a neighbor.
	px := int(math.Floor(u * float64(a.glyphWidth)))
	py := int(math.Floor(v * float64(a.glyphHeight)))
	px = clampInt(px, 0, a.glyphWidth-1)
	py = clampInt(py, 0, a.glyphHeight-1)

	x := cellX*a.glyphWidth + px
	y := cellY*a.glyphHeight + py

	w := a.PageWidth()
	return float64(a.pages[page][y*w+x]) / 255
}
