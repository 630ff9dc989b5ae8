package font

import (
	"errors"
	"fmt"
	"sort"

	"github.com/termglass/termglass"
)

// Errors returned by atlas construction.
var (
	ErrNoFonts      = errors.New("font: no fonts given")
	ErrGlyphTooWide = errors.New("font: glyph wider than 8 pixels")
)

// glyphsPerPage is the number of glyph slots on one atlas page.
const glyphsPerPage = 256

// Line-drawing glyph range. In widened (9-dot) mode these glyphs repeat
// their last column into the spacing column so box-drawing characters
// connect across cells; all other glyphs get a blank spacing column.
const (
	lineDrawFirst = 0xC0
	lineDrawLast  = 0xDF
)

// BitmapFont is a fixed-cell bitmap font with up to 256 glyphs. Each
// glyph is Height rows of one byte, most significant bit leftmost, so
// Width may not exceed 8. This is the storage format of classic DOS
// fonts.
type BitmapFont struct {
	Name   string
	Width  int
	Height int
	// Glyphs holds Height row bytes per glyph. A nil entry renders as an
	// empty cell.
	Glyphs [glyphsPerPage][]uint8
}

// NewBitmapFont creates an empty bitmap font with the given cell size.
func NewBitmapFont(name string, width, height int) (*BitmapFont, error) {
	if width <= 0 || width > 8 {
		return nil, fmt.Errorf("%w: width %d", ErrGlyphTooWide, width)
	}
	return &BitmapFont{Name: name, Width: width, Height: height}, nil
}

// SetGlyph stores the row bytes for one glyph code. Rows beyond Height
// are ignored, missing rows render blank.
func (f *BitmapFont) SetGlyph(code uint8, rows []uint8) {
	if len(rows) > f.Height {
		rows = rows[:f.Height]
	}
	f.Glyphs[code] = rows
}

// CellSize returns the atlas cell dimensions for this font.
// letterSpacing adds the classic ninth column.
func (f *BitmapFont) CellSize(letterSpacing bool) (w, h int) {
	w = f.Width
	if letterSpacing {
		w++
	}
	return w, f.Height
}

// Coverage renders the font into an atlas coverage plane laid out as a
// 16×16 glyph grid. Bits become full coverage (255), everything else 0.
func (f *BitmapFont) Coverage(letterSpacing bool) []uint8 {
	cw, ch := f.CellSize(letterSpacing)
	pageW := cw * 16
	plane := make([]uint8, pageW*ch*16)

	for code := 0; code < glyphsPerPage; code++ {
		rows := f.Glyphs[code]
		if rows == nil {
			continue
		}
		cellX := (code % 16) * cw
		cellY := (code / 16) * ch
		extend := letterSpacing && code >= lineDrawFirst && code <= lineDrawLast
		for y, row := range rows {
			base := (cellY+y)*pageW + cellX
			for x := 0; x < f.Width; x++ {
				if row&(0x80>>uint(x)) != 0 {
					plane[base+x] = 255
				}
			}
			if extend && row&(0x80>>uint(f.Width-1)) != 0 {
				plane[base+f.Width] = 255
			}
		}
	}
	return plane
}

// Atlas builds a FontAtlas from bitmap fonts, one page per entry. The
// map key is the sparse font identifier the cell buffer addresses pages
// by. All fonts must share the same cell size.
func Atlas(letterSpacing bool, fonts map[int]*BitmapFont) (*termglass.FontAtlas, error) {
	if len(fonts) == 0 {
		return nil, ErrNoFonts
	}

	var atlas *termglass.FontAtlas
	// Deterministic page order regardless of map iteration.
	ids := make([]int, 0, len(fonts))
	for id := range fonts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		f := fonts[id]
		cw, ch := f.CellSize(letterSpacing)
		if atlas == nil {
			atlas = termglass.NewFontAtlas(cw, ch)
		} else if cw != atlas.GlyphWidth() || ch != atlas.GlyphHeight() {
			return nil, fmt.Errorf("font: %q cell %dx%d does not match atlas %dx%d",
				f.Name, cw, ch, atlas.GlyphWidth(), atlas.GlyphHeight())
		}
		atlas.AddPage(id, f.Coverage(letterSpacing))
	}
	return atlas, nil
}
