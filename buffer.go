package termglass

// CellBuffer is the two-layer character cell texture.
//
// Layer 0 ("char") holds [glyph, foreground index, background index, font
// page] per cell; layer 1 ("attr") holds [decoration bits, decoration
// bits, selection flag, visibility/blink marker]. The decoration byte is
// stored twice so either channel can be sampled, matching the wire format
// the GPU path uploads.
//
// A CellBuffer is a per-frame snapshot: the owning application rewrites it
// wholesale between frames and must not mutate it while a render is in
// flight. The renderer only ever reads it.
type CellBuffer struct {
	width  int
	height int
	char   []uint8 // layer 0, 4 bytes per cell
	attr   []uint8 // layer 1, 4 bytes per cell
}

// NewCellBuffer creates an empty cell buffer with the given grid size.
func NewCellBuffer(width, height int) *CellBuffer {
	return &CellBuffer{
		width:  width,
		height: height,
		char:   make([]uint8, width*height*4),
		attr:   make([]uint8, width*height*4),
	}
}

// Width returns the number of cell columns.
func (b *CellBuffer) Width() int { return b.width }

// Height returns the number of cell rows.
func (b *CellBuffer) Height() int { return b.height }

// CharData returns the raw layer-0 bytes (glyph/fg/bg/page per cell).
func (b *CellBuffer) CharData() []uint8 { return b.char }

// AttrData returns the raw layer-1 bytes (decor/decor/selected/marker).
func (b *CellBuffer) AttrData() []uint8 { return b.attr }

// SetCell writes a cell at grid position (x, y). Out-of-bounds writes are
// ignored.
func (b *CellBuffer) SetCell(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.char[i+0] = c.Glyph
	b.char[i+1] = c.Foreground
	b.char[i+2] = c.Background
	b.char[i+3] = c.Page

	b.attr[i+0] = uint8(c.Decor)
	b.attr[i+1] = uint8(c.Decor)
	if c.Selected {
		b.attr[i+2] = 255
	} else {
		b.attr[i+2] = 0
	}
	b.attr[i+3] = c.Marker
}

// Cell reads back the cell at (x, y). Out-of-bounds reads return the zero
// Cell.
func (b *CellBuffer) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	i := (y*b.width + x) * 4
	return Cell{
		Glyph:      b.char[i+0],
		Foreground: b.char[i+1],
		Background: b.char[i+2],
		Page:       b.char[i+3],
		Decor:      Decorations(b.attr[i+0]),
		Selected:   b.attr[i+2] > 0,
		Marker:     b.attr[i+3],
	}
}

// cellBytes returns the raw layer bytes for (x, y), clamped to the grid.
// The compositor addresses cells through this so edge pixels behave like
// CLAMP_TO_EDGE texture sampling.
func (b *CellBuffer) cellBytes(x, y int) (char, attr [4]uint8) {
	x = clampInt(x, 0, b.width-1)
	y = clampInt(y, 0, b.height-1)
	i := (y*b.width + x) * 4
	copy(char[:], b.char[i:i+4])
	copy(attr[:], b.attr[i:i+4])
	return char, attr
}

// WriteString fills a row of cells starting at (x, y) with the bytes of s,
// using the given palette index bytes. Convenience for demos and tests.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	for i := 0; i < len(s); i++ {
		b.SetCell(x+i, y, Cell{Glyph: s[i], Foreground: fg, Background: bg})
	}
}
