package font

import (
	"errors"
	"testing"
)

func TestNewBitmapFont(t *testing.T) {
	if _, err := NewBitmapFont("wide", 9, 16); !errors.Is(err, ErrGlyphTooWide) {
		t.Errorf("width 9 error = %v, want ErrGlyphTooWide", err)
	}
	if _, err := NewBitmapFont("zero", 0, 16); err == nil {
		t.Error("width 0 accepted")
	}
	f, err := NewBitmapFont("cp437", 8, 16)
	if err != nil {
		t.Fatalf("NewBitmapFont: %v", err)
	}
	if f.Width != 8 || f.Height != 16 {
		t.Errorf("cell = %dx%d, want 8x16", f.Width, f.Height)
	}
}

func TestSetGlyphTruncates(t *testing.T) {
	f, _ := NewBitmapFont("t", 8, 2)
	f.SetGlyph('A', []uint8{0xFF, 0xFF, 0xFF, 0xFF})
	if len(f.Glyphs['A']) != 2 {
		t.Errorf("glyph rows = %d, want truncated to 2", len(f.Glyphs['A']))
	}
}

func TestCellSize(t *testing.T) {
	f, _ := NewBitmapFont("t", 8, 16)
	if w, h := f.CellSize(false); w != 8 || h != 16 {
		t.Errorf("CellSize(false) = %dx%d", w, h)
	}
	if w, h := f.CellSize(true); w != 9 || h != 16 {
		t.Errorf("CellSize(true) = %dx%d, want 9x16", w, h)
	}
}

func TestCoverage(t *testing.T) {
	f, _ := NewBitmapFont("t", 8, 8)
	// Glyph 0x01: single pixel at top-left (MSB of row 0).
	f.SetGlyph(0x01, []uint8{0x80})

	plane := f.Coverage(false)
	pageW := 8 * 16
	if len(plane) != pageW*8*16 {
		t.Fatalf("plane size = %d", len(plane))
	}
	// Cell (1,0) starts at x=8.
	if plane[8] != 255 {
		t.Error("set bit not covered")
	}
	if plane[9] != 0 {
		t.Error("unset bit covered")
	}
}

func TestCoverageLetterSpacing(t *testing.T) {
	f, _ := NewBitmapFont("t", 8, 8)
	// 0xC4 is a horizontal line glyph; its rightmost column must extend
	// into the spacing column. 0x41 ('A') must not.
	f.SetGlyph(0xC4, []uint8{0xFF})
	f.SetGlyph(0x41, []uint8{0xFF})

	plane := f.Coverage(true)
	cw := 9
	pageW := cw * 16

	lineX := (0xC4 % 16) * cw
	lineY := (0xC4 / 16) * 8
	if plane[lineY*pageW+lineX+8] != 255 {
		t.Error("line-draw glyph did not extend into spacing column")
	}

	aX := (0x41 % 16) * cw
	aY := (0x41 / 16) * 8
	if plane[aY*pageW+aX+8] != 0 {
		t.Error("plain glyph extended into spacing column")
	}
}

func TestAtlas(t *testing.T) {
	if _, err := Atlas(false, nil); !errors.Is(err, ErrNoFonts) {
		t.Errorf("empty font map error = %v, want ErrNoFonts", err)
	}

	a, _ := NewBitmapFont("a", 8, 16)
	b, _ := NewBitmapFont("b", 8, 16)
	atlas, err := Atlas(false, map[int]*BitmapFont{7: a, 2: b})
	if err != nil {
		t.Fatalf("Atlas: %v", err)
	}
	if atlas.PageCount() != 2 {
		t.Errorf("pages = %d, want 2", atlas.PageCount())
	}
	// Sparse ids map in ascending order.
	if idx, ok := atlas.PageForFont(2); !ok || idx != 0 {
		t.Errorf("PageForFont(2) = %d,%v, want 0,true", idx, ok)
	}
	if idx, ok := atlas.PageForFont(7); !ok || idx != 1 {
		t.Errorf("PageForFont(7) = %d,%v, want 1,true", idx, ok)
	}
}

func TestAtlasMismatchedCells(t *testing.T) {
	a, _ := NewBitmapFont("a", 8, 16)
	b, _ := NewBitmapFont("b", 8, 8)
	if _, err := Atlas(false, map[int]*BitmapFont{0: a, 1: b}); err == nil {
		t.Error("mismatched cell sizes accepted")
	}
}

func TestBuiltin(t *testing.T) {
	f := Builtin()
	if f.Width <= 0 || f.Height <= 0 {
		t.Fatalf("builtin cell = %dx%d", f.Width, f.Height)
	}
	// 'A' must have some ink.
	ink := false
	for _, row := range f.Glyphs['A'] {
		if row != 0 {
			ink = true
			break
		}
	}
	if !ink {
		t.Error("builtin 'A' has no coverage")
	}
	// The same instance comes back every call.
	if Builtin() != f {
		t.Error("Builtin() not cached")
	}
}
