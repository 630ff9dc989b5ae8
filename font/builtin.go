package font

import (
	"image"
	"sync"
	"unicode/utf8"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// builtinOnce caches the rendered builtin font; basicfont rasterization
// only ever needs to happen once per process.
var (
	builtinOnce sync.Once
	builtinFont *BitmapFont
)

// Builtin returns a bitmap font derived from the basicfont 7x13 face,
// mapped through code page 437. It is always available and requires no
// font files, which makes it the default for demos and tests.
//
// The returned font is shared; callers must not modify it.
func Builtin() *BitmapFont {
	builtinOnce.Do(func() {
		builtinFont = renderBuiltin()
	})
	return builtinFont
}

func renderBuiltin() *BitmapFont {
	face := basicfont.Face7x13
	f := &BitmapFont{
		Name:   "builtin7x13",
		Width:  face.Advance,
		Height: face.Height,
	}

	mask := image.NewAlpha(image.Rect(0, 0, face.Advance, face.Height))
	drawer := &xfont.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
	}

	for code := 0; code < glyphsPerPage; code++ {
		r := charmap.CodePage437.DecodeByte(uint8(code))
		if r == utf8.RuneError {
			continue
		}
		clearAlpha(mask)
		drawer.Dot = fixed.Point26_6{
			X: 0,
			Y: fixed.I(face.Ascent),
		}
		drawer.DrawString(string(r))

		rows := make([]uint8, face.Height)
		ink := false
		for y := 0; y < face.Height; y++ {
			var row uint8
			for x := 0; x < face.Advance; x++ {
				if mask.AlphaAt(x, y).A >= 128 {
					row |= 0x80 >> uint(x)
				}
			}
			rows[y] = row
			if row != 0 {
				ink = true
			}
		}
		if ink {
			f.Glyphs[code] = rows
		}
	}
	return f
}

func clearAlpha(m *image.Alpha) {
	for i := range m.Pix {
		m.Pix[i] = 0
	}
}
