package font

import (
	"bytes"
	"fmt"
	"image"

	gtfont "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/termglass/termglass"
)

// AtlasFromTTF rasterizes a TTF/OTF font into a single-page atlas with
// the given glyph cell size. The 256 glyph slots map through code page
// 437; codes the font has no glyph for stay blank.
//
// The font is sized so an em fills the cell height and each glyph is
// drawn at the cell's left edge on the computed baseline. Proportional
// fonts work but render best with monospaced input.
func AtlasFromTTF(data []byte, glyphWidth, glyphHeight int) (*termglass.FontAtlas, error) {
	if glyphWidth <= 0 || glyphHeight <= 0 {
		return nil, fmt.Errorf("font: invalid cell size %dx%d", glyphWidth, glyphHeight)
	}

	// Parse twice on purpose: typesetting owns the character map lookup
	// (fast, no face state) while x/image does the rasterization.
	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}

	sfnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}
	face, err := opentype.NewFace(sfnt, &opentype.FaceOptions{
		Size:    float64(glyphHeight),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	metrics := face.Metrics()
	baseline := metrics.Ascent.Ceil()
	if baseline > glyphHeight {
		baseline = glyphHeight
	}

	pageW := glyphWidth * 16
	pageH := glyphHeight * 16
	plane := make([]uint8, pageW*pageH)

	cell := image.NewAlpha(image.Rect(0, 0, glyphWidth, glyphHeight))
	drawer := &xfont.Drawer{
		Dst:  cell,
		Src:  image.White,
		Face: face,
	}

	for code := 0; code < glyphsPerPage; code++ {
		r := charmap.CodePage437.DecodeByte(uint8(code))
		if _, ok := gtFace.NominalGlyph(r); !ok {
			continue
		}
		clearAlpha(cell)
		drawer.Dot = fixed.Point26_6{X: 0, Y: fixed.I(baseline)}
		drawer.DrawString(string(r))

		cellX := (code % 16) * glyphWidth
		cellY := (code / 16) * glyphHeight
		for y := 0; y < glyphHeight; y++ {
			base := (cellY+y)*pageW + cellX
			for x := 0; x < glyphWidth; x++ {
				plane[base+x] = cell.AlphaAt(x, y).A
			}
		}
	}

	atlas := termglass.NewFontAtlas(glyphWidth, glyphHeight)
	atlas.AddPage(0, plane)
	return atlas, nil
}
