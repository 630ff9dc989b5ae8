// Package font builds the glyph atlas pages the renderer samples.
//
// Three sources are supported:
//
//   - Classic bitmap fonts (BitmapFont): fixed-cell DOS-style fonts with
//     one bit per pixel, up to 256 glyphs, optionally widened by a
//     letter-spacing column.
//   - The builtin font (Builtin): a basicfont-derived bitmap font that
//     is always available, used by demos and tests.
//   - OpenType fonts (AtlasFromTTF): a TTF/OTF rasterized at a fixed
//     cell size through the code page 437 glyph mapping.
//
// All sources produce pages for a [termglass.FontAtlas]: a 16×16 grid of
// glyph cells with one coverage byte per pixel.
package font
