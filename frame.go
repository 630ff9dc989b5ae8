package termglass

import (
	"errors"
	"image"
)

// Frame errors.
var (
	ErrNoBuffer  = errors.New("termglass: frame has no cell buffer")
	ErrNoAtlas   = errors.New("termglass: frame has no font atlas")
	ErrNoPalette = errors.New("termglass: frame has no palette")
)

// Frame is the complete set of inputs for rendering one frame. The caller
// supplies a fresh Frame every render; the renderer treats every field as
// a read-only snapshot and keeps no reference to it afterwards.
//
// All implicit clocks are explicit here: Blink is the current phase of
// the caller's character-blink timer and Time drives the dash animation.
type Frame struct {
	// Buffer, Atlas and Palette are the compositor textures.
	Buffer  *CellBuffer
	Atlas   *FontAtlas
	Palette *Palette

	// Position is the scroll offset in render-buffer pixels, added to the
	// pixel coordinate before cell addressing.
	PositionX float64
	PositionY float64

	// Blink is the global character-blink toggle.
	Blink bool

	// Time is elapsed time in seconds; the overlay dash pattern advances
	// with it.
	Time float64

	// Caret is the caret rectangle in normalized render-buffer
	// coordinates. An empty rect means no caret (hidden, unfocused or in
	// its blink-off phase — the caller collapses all of that into the
	// rect it passes).
	Caret Rect

	// BufferRect is the sub-region of the output surface the terminal
	// content occupies, in normalized [0,1] output coordinates. Pixels
	// outside it are margin and receive the background pattern.
	BufferRect Rect

	// Layer, Preview and Selection are the editor-chrome rectangles in
	// output pixel coordinates. Exact black disables a rectangle.
	Layer     OverlayRect
	Preview   OverlayRect
	Selection OverlayRect

	// EffectMode selects the post-process: EffectCRT (within ±0.1)
	// enables the CRT chain, anything else is pass-through.
	EffectMode float64

	// Monitor carries tone-mapping, distortion and selection colors.
	Monitor MonitorSettings

	// Reference is an optional reference image blended under the text at
	// a fixed 20% ratio. ShowReference gates it explicitly — a nil image
	// with the flag set is treated as absent, never as an error.
	Reference     image.Image
	ShowReference bool
}

// validate checks that the compositor textures are present.
func (f *Frame) validate() error {
	switch {
	case f.Buffer == nil:
		return ErrNoBuffer
	case f.Atlas == nil:
		return ErrNoAtlas
	case f.Palette == nil:
		return ErrNoPalette
	}
	return nil
}

// crtEnabled reports whether the effect selector engages the CRT chain.
func (f *Frame) crtEnabled() bool {
	d := f.EffectMode - EffectCRT
	if d < 0 {
		d = -d
	}
	return d <= effectTolerance
}
