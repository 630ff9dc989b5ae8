package termglass

// Rect is an axis-aligned rectangle given by its upper-left and
// bottom-right corners. Units depend on context: overlay rectangles are in
// output pixels, the caret rectangle and buffer rect in normalized [0,1]
// coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Contains reports whether (x, y) lies inside the rectangle. The maximum
// edge is exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// OverlayRect is an editor-chrome rectangle with its draw color. A color
// of exact black is the "disabled" sentinel: the rectangle is skipped
// entirely, never treated as an error.
type OverlayRect struct {
	Rect
	Color RGBA
}

// Enabled reports whether the rectangle should be drawn.
func (o OverlayRect) Enabled() bool {
	return !o.Color.IsBlack() && !o.Empty()
}
