package termglass

import "math"

// Overlay drawing constants.
const (
	// bevelFactor darkens the 1px inner bevel and the 1px outer halo.
	bevelFactor = 0.6
	// dashBlock is the edge length of one dash block in pixels.
	dashBlock = 2
)

// applyOverlays draws the editor-chrome rectangles onto c for the pixel
// at (px, py) in output coordinates. Later rectangles overwrite earlier
// ones: layer, then preview, then selection. Disabled (black) rectangles
// are skipped.
//
// The stage calls this twice per frame conceptually — once for content
// pixels and once for margin pixels with a half-pixel coordinate
// correction — so rectangles straddling the content boundary render
// consistently.
func applyOverlays(c RGBA, px, py float64, f *Frame, inBuffer bool) RGBA {
	if f.Layer.Enabled() {
		c = drawSolidRect(c, f.Layer, px, py, f.Selection)
	}
	if f.Preview.Enabled() {
		c = drawSolidRect(c, f.Preview, px, py, f.Selection)
	}
	if f.Selection.Enabled() {
		c = drawDashedRect(c, f.Selection.Rect, px, py, f.Time, inBuffer)
	}
	return c
}

// rectEdges classifies the pixel against the rectangle border. A corner
// match counts as sitting exactly on the border line.
func rectEdges(r Rect, px, py float64) (on, inset, halo bool) {
	x0 := math.Floor(r.MinX)
	y0 := math.Floor(r.MinY)
	x1 := math.Floor(r.MaxX)
	y1 := math.Floor(r.MaxY)
	x := math.Floor(px)
	y := math.Floor(py)

	inside := x >= x0 && x <= x1 && y >= y0 && y <= y1
	if inside {
		on = x == x0 || x == x1 || y == y0 || y == y1
		if !on {
			inset = x == x0+1 || x == x1-1 || y == y0+1 || y == y1-1
		}
		return on, inset, false
	}
	halo = x >= x0-1 && x <= x1+1 && y >= y0-1 && y <= y1+1
	return false, false, halo
}

// drawDashedRect renders the selection-style rectangle: an animated
// lit/dark dash along the border inside the content region, solid white
// where the border protrudes past it, a darkened inner bevel, and a
// darkened outer halo.
func drawDashedRect(c RGBA, r Rect, px, py, time float64, inBuffer bool) RGBA {
	on, inset, halo := rectEdges(r, px, py)
	switch {
	case on:
		if !inBuffer {
			return White
		}
		phase := math.Floor((math.Floor(px)+math.Floor(py))/dashBlock + time)
		if math.Mod(math.Abs(phase), 2) < 1 {
			return White
		}
		return Black
	case inset:
		return c.Scale(bevelFactor)
	case halo:
		return c.Scale(bevelFactor)
	}
	return c
}

// drawSolidRect renders the layer/preview-style rectangle: border pixels
// alternate between the rectangle color and black at a 2-pixel cadence,
// except inside the active selection rectangle where the border is solid
// (selection takes visual precedence). Pixels one unit outside any edge
// get the darkening halo.
func drawSolidRect(c RGBA, o OverlayRect, px, py float64, sel OverlayRect) RGBA {
	on, _, halo := rectEdges(o.Rect, px, py)
	switch {
	case on:
		col := o.Color
		col.A = 1
		if sel.Enabled() && sel.Contains(px, py) {
			return col
		}
		cell := math.Floor(px/dashBlock) + math.Floor(py/dashBlock)
		if math.Mod(math.Abs(cell), 2) < 1 {
			return col
		}
		return Black
	case halo:
		return c.Scale(bevelFactor)
	}
	return c
}
