package termglass

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{MinX: 4, MinY: 4, MaxX: 8, MaxY: 8}
	tests := []struct {
		name            string
		x, y            float64
		on, inset, halo bool
	}{
		{"left edge", 4, 6, true, false, false},
		{"corner", 8, 8, true, false, false},
		{"top edge", 6, 4, true, false, false},
		{"inset left", 5, 6, false, true, false},
		{"inset right", 7, 6, false, true, false},
		{"interior", 6, 6, false, false, false},
		{"halo left", 3, 6, false, false, true},
		{"halo corner", 3, 3, false, false, true},
		{"far outside", 2, 6, false, false, false},
		{"fractional pixel", 4.7, 6.2, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			on, inset, halo := rectEdges(r, tt.x, tt.y)
			if on != tt.on || inset != tt.inset || halo != tt.halo {
				t.Errorf("rectEdges(%v, %v) = %v/%v/%v, want %v/%v/%v",
					tt.x, tt.y, on, inset, halo, tt.on, tt.inset, tt.halo)
			}
		})
	}
}

func TestDrawDashedRect(t *testing.T) {
	r := Rect{MinX: 4, MinY: 4, MaxX: 8, MaxY: 8}

	t.Run("dash phase alternates", func(t *testing.T) {
		// (4,4): floor((4+4)/2+0) = 4, even block, lit.
		if got := drawDashedRect(Gray(0.5), r, 4, 4, 0, true); got != White {
			t.Errorf("even dash block = %+v, want white", got)
		}
		// (6,4): floor(10/2) = 5, odd block, dark.
		if got := drawDashedRect(Gray(0.5), r, 6, 4, 0, true); got != Black {
			t.Errorf("odd dash block = %+v, want black", got)
		}
	})

	t.Run("time advances the dash", func(t *testing.T) {
		if got := drawDashedRect(Gray(0.5), r, 6, 4, 1, true); got != White {
			t.Errorf("shifted dash block = %+v, want white", got)
		}
	})

	t.Run("solid border outside content", func(t *testing.T) {
		// Margin pixels never show the dark dash phase.
		if got := drawDashedRect(Gray(0.5), r, 6, 4, 0, false); got != White {
			t.Errorf("margin border = %+v, want solid white", got)
		}
	})

	t.Run("bevel and halo darken", func(t *testing.T) {
		want := White.Scale(bevelFactor)
		if got := drawDashedRect(White, r, 5, 6, 0, true); got != want {
			t.Errorf("inset bevel = %+v, want %+v", got, want)
		}
		if got := drawDashedRect(White, r, 3, 6, 0, true); got != want {
			t.Errorf("outer halo = %+v, want %+v", got, want)
		}
	})

	t.Run("interior untouched", func(t *testing.T) {
		in := RGB(0.2, 0.4, 0.6)
		if got := drawDashedRect(in, r, 6, 6, 0, true); got != in {
			t.Errorf("interior = %+v, want input", got)
		}
	})
}

func TestDrawSolidRect(t *testing.T) {
	o := OverlayRect{
		Rect:  Rect{MinX: 4, MinY: 4, MaxX: 8, MaxY: 8},
		Color: RGB(1, 0, 0),
	}
	none := OverlayRect{}
	wantCol := RGB(1, 0, 0)

	t.Run("border alternates color and black", func(t *testing.T) {
		// (4,4): floor(4/2)+floor(4/2) = 4, even cell.
		if got := drawSolidRect(Gray(0.5), o, 4, 4, none); got != wantCol {
			t.Errorf("even border cell = %+v, want rect color", got)
		}
		// (6,4): floor(6/2)+floor(4/2) = 5, odd cell.
		if got := drawSolidRect(Gray(0.5), o, 6, 4, none); got != Black {
			t.Errorf("odd border cell = %+v, want black", got)
		}
	})

	t.Run("selection forces solid border", func(t *testing.T) {
		sel := OverlayRect{
			Rect:  Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20},
			Color: White,
		}
		if got := drawSolidRect(Gray(0.5), o, 6, 4, sel); got != wantCol {
			t.Errorf("border inside selection = %+v, want solid color", got)
		}
	})

	t.Run("halo darkens", func(t *testing.T) {
		want := White.Scale(bevelFactor)
		if got := drawSolidRect(White, o, 3, 6, none); got != want {
			t.Errorf("halo = %+v, want %+v", got, want)
		}
	})

	t.Run("interior untouched", func(t *testing.T) {
		in := Gray(0.5)
		if got := drawSolidRect(in, o, 6, 6, none); got != in {
			t.Errorf("interior = %+v, want input", got)
		}
	})
}

func TestApplyOverlaysPrecedence(t *testing.T) {
	// Layer and selection share a border pixel; the selection is drawn
	// last and wins.
	f := &Frame{
		Layer: OverlayRect{
			Rect:  Rect{MinX: 4, MinY: 4, MaxX: 8, MaxY: 8},
			Color: RGB(1, 0, 0),
		},
		Selection: OverlayRect{
			Rect:  Rect{MinX: 4, MinY: 4, MaxX: 8, MaxY: 8},
			Color: White,
		},
	}
	got := applyOverlays(Gray(0.5), 4, 4, f, true)
	if got != White && got != Black {
		t.Errorf("shared border = %+v, want dash pattern over layer color", got)
	}

	// Disabled rectangles leave the color alone.
	f = &Frame{}
	in := Gray(0.5)
	if got := applyOverlays(in, 4, 4, f, true); got != in {
		t.Errorf("no overlays = %+v, want input", got)
	}
}
