package termglass

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}
	tests := []struct {
		x, y float64
		want bool
	}{
		{1, 1, true},
		{2.9, 2.9, true},
		{3, 2, false}, // max edge exclusive
		{2, 3, false},
		{0.9, 2, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero rect not empty")
	}
	if !(Rect{MinX: 2, MaxX: 1, MinY: 0, MaxY: 1}).Empty() {
		t.Error("inverted rect not empty")
	}
	if (Rect{MaxX: 1, MaxY: 1}).Empty() {
		t.Error("unit rect empty")
	}
}

func TestOverlayRectEnabled(t *testing.T) {
	r := Rect{MaxX: 10, MaxY: 10}
	tests := []struct {
		name string
		o    OverlayRect
		want bool
	}{
		{"white", OverlayRect{Rect: r, Color: White}, true},
		{"black disables", OverlayRect{Rect: r, Color: Black}, false},
		{"transparent black disables", OverlayRect{Rect: r, Color: Transparent}, false},
		{"empty rect disables", OverlayRect{Color: White}, false},
		{"near black draws", OverlayRect{Rect: r, Color: RGBA{R: 1.0 / 255, A: 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
