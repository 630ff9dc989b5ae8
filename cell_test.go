package termglass

import "testing"

func TestDecodeDecorations(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want Decorations
	}{
		{"zero", 0, 0},
		{"underline", 1.0 / 255, DecorUnderline},
		{"double underline pair", 3.0 / 255, DecorUnderline | DecorDoubleUnderline},
		{"strikethrough", 4.0 / 255, DecorStrikethrough},
		{"double height", 8.0 / 255, DecorDoubleHeight},
		{"bottom half", 24.0 / 255, DecorDoubleHeight | DecorDoubleHeightBottom},
		{"all bits", 31.0 / 255, DecorUnderline | DecorDoubleUnderline | DecorStrikethrough | DecorDoubleHeight | DecorDoubleHeightBottom},
		// Values that drifted through an 8-bit channel must round back
		// to the exact bit pattern.
		{"drift low", 0.99 / 255, DecorUnderline},
		{"drift high", 1.01 / 255, DecorUnderline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeDecorations(tt.v); got != tt.want {
				t.Errorf("DecodeDecorations(%v) = %b, want %b", tt.v, got, tt.want)
			}
		})
	}
}

func TestDecorationsEncodeRoundTrip(t *testing.T) {
	for d := Decorations(0); d < 32; d++ {
		if got := DecodeDecorations(d.Encode()); got != d {
			t.Fatalf("round trip %b = %b", d, got)
		}
	}
}

func TestDecorationsHas(t *testing.T) {
	d := DecorUnderline | DecorDoubleHeight
	if !d.Has(DecorUnderline) {
		t.Error("Has(DecorUnderline) = false")
	}
	if d.Has(DecorStrikethrough) {
		t.Error("Has(DecorStrikethrough) = true")
	}
	if d.Has(DecorUnderline | DecorStrikethrough) {
		t.Error("partial mask reported as set")
	}
}

func TestMarkerHidden(t *testing.T) {
	tests := []struct {
		marker uint8
		hidden bool
	}{
		{MarkerVisible, false},
		{MarkerHidden, true},
		{MarkerBlink, false},
		{102, true},  // lower edge of the tolerance band
		{153, true},  // upper edge
		{101, false}, // just outside
		{154, false},
	}
	for _, tt := range tests {
		if got := markerHidden(tt.marker); got != tt.hidden {
			t.Errorf("markerHidden(%d) = %v, want %v", tt.marker, got, tt.hidden)
		}
	}
}
