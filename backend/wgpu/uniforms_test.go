package wgpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/termglass/termglass"
)

func readU32(buf []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(buf[offset:])
}

func readF32(buf []byte, offset int) float32 {
	return math.Float32frombits(readU32(buf, offset))
}

func uniformFrame() *termglass.Frame {
	buf := termglass.NewCellBuffer(80, 25)
	atlas := termglass.NewFontAtlas(8, 16)
	return &termglass.Frame{
		Buffer:     buf,
		Atlas:      atlas,
		Palette:    termglass.Default16(),
		Blink:      true,
		PositionX:  3,
		PositionY:  -5,
		Caret:      termglass.Rect{MinX: 0.1, MinY: 0.2, MaxX: 0.3, MaxY: 0.4},
		BufferRect: termglass.Rect{MaxX: 1, MaxY: 1},
		EffectMode: termglass.EffectCRT,
		Time:       2.5,
		Monitor:    termglass.NewMonitorSettings(),
	}
}

func TestTerminalConfigLayout(t *testing.T) {
	f := uniformFrame()
	f.Monitor.SelectionBg = termglass.RGB(0, 0, 1)

	c := newTerminalConfig(f, 640, 400)
	b := c.toBytes()
	if len(b) != terminalConfigSize {
		t.Fatalf("serialized size = %d, want %d", len(b), terminalConfigSize)
	}

	if got := readU32(b, 0); got != 80 {
		t.Errorf("cols at 0 = %d, want 80", got)
	}
	if got := readU32(b, 4); got != 25 {
		t.Errorf("rows at 4 = %d, want 25", got)
	}
	if got := readU32(b, 8); got != 8 {
		t.Errorf("glyph width at 8 = %d", got)
	}
	if got := readU32(b, 16); got != 640 {
		t.Errorf("out width at 16 = %d", got)
	}
	if got := readU32(b, 24); got != 1 {
		t.Errorf("blink at 24 = %d, want 1", got)
	}
	if got := readF32(b, 32); got != 3 {
		t.Errorf("position.x at 32 = %v", got)
	}
	if got := readF32(b, 36); got != -5 {
		t.Errorf("position.y at 36 = %v", got)
	}
	// Caret vec4 lands on the 16-byte boundary at 48.
	if got := readF32(b, 48); got != float32(0.1) {
		t.Errorf("caret.min_x at 48 = %v", got)
	}
	if got := readF32(b, 60); got != float32(0.4) {
		t.Errorf("caret.max_y at 60 = %v", got)
	}
	// SelectionBg blue channel sits at 80+8.
	if got := readF32(b, 88); got != 1 {
		t.Errorf("selection bg blue at 88 = %v", got)
	}
}

func TestTerminalConfigReferenceGate(t *testing.T) {
	f := uniformFrame()
	f.ShowReference = true // nil image: the flag alone must not enable it
	c := newTerminalConfig(f, 640, 400)
	if c.ShowReference != 0 {
		t.Error("reference enabled without an image")
	}
}

func TestOutputConfigLayout(t *testing.T) {
	f := uniformFrame()
	f.Monitor.Scanlines = 0.25
	f.Monitor.Monitor = termglass.MonitorGreen
	f.Selection = termglass.OverlayRect{
		Rect:  termglass.Rect{MinX: 4, MinY: 5, MaxX: 6, MaxY: 7},
		Color: termglass.White,
	}

	c := newOutputConfig(f, 640, 400, 1280, 800)
	b := c.toBytes()
	if len(b) != outputConfigSize {
		t.Fatalf("serialized size = %d, want %d", len(b), outputConfigSize)
	}

	if got := readU32(b, 0); got != 640 {
		t.Errorf("src width at 0 = %d", got)
	}
	if got := readU32(b, 12); got != 800 {
		t.Errorf("out height at 12 = %d", got)
	}
	if got := readF32(b, 16); got != 1 {
		t.Errorf("gamma at 16 = %v", got)
	}
	if got := readF32(b, 44); got != 0.25 {
		t.Errorf("scanlines at 44 = %v", got)
	}
	if got := readF32(b, 48); got != 1 {
		t.Errorf("effect mode at 48 = %v", got)
	}
	if got := readU32(b, 52); got != uint32(termglass.MonitorGreen) {
		t.Errorf("monitor at 52 = %d", got)
	}
	if got := readF32(b, 56); got != 2.5 {
		t.Errorf("time at 56 = %v", got)
	}
	// BufferRect opens the vec4 block at 64.
	if got := readF32(b, 72); got != 1 {
		t.Errorf("buffer rect max_x at 72 = %v", got)
	}
	// MonoMask carries the phosphor tint.
	mask := termglass.MonitorGreen.PhosphorMask()
	if got := readF32(b, 84); got != float32(mask.G) {
		t.Errorf("mono mask green at 84 = %v, want %v", got, mask.G)
	}
	if got := readF32(b, 160); got != 4 {
		t.Errorf("selection rect min_x at 160 = %v", got)
	}
	if got := readF32(b, 176); got != 1 {
		t.Errorf("selection color red at 176 = %v", got)
	}
}

func TestRectColorVecs(t *testing.T) {
	r := rectVec(termglass.Rect{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4})
	if r != [4]float32{1, 2, 3, 4} {
		t.Errorf("rectVec = %v", r)
	}
	c := colorVec(termglass.RGBA{R: 0.5, A: 1})
	if c[0] != 0.5 || c[3] != 1 {
		t.Errorf("colorVec = %v", c)
	}
	if boolU32(true) != 1 || boolU32(false) != 0 {
		t.Error("boolU32 mapping wrong")
	}
}
