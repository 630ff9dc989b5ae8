package wgpu

import (
	"math"

	"github.com/termglass/termglass"
)

// Uniform block sizes in bytes. Must match the Config structs in
// terminal.wgsl and output.wgsl.
const (
	terminalConfigSize = 96
	outputConfigSize   = 192
)

// terminalConfig is the CPU-side layout of the terminal stage Config
// uniform block.
type terminalConfig struct {
	BufferCols    uint32
	BufferRows    uint32
	GlyphW        uint32
	GlyphH        uint32
	OutW          uint32
	OutH          uint32
	Blink         uint32
	ShowReference uint32
	Position      [2]float32
	Caret         [4]float32
	SelectionFg   [4]float32
	SelectionBg   [4]float32
}

// outputConfig is the CPU-side layout of the output stage Config
// uniform block.
type outputConfig struct {
	SrcW, SrcH uint32
	OutW, OutH uint32

	Gamma      float32
	Contrast   float32
	Saturation float32
	Brightness float32
	Curvature  float32
	Light      float32
	Blur       float32
	Scanlines  float32

	EffectMode float32
	Monitor    uint32
	Time       float32

	BufferRect     [4]float32
	MonoMask       [4]float32
	LayerRect      [4]float32
	LayerColor     [4]float32
	PreviewRect    [4]float32
	PreviewColor   [4]float32
	SelectionRect  [4]float32
	SelectionColor [4]float32
}

func rectVec(r termglass.Rect) [4]float32 {
	return [4]float32{float32(r.MinX), float32(r.MinY), float32(r.MaxX), float32(r.MaxY)}
}

func colorVec(c termglass.RGBA) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

func boolU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// newTerminalConfig snapshots the frame fields the terminal stage reads.
func newTerminalConfig(f *termglass.Frame, outW, outH int) terminalConfig {
	return terminalConfig{
		BufferCols:    uint32(f.Buffer.Width()),
		BufferRows:    uint32(f.Buffer.Height()),
		GlyphW:        uint32(f.Atlas.GlyphWidth()),
		GlyphH:        uint32(f.Atlas.GlyphHeight()),
		OutW:          uint32(outW),
		OutH:          uint32(outH),
		Blink:         boolU32(f.Blink),
		ShowReference: boolU32(f.ShowReference && f.Reference != nil),
		Position:      [2]float32{float32(f.PositionX), float32(f.PositionY)},
		Caret:         rectVec(f.Caret),
		SelectionFg:   colorVec(f.Monitor.SelectionFg),
		SelectionBg:   colorVec(f.Monitor.SelectionBg),
	}
}

// newOutputConfig snapshots the frame fields the output stage reads.
func newOutputConfig(f *termglass.Frame, srcW, srcH, outW, outH int) outputConfig {
	mask := f.Monitor.Monitor.PhosphorMask()
	return outputConfig{
		SrcW: uint32(srcW), SrcH: uint32(srcH),
		OutW: uint32(outW), OutH: uint32(outH),

		Gamma:      float32(f.Monitor.Gamma),
		Contrast:   float32(f.Monitor.Contrast),
		Saturation: float32(f.Monitor.Saturation),
		Brightness: float32(f.Monitor.Brightness),
		Curvature:  float32(f.Monitor.Curvature),
		Light:      float32(f.Monitor.Light),
		Blur:       float32(f.Monitor.Blur),
		Scanlines:  float32(f.Monitor.Scanlines),

		EffectMode: float32(f.EffectMode),
		Monitor:    uint32(f.Monitor.Monitor),
		Time:       float32(f.Time),

		BufferRect:     rectVec(f.BufferRect),
		MonoMask:       colorVec(mask),
		LayerRect:      rectVec(f.Layer.Rect),
		LayerColor:     colorVec(f.Layer.Color),
		PreviewRect:    rectVec(f.Preview.Rect),
		PreviewColor:   colorVec(f.Preview.Color),
		SelectionRect:  rectVec(f.Selection.Rect),
		SelectionColor: colorVec(f.Selection.Color),
	}
}

// Byte serialization for GPU buffer upload.

func writeUint32(buf []byte, offset int, val uint32) {
	buf[offset] = byte(val)
	buf[offset+1] = byte(val >> 8)
	buf[offset+2] = byte(val >> 16)
	buf[offset+3] = byte(val >> 24)
}

func writeFloat32(buf []byte, offset int, val float32) {
	writeUint32(buf, offset, math.Float32bits(val))
}

func writeVec4(buf []byte, offset int, v [4]float32) {
	for i, f := range v {
		writeFloat32(buf, offset+i*4, f)
	}
}

func (c *terminalConfig) toBytes() []byte {
	buf := make([]byte, terminalConfigSize)
	writeUint32(buf, 0, c.BufferCols)
	writeUint32(buf, 4, c.BufferRows)
	writeUint32(buf, 8, c.GlyphW)
	writeUint32(buf, 12, c.GlyphH)
	writeUint32(buf, 16, c.OutW)
	writeUint32(buf, 20, c.OutH)
	writeUint32(buf, 24, c.Blink)
	writeUint32(buf, 28, c.ShowReference)
	writeFloat32(buf, 32, c.Position[0])
	writeFloat32(buf, 36, c.Position[1])
	// 40..48 padding
	writeVec4(buf, 48, c.Caret)
	writeVec4(buf, 64, c.SelectionFg)
	writeVec4(buf, 80, c.SelectionBg)
	return buf
}

func (c *outputConfig) toBytes() []byte {
	buf := make([]byte, outputConfigSize)
	writeUint32(buf, 0, c.SrcW)
	writeUint32(buf, 4, c.SrcH)
	writeUint32(buf, 8, c.OutW)
	writeUint32(buf, 12, c.OutH)
	writeFloat32(buf, 16, c.Gamma)
	writeFloat32(buf, 20, c.Contrast)
	writeFloat32(buf, 24, c.Saturation)
	writeFloat32(buf, 28, c.Brightness)
	writeFloat32(buf, 32, c.Curvature)
	writeFloat32(buf, 36, c.Light)
	writeFloat32(buf, 40, c.Blur)
	writeFloat32(buf, 44, c.Scanlines)
	writeFloat32(buf, 48, c.EffectMode)
	writeUint32(buf, 52, c.Monitor)
	writeFloat32(buf, 56, c.Time)
	// 60..64 padding
	writeVec4(buf, 64, c.BufferRect)
	writeVec4(buf, 80, c.MonoMask)
	writeVec4(buf, 96, c.LayerRect)
	writeVec4(buf, 112, c.LayerColor)
	writeVec4(buf, 128, c.PreviewRect)
	writeVec4(buf, 144, c.PreviewColor)
	writeVec4(buf, 160, c.SelectionRect)
	writeVec4(buf, 176, c.SelectionColor)
	return buf
}
