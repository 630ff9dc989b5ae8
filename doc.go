// Package termglass renders text-mode (terminal/ANSI-art) display buffers
// to pixel surfaces and applies a CRT-monitor emulation post-process.
//
// # Overview
//
// The pipeline has two stages, each a pure per-pixel function of read-only
// textures and per-frame parameters:
//
//   - The terminal compositor reads a two-layer cell buffer, a font atlas
//     and a palette and produces an intermediate color buffer plus a
//     selection mask.
//   - The output stage consumes the intermediate buffer and re-renders it
//     with blur, scanlines, curvature and tone mapping (or passes it
//     through untouched), draws the editor-chrome rectangles, and fills
//     margins with a checkerboard.
//
// # Quick Start
//
//	import "github.com/termglass/termglass"
//
//	r := termglass.NewRenderer(640, 400)
//	defer r.Close()
//
//	out, err := r.Render(&termglass.Frame{
//	    Buffer:  buf,
//	    Atlas:   atlas,
//	    Palette: termglass.Default16(),
//	    BufferRect: termglass.Rect{MaxX: 1, MaxY: 1},
//	})
//
// # Execution Model
//
// Every output pixel is evaluated independently; rows are sharded across a
// worker pool. The renderer holds no mutable state between frames beyond
// scratch buffers — blink state and elapsed time are explicit Frame fields
// supplied by the caller.
//
// # Coordinate System
//
// Origin (0,0) is top-left, X increases right, Y increases down. The cell
// buffer is addressed in cell coordinates, the overlay rectangles in output
// pixels, and the buffer rect in normalized [0,1] output coordinates.
//
// # Backends
//
// The CPU path in this package is the reference implementation. The
// backend/ packages provide a registry and a wgpu-based GPU backend that
// compiles WGSL ports of both stages.
package termglass

// Version is the current version of the library.
const Version = "0.2.0"
