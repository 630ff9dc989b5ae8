package termglass

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	xdraw "golang.org/x/image/draw"

	"github.com/termglass/termglass/internal/parallel"
)

// ErrBackendClosed is returned when rendering through a closed backend.
var ErrBackendClosed = errors.New("termglass: backend closed")

// Backend renders frames on an alternative device, for example a GPU.
// The software path is always available; a backend is an optional
// replacement wired in with WithBackend. A backend failure falls back to
// the software path for that frame.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string
	// Render renders the full two-stage pipeline for f into dst.
	Render(dst *Pixmap, f *Frame) error
	// Close releases device resources.
	Close() error
}

// Renderer runs the two-stage pipeline: the compositor builds the
// intermediate render buffer from the cell grid, then the output stage
// post-processes it to the destination resolution.
//
// A Renderer owns its worker pool and scratch buffers and is intended to
// be reused across frames. It is not safe for concurrent Render calls.
type Renderer struct {
	pool       *parallel.Pool
	compositor Compositor
	output     OutputRenderer
	backend    Backend

	// Scratch buffers, grown on demand and reused across frames.
	intermediate *Pixmap
	mask         *Pixmap

	// Reference image scaling cache. Rescaling only happens when the
	// image or the render-buffer size changes.
	refSrc    image.Image
	refScaled *Pixmap
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &Renderer{
		pool:    parallel.NewPool(cfg.workers),
		backend: cfg.backend,
	}
	Logger().Debug("renderer created",
		slog.Int("workers", r.pool.Workers()),
		slog.String("backend", backendName(r.backend)))
	return r
}

func backendName(b Backend) string {
	if b == nil {
		return "software"
	}
	return b.Name()
}

// Render renders f into dst. dst defines the output resolution; the
// intermediate render buffer is sized from the cell grid and the glyph
// metrics (columns·glyph width × rows·glyph height).
func (r *Renderer) Render(dst *Pixmap, f *Frame) error {
	if err := f.validate(); err != nil {
		return err
	}
	if r.backend != nil {
		err := r.backend.Render(dst, f)
		if err == nil {
			return nil
		}
		Logger().Warn("backend render failed, falling back to software",
			slog.String("backend", r.backend.Name()),
			slog.Any("error", err))
	}
	return r.renderSoftware(dst, f)
}

func (r *Renderer) renderSoftware(dst *Pixmap, f *Frame) error {
	iw := f.Buffer.Width() * f.Atlas.GlyphWidth()
	ih := f.Buffer.Height() * f.Atlas.GlyphHeight()
	if iw <= 0 || ih <= 0 {
		return fmt.Errorf("termglass: empty render buffer (%dx%d)", iw, ih)
	}
	if r.intermediate == nil || r.intermediate.Width() != iw || r.intermediate.Height() != ih {
		r.intermediate = NewPixmap(iw, ih)
		r.mask = NewPixmap(iw, ih)
	}

	var ref *Pixmap
	if f.ShowReference && f.Reference != nil {
		ref = r.scaledReference(f.Reference, iw, ih)
	}

	r.compositor.Render(r.intermediate, r.mask, ref, f, r.pool)
	r.output.Render(dst, r.intermediate, f, r.pool)
	return nil
}

// scaledReference returns the reference image scaled to the render-buffer
// size, reusing the cached copy when nothing changed.
func (r *Renderer) scaledReference(img image.Image, w, h int) *Pixmap {
	if r.refSrc == img && r.refScaled != nil &&
		r.refScaled.Width() == w && r.refScaled.Height() == h {
		return r.refScaled
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	pm := NewPixmap(w, h)
	copy(pm.Data(), scaled.Pix)
	r.refSrc = img
	r.refScaled = pm
	return pm
}

// SelectionMask returns the selection mask produced by the last software
// render, or nil before the first frame. The mask marks selected cells in
// the blue and alpha channels at render-buffer resolution.
func (r *Renderer) SelectionMask() *Pixmap { return r.mask }

// Close releases the worker pool and the backend, if any.
func (r *Renderer) Close() error {
	r.pool.Close()
	if r.backend != nil {
		return r.backend.Close()
	}
	return nil
}
