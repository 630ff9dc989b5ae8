package backend

import "github.com/termglass/termglass"

// SoftwareBackend runs the pipeline on the CPU. It wraps a plain
// renderer without a device backend, so registering it through the
// renderer's WithBackend option is equivalent to using the renderer
// directly; it exists so backend selection always has a floor.
type SoftwareBackend struct {
	r *termglass.Renderer
}

func init() {
	Register(Software, func() termglass.Backend {
		return NewSoftwareBackend()
	})
}

// NewSoftwareBackend creates a CPU backend with a default worker pool.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{r: termglass.NewRenderer()}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string { return Software }

// Render renders the frame on the CPU.
func (b *SoftwareBackend) Render(dst *termglass.Pixmap, f *termglass.Frame) error {
	return b.r.Render(dst, f)
}

// Close releases the worker pool.
func (b *SoftwareBackend) Close() error {
	return b.r.Close()
}
