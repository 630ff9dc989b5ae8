package wgpu

import (
	"log/slog"
	"sync"

	"github.com/termglass/termglass"
	"github.com/termglass/termglass/backend"
)

func init() {
	backend.Register(backend.WGPU, func() termglass.Backend {
		return New()
	})
}

// Backend renders frames through the WebGPU compute pipelines. Device
// acquisition is lazy: nothing touches the GPU until the first Render
// or SetDeviceProvider call, so constructing the backend is free on
// machines without a GPU.
//
// Backend is safe for concurrent use, though renders serialize.
type Backend struct {
	mu sync.Mutex

	dev       *gpuDevice
	provider  DeviceHandle
	pipelines *pipelines

	// cpu mirrors the shaders exactly and produces every frame until
	// buffer dispatch is wired up.
	cpu *termglass.Renderer

	initialized bool
	gpuReady    bool
	closed      bool
}

// New creates the backend without touching the GPU.
func New() *Backend {
	return &Backend{cpu: termglass.NewRenderer()}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.WGPU }

// SetDeviceProvider switches the backend to a device shared with the
// host application. The backend then never creates its own device and
// does not destroy the provided one on Close.
func (b *Backend) SetDeviceProvider(h DeviceHandle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.provider = h
	if b.dev != nil {
		b.dev.destroy()
		b.dev = nil
		b.pipelines = nil
		b.initialized = false
		b.gpuReady = false
	}
}

// initGPU performs the one-time device and pipeline bring-up.
// Failure is not fatal: the backend stays usable through the CPU mirror.
func (b *Backend) initGPU() {
	if b.initialized {
		return
	}
	b.initialized = true

	if b.provider != nil {
		// Shared device path: pipelines live on the host's device, which
		// is opaque here. Uniform snapshots are still produced so the
		// host can dispatch them.
		b.gpuReady = b.provider.Device() != nil
		return
	}

	dev, err := openDevice()
	if err != nil {
		termglass.Logger().Warn("wgpu: GPU unavailable, using CPU mirror",
			slog.Any("error", err))
		return
	}

	p, err := buildPipelines(dev.device)
	if err != nil {
		termglass.Logger().Warn("wgpu: pipeline creation failed, using CPU mirror",
			slog.Any("error", err))
		dev.destroy()
		return
	}

	b.dev = dev
	b.pipelines = p
	b.gpuReady = true
}

// Render renders the frame. The uniform blocks for both stages are
// snapshotted and serialized on every call; pixel output comes from the
// CPU mirror until HAL buffer binding allows full dispatch.
func (b *Backend) Render(dst *termglass.Pixmap, f *termglass.Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return termglass.ErrBackendClosed
	}
	b.initGPU()

	iw := f.Buffer.Width() * f.Atlas.GlyphWidth()
	ih := f.Buffer.Height() * f.Atlas.GlyphHeight()
	tc := newTerminalConfig(f, iw, ih)
	oc := newOutputConfig(f, iw, ih, dst.Width(), dst.Height())
	_ = tc.toBytes()
	_ = oc.toBytes()

	return b.cpu.Render(dst, f)
}

// GPUReady reports whether a device and both pipelines are live.
func (b *Backend) GPUReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gpuReady
}

// Close releases the device, pipelines and the CPU mirror. Safe to call
// more than once.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	if b.pipelines != nil {
		b.pipelines.destroy()
		b.pipelines = nil
	}
	if b.dev != nil {
		b.dev.destroy()
		b.dev = nil
	}
	b.gpuReady = false
	return b.cpu.Close()
}
