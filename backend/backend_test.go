package backend

import (
	"testing"

	"github.com/termglass/termglass"
)

type fakeBackend struct{ name string }

func (f *fakeBackend) Name() string                                         { return f.name }
func (f *fakeBackend) Render(dst *termglass.Pixmap, fr *termglass.Frame) error { return nil }
func (f *fakeBackend) Close() error                                         { return nil }

func TestRegistry(t *testing.T) {
	const name = "test-fake"
	Register(name, func() termglass.Backend { return &fakeBackend{name: name} })
	defer Unregister(name)

	if !IsRegistered(name) {
		t.Error("registered backend not reported")
	}
	found := false
	for _, n := range Available() {
		if n == name {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, missing %q", Available(), name)
	}

	b := Get(name)
	if b == nil || b.Name() != name {
		t.Fatalf("Get(%q) = %v", name, b)
	}

	Unregister(name)
	if IsRegistered(name) {
		t.Error("backend still registered after Unregister")
	}
	if Get(name) != nil {
		t.Error("Get returned an unregistered backend")
	}
}

func TestSoftwareAlwaysRegistered(t *testing.T) {
	if !IsRegistered(Software) {
		t.Fatal("software backend not registered")
	}
	b := Get(Software)
	if b == nil {
		t.Fatal("software factory returned nil")
	}
	defer b.Close()
	if b.Name() != Software {
		t.Errorf("Name() = %q", b.Name())
	}
}

func TestDefault(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default() = %v", err)
	}
	defer b.Close()
	// With no GPU available the software floor is selected.
	if b.Name() == "" {
		t.Error("default backend has empty name")
	}
}

func TestNilFactorySkipped(t *testing.T) {
	// A factory returning nil must not satisfy selection.
	Register(WGPU, func() termglass.Backend { return nil })
	defer Unregister(WGPU)

	b, err := Default()
	if err != nil {
		t.Fatalf("Default() = %v", err)
	}
	defer b.Close()
	if b.Name() == WGPU {
		t.Error("nil factory selected")
	}
}

func TestSoftwareRender(t *testing.T) {
	b := NewSoftwareBackend()
	defer b.Close()

	buf := termglass.NewCellBuffer(1, 1)
	white := termglass.Default16().IndexByte(15)
	buf.SetCell(0, 0, termglass.Cell{Glyph: 0, Foreground: white})

	atlas := termglass.NewFontAtlas(8, 8)
	atlas.AddPage(0, make([]uint8, atlas.PageWidth()*atlas.PageHeight()))

	f := &termglass.Frame{
		Buffer:     buf,
		Atlas:      atlas,
		Palette:    termglass.Default16(),
		BufferRect: termglass.Rect{MaxX: 1, MaxY: 1},
		Monitor:    termglass.NewMonitorSettings(),
	}
	dst := termglass.NewPixmap(8, 8)
	if err := b.Render(dst, f); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if got := dst.GetPixel(4, 4); got != termglass.Black {
		t.Errorf("pixel = %+v, want opaque black", got)
	}
}
