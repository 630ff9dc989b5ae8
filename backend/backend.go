// Package backend hosts the render backend registry.
//
// Backends implement [termglass.Backend] and register themselves from
// init() functions, so importing a backend package makes it available:
//
//	import _ "github.com/termglass/termglass/backend/wgpu"
//
// The software backend in this package is always registered.
package backend

import (
	"errors"
	"sync"

	"github.com/termglass/termglass"
)

// Backend name constants.
const (
	// Software is the name of the CPU backend.
	Software = "software"
	// WGPU is the name of the WebGPU backend.
	WGPU = "wgpu"
)

// ErrNotAvailable is returned when no usable backend is registered.
var ErrNotAvailable = errors.New("backend: not available")

// Factory creates a new backend instance. A factory may return nil when
// the backend cannot run in the current environment (no GPU, missing
// driver); selection then moves on to the next candidate.
type Factory func() termglass.Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Selection priority, first available wins.
	priority = []string{WGPU, Software}
)

// Register registers a backend factory under the given name, replacing
// any previous registration. Typically called from init().
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry. Useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new instance of the named backend, or nil if it is not
// registered or cannot run.
func Get(name string) termglass.Backend {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend in priority order
// (wgpu before software), or an error if nothing is registered.
func Default() (termglass.Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b, nil
			}
		}
	}
	for _, factory := range backends {
		if b := factory(); b != nil {
			return b, nil
		}
	}
	return nil, ErrNotAvailable
}
