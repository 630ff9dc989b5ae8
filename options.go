package termglass

// Option configures a Renderer.
type Option func(*options)

type options struct {
	workers int
	backend Backend
}

func defaultOptions() options {
	return options{}
}

// WithWorkers sets the number of render workers. Zero or negative means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBackend attaches a device backend. The renderer falls back to the
// software path when the backend fails.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}
