package linemux

import (
	"io"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a Logger with the accumulated configuration and starts
// its drain worker.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.cfg)
}

// Target sets the sink target ("stdout", "stderr", or "discard").
func (b *Builder) Target(target string) *Builder {
	b.cfg.Target = target
	return b
}

// Sink sets a custom sink writer, taking precedence over Target.
func (b *Builder) Sink(w io.Writer) *Builder {
	b.cfg.Sink = w
	return b
}

// TimeLayout sets the layout used to render time.Time values.
func (b *Builder) TimeLayout(layout string) *Builder {
	b.cfg.TimeLayout = layout
	return b
}

// MaxRenderDepth sets the traversal depth for composite values.
func (b *Builder) MaxRenderDepth(depth int64) *Builder {
	b.cfg.MaxRenderDepth = depth
	return b
}

// BufferSize sets the initial render buffer capacity in bytes.
func (b *Builder) BufferSize(size int64) *Builder {
	b.cfg.BufferSize = size
	return b
}

// InternalErrorsToStderr enables mirroring worker failures to stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Override applies "key=value" overrides to the configuration.
func (b *Builder) Override(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.cfg.ApplyOverride(overrides...); err != nil {
		b.err = err
	}
	return b
}

// Example usage:
// logger, err := linemux.NewBuilder().
//
//	Target("stderr").
//	TimeLayout(time.RFC3339).
//	BufferSize(8192).
//	Build()
//
// if err == nil {
//
//	 defer logger.Close()
//	 logger.Line("writer ready")
//
// }
