package compat

import (
	"fmt"
	stdlog "log"

	"github.com/lixenwraith/linemux"
)

// Builder provides a flexible way to create configured stream adapters for gnet and fasthttp
// It can use an existing *linemux.Logger instance or create a new one from a *linemux.Config
type Builder struct {
	logger *linemux.Logger
	logCfg *linemux.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// Recommended for applications that already have a central stream
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *linemux.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("linemux/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// This is used only if an existing logger is NOT provided via WithLogger
// If neither WithLogger nor WithConfig is used, a default logger will be created
func (b *Builder) WithConfig(cfg *linemux.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*linemux.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing logger was provided, so we use it
	if b.logger != nil {
		return b.logger, nil
	}

	cfg := b.logCfg
	if cfg == nil {
		// If no config was provided, use the default
		cfg = linemux.DefaultConfig()
	}

	l, err := linemux.New(cfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
// It can be used for servers that require a standard gnet logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildFiber creates a Fiber adapter
func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFiberAdapter(l, opts...), nil
}

// BuildStdLogger creates a standard library logger bound to the stream
func (b *Builder) BuildStdLogger(prefix string, flag int) (*stdlog.Logger, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewStdLogger(l, prefix, flag), nil
}

// GetLogger returns the underlying *linemux.Logger instance
// If a logger has not been provided or created yet, it will be initialized
func (b *Builder) GetLogger() (*linemux.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
// The following demonstrates how to route gnet and fasthttp logging
// through a single shared stream
//
//	// 1. Create the application's stream
//	logger, err := linemux.NewBuilder().Target("stderr").Build()
//	if err != nil {
//		panic(fmt.Sprintf("failed to start stream: %v", err))
//	}
//	defer logger.Close()
//
//	// 2. Create a builder and provide the existing logger
//	builder := compat.NewBuilder().WithLogger(logger)
//
//	// 3. Build the required adapters
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	// 4. Configure your servers with the adapters
//
//	// For gnet:
//	var events gnet.EventHandler // your-event-handler
//	// The adapter is passed directly into the gnet options
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	// For fasthttp:
//	// The adapter is assigned directly to the server's Logger field
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")
