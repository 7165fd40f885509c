package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/linemux"
)

// GnetAdapter wraps a linemux.Logger to implement gnet's logging.Logger
// interface. Each leveled call becomes one tagged line on the shared stream.
type GnetAdapter struct {
	logger       *linemux.Logger
	prefix       string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *linemux.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		prefix: "[gnet] ",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetPrefix sets the text prepended to every forwarded line
func WithGnetPrefix(prefix string) GnetOption {
	return func(a *GnetAdapter) {
		a.prefix = prefix
	}
}

// Debugf logs a debug message with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Line(a.prefix, "DEBUG ", msg)
}

// Infof logs an info message with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Line(a.prefix, "INFO ", msg)
}

// Warnf logs a warning message with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Line(a.prefix, "WARN ", msg)
}

// Errorf logs an error message with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Line(a.prefix, "ERROR ", msg)
}

// Fatalf logs a fatal message, drains the stream, and triggers the fatal
// handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Line(a.prefix, "FATAL ", msg)

	// Ensure everything queued reaches the sink before the process goes down
	_ = a.logger.Close()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
