package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/linemux"
)

// FiberAdapter wraps a linemux.Logger to implement Fiber's AllLogger
// interface (CommonLogger, FormatLogger, and WithLogger method sets).
// Every call becomes one tagged line on the shared stream. Fatal and
// Panic close the stream first so the final line is on the sink before
// the handler runs.
type FiberAdapter struct {
	logger       *linemux.Logger
	prefix       string
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
}

// NewFiberAdapter creates a new Fiber-compatible logger adapter
func NewFiberAdapter(logger *linemux.Logger, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		logger: logger,
		prefix: "[fiber] ",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior
		},
		panicHandler: func(msg string) {
			panic(msg) // Default behavior
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// WithFiberPrefix sets the text prepended to every forwarded line
func WithFiberPrefix(prefix string) FiberOption {
	return func(a *FiberAdapter) {
		a.prefix = prefix
	}
}

// fatal emits the final line, drains the stream, and hands off
func (a *FiberAdapter) fatal(msg string) {
	a.logger.Line(a.prefix, "FATAL ", msg)
	_ = a.logger.Close()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// panicOut emits the final line, drains the stream, and hands off
func (a *FiberAdapter) panicOut(msg string) {
	a.logger.Line(a.prefix, "PANIC ", msg)
	_ = a.logger.Close()

	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// --- CommonLogger interface implementation (7 methods) ---

// Trace logs at trace level
func (a *FiberAdapter) Trace(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Line(a.prefix, "TRACE ", msg)
}

// Debug logs at debug level
func (a *FiberAdapter) Debug(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Line(a.prefix, "DEBUG ", msg)
}

// Info logs at info level
func (a *FiberAdapter) Info(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Line(a.prefix, "INFO ", msg)
}

// Warn logs at warn level
func (a *FiberAdapter) Warn(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Line(a.prefix, "WARN ", msg)
}

// Error logs at error level
func (a *FiberAdapter) Error(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Line(a.prefix, "ERROR ", msg)
}

// Fatal logs a fatal message and triggers the fatal handler
func (a *FiberAdapter) Fatal(v ...any) {
	a.fatal(fmt.Sprint(v...))
}

// Panic logs a panic message and triggers the panic handler
func (a *FiberAdapter) Panic(v ...any) {
	a.panicOut(fmt.Sprint(v...))
}

// Write makes FiberAdapter implement io.Writer, for use with Fiber's
// output redirection. A trailing newline is stripped so the stream's own
// terminator stays the only line break.
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	a.logger.Line(a.prefix, msg)
	return len(p), nil
}

// --- FormatLogger interface implementation (7 methods) ---

// Tracef logs at trace level with printf-style formatting
func (a *FiberAdapter) Tracef(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.logger.Line(a.prefix, "TRACE ", msg)
}

// Debugf logs at debug level with printf-style formatting
func (a *FiberAdapter) Debugf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.logger.Line(a.prefix, "DEBUG ", msg)
}

// Infof logs at info level with printf-style formatting
func (a *FiberAdapter) Infof(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.logger.Line(a.prefix, "INFO ", msg)
}

// Warnf logs at warn level with printf-style formatting
func (a *FiberAdapter) Warnf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.logger.Line(a.prefix, "WARN ", msg)
}

// Errorf logs at error level with printf-style formatting
func (a *FiberAdapter) Errorf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.logger.Line(a.prefix, "ERROR ", msg)
}

// Fatalf logs a fatal message and triggers the fatal handler
func (a *FiberAdapter) Fatalf(format string, v ...any) {
	a.fatal(fmt.Sprintf(format, v...))
}

// Panicf logs a panic message and triggers the panic handler
func (a *FiberAdapter) Panicf(format string, v ...any) {
	a.panicOut(fmt.Sprintf(format, v...))
}

// --- WithLogger interface implementation (7 methods) ---

// pairArgs renders key-value pairs as " key=value" after the message. A
// trailing key with no value renders with an empty value.
func pairArgs(args []any, keysAndValues []any) []any {
	for i := 0; i < len(keysAndValues); i += 2 {
		args = append(args, " ", keysAndValues[i], "=")
		if i+1 < len(keysAndValues) {
			args = append(args, keysAndValues[i+1])
		}
	}
	return args
}

// tagged assembles one line: prefix, tag, message, then key=value pairs
func (a *FiberAdapter) tagged(tag, msg string, keysAndValues []any) {
	args := make([]any, 0, len(keysAndValues)*2+3)
	args = append(args, a.prefix, tag, msg)
	args = pairArgs(args, keysAndValues)
	a.logger.Line(args...)
}

// Tracew logs at trace level with structured key-value pairs
func (a *FiberAdapter) Tracew(msg string, keysAndValues ...any) {
	a.tagged("TRACE ", msg, keysAndValues)
}

// Debugw logs at debug level with structured key-value pairs
func (a *FiberAdapter) Debugw(msg string, keysAndValues ...any) {
	a.tagged("DEBUG ", msg, keysAndValues)
}

// Infow logs at info level with structured key-value pairs
func (a *FiberAdapter) Infow(msg string, keysAndValues ...any) {
	a.tagged("INFO ", msg, keysAndValues)
}

// Warnw logs at warn level with structured key-value pairs
func (a *FiberAdapter) Warnw(msg string, keysAndValues ...any) {
	a.tagged("WARN ", msg, keysAndValues)
}

// Errorw logs at error level with structured key-value pairs
func (a *FiberAdapter) Errorw(msg string, keysAndValues ...any) {
	a.tagged("ERROR ", msg, keysAndValues)
}

// Fatalw logs a fatal message with key-value pairs and triggers the fatal
// handler
func (a *FiberAdapter) Fatalw(msg string, keysAndValues ...any) {
	args := pairArgs([]any{a.prefix, "FATAL ", msg}, keysAndValues)
	a.logger.Line(args...)
	_ = a.logger.Close()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panicw logs a panic message with key-value pairs and triggers the panic
// handler
func (a *FiberAdapter) Panicw(msg string, keysAndValues ...any) {
	args := pairArgs([]any{a.prefix, "PANIC ", msg}, keysAndValues)
	a.logger.Line(args...)
	_ = a.logger.Close()

	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}
