package linemux

import (
	"sync"
)

// Shared stdout logger for package-level functions, started on first use.
var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the package-level logger, starting one on stdout with
// default settings if none is running.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		l, err := New(DefaultConfig())
		if err != nil {
			// Defaults always validate; reaching here is a programming error
			panic(err)
		}
		defaultLogger = l
	}
	return defaultLogger
}

// CloseDefault drains and stops the package-level logger. A later call to
// any package-level function starts a fresh one.
func CloseDefault() error {
	defaultMu.Lock()
	l := defaultLogger
	defaultLogger = nil
	defaultMu.Unlock()

	if l == nil {
		return nil
	}
	return l.Close()
}

// Package-level functions that delegate to the default logger

// Append enqueues v on the default logger for the calling goroutine.
func Append(v any) *Logger {
	return Default().Append(v)
}

// Print appends each argument to the default logger in order.
func Print(args ...any) *Logger {
	return Default().Print(args...)
}

// Line appends the arguments and a line terminator to the default logger.
func Line(args ...any) *Logger {
	return Default().Line(args...)
}
