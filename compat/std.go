package compat

import (
	stdlog "log"
	"strings"

	"github.com/lixenwraith/linemux"
)

// LineWriter adapts a linemux.Logger to io.Writer. Every Write call
// becomes one whole line on the shared stream, so writers that emit one
// message per call (such as the standard library logger) stay atomic.
// Writes after the logger has stopped are dropped and counted in Stats.
type LineWriter struct {
	logger *linemux.Logger
}

// NewLineWriter creates an io.Writer adapter around the logger
func NewLineWriter(logger *linemux.Logger) *LineWriter {
	return &LineWriter{logger: logger}
}

// Write forwards p as a single line. A trailing newline is stripped so
// the stream's own terminator stays the only line break.
func (w *LineWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	w.logger.Line(msg)
	return len(p), nil
}

// NewStdLogger returns a standard library logger whose output is
// serialized through the shared stream
func NewStdLogger(logger *linemux.Logger, prefix string, flag int) *stdlog.Logger {
	return stdlog.New(NewLineWriter(logger), prefix, flag)
}
