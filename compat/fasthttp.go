package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/linemux"
)

// FastHTTPAdapter wraps a linemux.Logger to implement fasthttp's Logger
// interface. Every Printf call becomes one whole line on the shared stream.
type FastHTTPAdapter struct {
	logger      *linemux.Logger
	prefix      string
	tagDetector func(string) string // Classifies a message into a severity tag
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *linemux.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:      logger,
		prefix:      "[fasthttp] ",
		tagDetector: DetectTag, // Default tag detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithPrefix sets the text prepended to every forwarded line
func WithPrefix(prefix string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.prefix = prefix
	}
}

// WithTagDetector sets a custom function to classify message severity.
// A nil detector or an empty tag leaves the line untagged.
func WithTagDetector(detector func(string) string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.tagDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	tag := ""
	if a.tagDetector != nil {
		tag = a.tagDetector(msg)
	}

	if tag != "" {
		a.logger.Line(a.prefix, tag, " ", msg)
	} else {
		a.logger.Line(a.prefix, msg)
	}
}

// DetectTag attempts to classify a message's severity from its content
func DetectTag(msg string) string {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return "ERROR"
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return "WARN"
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return "DEBUG"
	}

	// Leave ordinary messages untagged
	return ""
}
