package linemux

import (
	"github.com/lixenwraith/linemux/render"
)

// Flush boundary tokens, re-exported so callers only import linemux.
const (
	// Ln terminates the current line and releases it to the sink.
	Ln = render.Ln
	// Flush releases buffered text to the sink without a newline.
	Flush = render.Flush
)

// Sink targets
const (
	TargetStdout  = "stdout"
	TargetStderr  = "stderr"
	TargetDiscard = "discard"
)

// Ownership
const (
	// noOwner marks the sink as unclaimed. Goroutine ids are never zero.
	noOwner int64 = 0
)
