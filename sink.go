package linemux

import (
	"io"
	"os"
)

// sinkWriter resolves the writer the drain worker will own. An explicit
// Sink takes precedence over Target. While the logger runs, the worker is
// the sink's only writer; concurrent writes from elsewhere reintroduce
// the interleaving this package exists to prevent.
func (c *Config) sinkWriter() (io.Writer, error) {
	if c.Sink != nil {
		return c.Sink, nil
	}

	switch c.Target {
	case TargetStdout:
		return os.Stdout, nil
	case TargetStderr:
		return os.Stderr, nil
	case TargetDiscard:
		return io.Discard, nil
	default:
		return nil, fmtErrorf("invalid target: '%s' (use stdout, stderr, or discard)", c.Target)
	}
}
