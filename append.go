package linemux

import (
	"fmt"
	"os"
	"strings"

	"github.com/petermattis/goid"
)

// Append enqueues v for the calling goroutine and returns the receiver so
// calls can be chained. Enqueueing never blocks on sink I/O. The first
// append while the sink is unclaimed takes ownership; appends from other
// goroutines are buffered until ownership rotates to them at a flush
// boundary. Values appended after Close or after a worker failure are
// refused and counted as dropped.
func (l *Logger) Append(v any) *Logger {
	gid := goid.Get()

	l.mu.Lock()
	if l.sched.closing || l.sched.fatal != nil {
		l.sched.dropped++
		l.mu.Unlock()
		return l
	}

	el := l.sched.queue.PushBack(entry{gid: gid, value: v})
	l.sched.appended++

	wake := false
	switch {
	case l.sched.owner == noOwner:
		// Unclaimed sink: the caller takes ownership
		l.sched.owner = gid
		l.sched.cursor = el
		wake = true
	case l.sched.owner == gid && l.sched.cursor == nil:
		// The owner's run had dried up; this entry restarts it
		l.sched.cursor = el
		wake = true
	}
	l.mu.Unlock()

	if wake {
		l.cond.Signal()
	}
	return l
}

// Print appends each argument in order. Arguments render back to back
// with no separators, exactly as chained Append calls would.
func (l *Logger) Print(args ...any) *Logger {
	for _, arg := range args {
		l.Append(arg)
	}
	return l
}

// Line appends the arguments followed by Ln, producing one complete line.
func (l *Logger) Line(args ...any) *Logger {
	l.Print(args...)
	return l.Append(Ln)
}

// internalLog handles writing internal diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "linemux: " prefix
	if !strings.HasPrefix(format, "linemux: ") {
		format = "linemux: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
