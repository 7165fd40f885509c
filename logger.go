// Package linemux serializes values streamed by many goroutines into
// whole-line segments on one shared sink. A single background worker owns
// the sink and rotates ownership between goroutines at flush boundaries,
// so partial lines from different goroutines never interleave.
package linemux

import (
	"container/list"
	"io"
	"sync"

	"github.com/lixenwraith/linemux/render"
)

// Logger is the core struct that encapsulates the queue, the ownership
// scheduler, and the drain worker's collaborators.
type Logger struct {
	mu    sync.Mutex
	cond  *sync.Cond
	sched scheduler

	buf  *render.Buffer
	sink io.Writer
	cfg  *Config

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// New creates a Logger and starts its drain worker. The configuration is
// cloned; later changes to cfg have no effect. A nil cfg uses defaults.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	w, err := cfg.sinkWriter()
	if err != nil {
		return nil, err
	}

	l := &Logger{
		buf: render.New().
			TimeLayout(cfg.TimeLayout).
			MaxDepth(int(cfg.MaxRenderDepth)).
			Capacity(int(cfg.BufferSize)),
		sink: w,
		cfg:  cfg,
		done: make(chan struct{}),
	}
	l.cond = sync.NewCond(&l.mu)
	l.sched.queue = list.New()

	go l.drain()

	return l, nil
}

// Close stops intake, drains every entry accepted before the call, and
// blocks until the worker has terminated. There is no timeout: Close
// returns when the sink has received everything. Safe to call from
// multiple goroutines; all calls return the same error, which is non-nil
// only if the worker failed.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.sched.closing = true
		l.mu.Unlock()
		l.cond.Signal()

		<-l.done

		l.mu.Lock()
		l.closeErr = l.sched.fatal
		l.mu.Unlock()
	})
	return l.closeErr
}

// Done returns a channel that is closed when the drain worker terminates,
// either through Close or through a fatal render or sink failure.
func (l *Logger) Done() <-chan struct{} {
	return l.done
}

// Err returns the error that stopped the worker. It is nil while the
// worker runs and after a clean Close.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sched.fatal
}

// GetConfig returns a copy of the configuration the logger was built with.
func (l *Logger) GetConfig() *Config {
	return l.cfg.Clone()
}
