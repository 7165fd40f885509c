package linemux

import (
	"container/list"
)

// drain is the single consumer loop running in its own goroutine. It
// renders the owning goroutine's entries into the shared buffer, emits a
// segment whenever a flush token lands, and rotates ownership to the
// queue head after each emission. It terminates when Close is called or
// when rendering or the sink fails.
func (l *Logger) drain() {
	defer close(l.done)

	l.mu.Lock()
	defer l.mu.Unlock()

	for {
		for !l.sched.closing && l.sched.cursor == nil {
			l.cond.Wait()
		}

		if l.sched.closing {
			l.drainAll()
			return
		}

		if err := l.run(); err != nil {
			l.fail(err)
			return
		}
	}
}

// run consumes the owner's entries from the cursor until a flush boundary
// emits a segment or the run dries up. On a boundary the flushed entry is
// removed and ownership rotates before the segment is written, so the
// claim rules in Append observe a consistent queue while the sink write
// is in flight. Called with the mutex held.
func (l *Logger) run() error {
	for l.sched.cursor != nil {
		el := l.sched.cursor
		ent := el.Value.(entry)

		if err := l.render(ent.value); err != nil {
			return err
		}

		if l.buf.Flushed() {
			l.sched.queue.Remove(el)
			l.rotate()
			return l.emit()
		}

		// Not a boundary: drop the consumed entry and advance to the
		// owner's next one, skipping other goroutines' entries
		next := el.Next()
		l.sched.queue.Remove(el)
		l.sched.cursor = nextOf(ent.gid, next)
	}
	return nil
}

// drainAll empties the queue grouped by goroutine: all entries of the
// goroutine at the queue head render in order, then the next head's, until
// nothing remains. A single final segment is then forced out so buffered
// text is never lost. Called with the mutex held, with closing set.
func (l *Logger) drainAll() {
	for l.sched.queue.Len() > 0 {
		gid := l.sched.queue.Front().Value.(entry).gid
		for el := l.sched.queue.Front(); el != nil; {
			next := el.Next()
			if ent := el.Value.(entry); ent.gid == gid {
				if err := l.render(ent.value); err != nil {
					l.fail(err)
					return
				}
				l.sched.queue.Remove(el)
			}
			el = next
		}
	}

	l.sched.owner = noOwner
	l.sched.cursor = nil

	if err := l.emit(); err != nil {
		l.fail(err)
	}
}

// rotate hands the sink to the goroutine at the queue head, first by
// queue position rather than by wait time. An empty queue releases
// ownership entirely.
func (l *Logger) rotate() {
	head := l.sched.queue.Front()
	if head == nil {
		l.sched.owner = noOwner
		l.sched.cursor = nil
		return
	}
	l.sched.owner = head.Value.(entry).gid
	l.sched.cursor = head
	l.sched.rotations++
}

// render converts one value inside the shared buffer. Panics raised by
// user String, Error, or dumped accessor methods surface as errors.
func (l *Logger) render(v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmtErrorf("render panic: %v", r)
		}
	}()
	l.buf.WriteValue(v)
	return nil
}

// emit writes the buffered segment to the sink. The mutex is released for
// the duration of the write so appenders never wait on sink I/O; the
// buffer is safe to hand over because this goroutine is its only writer.
// An empty segment is discarded without touching the sink.
func (l *Logger) emit() error {
	if l.buf.Len() == 0 {
		l.buf.Reset()
		return nil
	}
	seg := l.buf.Take()

	l.mu.Unlock()
	_, err := l.sink.Write(seg)
	l.mu.Lock()

	if err != nil {
		return fmtErrorf("sink write: %w", err)
	}
	l.sched.emitted++
	return nil
}

// fail records the first fatal error; the worker terminates right after.
func (l *Logger) fail(err error) {
	if l.sched.fatal == nil {
		l.sched.fatal = err
	}
	l.internalLog("worker stopped: %v\n", err)
}

// nextOf returns the first element at or after el owned by gid, or nil
// when the remaining queue holds only other goroutines' entries.
func nextOf(gid int64, el *list.Element) *list.Element {
	for ; el != nil; el = el.Next() {
		if el.Value.(entry).gid == gid {
			return el
		}
	}
	return nil
}
