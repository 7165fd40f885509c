package linemux

// Stats is a point-in-time snapshot of logger activity.
type Stats struct {
	Appended  uint64 // Values accepted into the queue
	Emitted   uint64 // Segments written to the sink
	Rotations uint64 // Ownership handoffs at flush boundaries
	Dropped   uint64 // Values refused after Close or a worker failure
	Pending   uint64 // Values still queued
}

// Stats returns a consistent snapshot of the activity counters. Every
// counter except Pending is monotonic over the logger's lifetime.
func (l *Logger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		Appended:  l.sched.appended,
		Emitted:   l.sched.emitted,
		Rotations: l.sched.rotations,
		Dropped:   l.sched.dropped,
		Pending:   uint64(l.sched.queue.Len()),
	}
}
