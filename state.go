package linemux

import (
	"container/list"
)

// entry is one deferred unit of work: a value appended by a goroutine and
// the identity of that goroutine. Entries are immutable once queued.
type entry struct {
	gid   int64
	value any
}

// scheduler holds the ownership state shared between the ingress path and
// the drain worker. Every field is guarded by the Logger mutex; the render
// buffer joins the group because only the worker writes it, and only while
// holding that mutex.
type scheduler struct {
	queue   *list.List    // entries in arrival order
	cursor  *list.Element // owner's next entry; nil when the run is dry
	owner   int64         // goroutine id holding the sink, noOwner when free
	closing bool
	fatal   error // first worker failure, sticky

	// Activity counters, snapshotted by Stats
	appended  uint64
	emitted   uint64
	rotations uint64
	dropped   uint64
}
