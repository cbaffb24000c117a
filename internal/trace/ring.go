package trace

import (
	"io"
	"sync"
)

// Ring keeps the last N events in memory.
type Ring struct {
	mu     sync.Mutex
	events []Event
	head   int
	full   bool
	level  Level
}

// NewRing creates a ring tracer holding up to capacity events.
func NewRing(capacity int, level Level) *Ring {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Ring{events: make([]Event, capacity), level: level}
}

func (r *Ring) Emit(ev Event) {
	if !r.level.Allows(ev.Scope) {
		return
	}
	ev.Seq = nextSeq()
	r.mu.Lock()
	r.events[r.head] = ev
	r.head = (r.head + 1) % len(r.events)
	if r.head == 0 {
		r.full = true
	}
	r.mu.Unlock()
}

// Snapshot returns the stored events oldest first.
func (r *Ring) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		return append([]Event(nil), r.events[:r.head]...)
	}
	out := make([]Event, 0, len(r.events))
	out = append(out, r.events[r.head:]...)
	return append(out, r.events[:r.head]...)
}

// Dump writes the snapshot to w.
func (r *Ring) Dump(w io.Writer, format Format) error {
	for _, ev := range r.Snapshot() {
		if _, err := w.Write(Render(ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Ring) Flush() error { return nil }
func (r *Ring) Close() error { return nil }
func (r *Ring) Level() Level { return r.level }
