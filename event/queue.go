package event

import (
	"fmt"
	"iter"
	"sync"

	"github.com/npillmayer/widgetry/ecs"
)

// Strategy selects how an event is delivered.
type Strategy uint8

// Delivery strategies.
const (
	BottomUp Strategy = iota // bubble from the source through its ancestors
	Direct                   // deliver to the source only
)

func (s Strategy) String() string {
	if s == Direct {
		return "direct"
	}
	return "bottom-up"
}

// Event is any value posted to the queue.
type Event any

// ChangedEvent tells a widget that one of its properties is about to
// change. Key is the property key local to Entity.
type ChangedEvent struct {
	Entity ecs.Entity
	Key    string
}

func (ev ChangedEvent) String() string {
	return fmt.Sprintf("changed(%s.%s)", ev.Entity, ev.Key)
}

// Entry is a queued event together with its source and strategy.
type Entry struct {
	Source   ecs.Entity
	Event    Event
	Strategy Strategy
}

// Queue is a mutex-guarded FIFO of entries.
type Queue struct {
	mx      sync.Mutex
	entries []Entry
}

// Push appends an entry.
func (q *Queue) Push(entry Entry) {
	q.mx.Lock()
	defer q.mx.Unlock()
	q.entries = append(q.entries, entry)
}

// Len returns the number of pending entries.
func (q *Queue) Len() int {
	q.mx.Lock()
	defer q.mx.Unlock()
	return len(q.entries)
}

func (q *Queue) pop() (Entry, bool) {
	q.mx.Lock()
	defer q.mx.Unlock()
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	e := q.entries[0]
	q.entries[0] = Entry{}
	q.entries = q.entries[1:]
	if len(q.entries) == 0 {
		q.entries = nil
	}
	return e, true
}

// Dequeue returns a drain over the queue. Each call to Next pops one entry
// under the lock, so consumers may interleave dequeuing with other work,
// and entries pushed while draining are picked up as well.
func (q *Queue) Dequeue() *Drain {
	return &Drain{q: q}
}

// Drain pops entries from a queue one by one.
type Drain struct {
	q *Queue
}

// Next pops the oldest entry. It returns false if the queue is empty.
func (d *Drain) Next() (Entry, bool) {
	return d.q.pop()
}

// All returns an iterator popping entries until the queue is empty.
func (d *Drain) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for {
			e, ok := d.q.pop()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
