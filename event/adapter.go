package event

import "github.com/npillmayer/widgetry/ecs"

// Adapter is the entry point for posting events. It is safe for concurrent
// use.
type Adapter struct {
	queue *Queue
}

// NewAdapter creates an adapter with an empty queue.
func NewAdapter() *Adapter {
	return &Adapter{queue: &Queue{}}
}

// PushEvent posts ev for bottom-up delivery, starting at e.
func (a *Adapter) PushEvent(e ecs.Entity, ev Event) {
	a.queue.Push(Entry{Source: e, Event: ev, Strategy: BottomUp})
	tracer().P("entity", e).Debugf("event %v posted", ev)
}

// PushEventDirect posts ev for delivery to e only.
func (a *Adapter) PushEventDirect(e ecs.Entity, ev Event) {
	a.queue.Push(Entry{Source: e, Event: ev, Strategy: Direct})
	tracer().P("entity", e).Debugf("event %v posted directly", ev)
}

// Len returns the number of pending events.
func (a *Adapter) Len() int {
	return a.queue.Len()
}

// Queue exposes the underlying queue to the consumer.
func (a *Adapter) Queue() *Queue {
	return a.queue
}
