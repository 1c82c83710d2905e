package event

import "github.com/npillmayer/widgetry/ecs"

// Handler reacts to an event delivered to widget e. Returning true marks
// the event as handled and stops bottom-up propagation.
type Handler func(e ecs.Entity, ev Event) bool

// ParentFunc returns the parent of an entity, if any.
type ParentFunc func(e ecs.Entity) (ecs.Entity, bool)

// Dispatcher routes dequeued events to handlers registered per entity.
type Dispatcher struct {
	handlers map[ecs.Entity][]Handler
	parentOf ParentFunc
}

// NewDispatcher creates a dispatcher which uses parentOf to bubble events.
func NewDispatcher(parentOf ParentFunc) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[ecs.Entity][]Handler),
		parentOf: parentOf,
	}
}

// Handle registers a handler for entity e. Handlers of an entity are called
// in registration order until one of them returns true.
func (d *Dispatcher) Handle(e ecs.Entity, h Handler) {
	d.handlers[e] = append(d.handlers[e], h)
}

// Forget drops all handlers of e.
func (d *Dispatcher) Forget(e ecs.Entity) {
	delete(d.handlers, e)
}

// Dispatch delivers one entry and reports if it has been handled.
func (d *Dispatcher) Dispatch(entry Entry) bool {
	e := entry.Source
	for {
		if d.deliver(e, entry.Event) {
			return true
		}
		if entry.Strategy == Direct || d.parentOf == nil {
			return false
		}
		p, ok := d.parentOf(e)
		if !ok {
			return false
		}
		e = p
	}
}

func (d *Dispatcher) deliver(e ecs.Entity, ev Event) bool {
	for _, h := range d.handlers[e] {
		if h(e, ev) {
			return true
		}
	}
	return false
}

// DrainQueue dispatches every entry of q, including entries pushed by
// handlers during the drain. It returns the number of entries dispatched.
func (d *Dispatcher) DrainQueue(q *Queue) int {
	n := 0
	for entry := range q.Dequeue().All() {
		if !d.Dispatch(entry) {
			tracer().P("entity", entry.Source).Debugf("event %v not handled", entry.Event)
		}
		n++
	}
	return n
}
