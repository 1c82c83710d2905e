package frame

import (
	"slices"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
)

// DirtyKey is the component key of a widget's dirty flag.
const DirtyKey = props.KeyDirty

// State is the frame state of an application.
type State struct {
	root     ecs.Entity
	dirty    []ecs.Entity
	removals []ecs.Entity
}

// NewState creates the frame state for a widget tree with the given root.
func NewState(root ecs.Entity) *State {
	return &State{root: root}
}

// Root returns the root entity of the application.
func (fs *State) Root() ecs.Entity {
	return fs.root
}

// MarkAsDirty marks every entity sharing the storage of (e, key) as dirty.
func MarkAsDirty(key string, e ecs.Entity, store *ecs.Store, fs *State) {
	for _, x := range store.EntitiesOfComponent(key, e) {
		markEntity(x, store, fs)
	}
}

// MarkAsDirtySelf marks e as dirty, ignoring any sharing.
func MarkAsDirtySelf(e ecs.Entity, store *ecs.Store, fs *State) {
	markEntity(e, store, fs)
}

// markEntity ignores entities which are not alive, as the dirty list may
// never reference destroyed widgets.
func markEntity(e ecs.Entity, store *ecs.Store, fs *State) {
	if !store.IsAlive(e) {
		tracer().P("entity", e).Debugf("not marking dead entity dirty")
		return
	}
	if p, err := ecs.GetMut[bool](store, DirtyKey, e); err == nil {
		*p = true
	} else {
		ecs.Register(store, e, DirtyKey, true)
	}
	fs.push(e)
}

// IsDirty reads the dirty flag of e. Entities without a flag are clean.
func IsDirty(store *ecs.Store, e ecs.Entity) bool {
	d, err := ecs.Get[bool](store, DirtyKey, e)
	return err == nil && d
}

// SetDirtyFlag sets the dirty flag of e without touching the dirty list.
func SetDirtyFlag(store *ecs.Store, e ecs.Entity, dirty bool) {
	if p, err := ecs.GetMut[bool](store, DirtyKey, e); err == nil {
		*p = dirty
	} else {
		ecs.Register(store, e, DirtyKey, dirty)
	}
}

func (fs *State) push(e ecs.Entity) {
	if n := len(fs.dirty); n > 0 && fs.dirty[n-1] == e {
		return
	}
	fs.dirty = append(fs.dirty, e)
	tracer().P("entity", e).Debugf("marked dirty (%d in list)", len(fs.dirty))
}

// DirtyWidgets returns a copy of the dirty list.
func (fs *State) DirtyWidgets() []ecs.Entity {
	return slices.Clone(fs.dirty)
}

// Len returns the length of the dirty list.
func (fs *State) Len() int {
	return len(fs.dirty)
}

// IsListed checks if e is in the dirty list.
func (fs *State) IsListed(e ecs.Entity) bool {
	return slices.Contains(fs.dirty, e)
}

// Excise removes every occurrence of e from the dirty list. This has to be
// done for widgets which are about to be destroyed. Neighbours which become
// adjacent and equal are collapsed.
func (fs *State) Excise(e ecs.Entity) {
	fs.dirty = slices.DeleteFunc(fs.dirty, func(x ecs.Entity) bool { return x == e })
	fs.dirty = slices.Compact(fs.dirty)
}

// Clear resets the dirty flags of all listed entities and empties the list.
func (fs *State) Clear(store *ecs.Store) {
	for _, e := range fs.dirty {
		if p, err := ecs.GetMut[bool](store, DirtyKey, e); err == nil {
			*p = false
		}
	}
	fs.dirty = fs.dirty[:0]
}

// --- Deferred removal ------------------------------------------------------

// QueueRemoval schedules e (and, by construction, its subtree) for
// destruction at the next removal point of the frame. e is excised from
// the dirty list immediately.
func (fs *State) QueueRemoval(e ecs.Entity) {
	fs.Excise(e)
	if !slices.Contains(fs.removals, e) {
		fs.removals = append(fs.removals, e)
	}
}

// PendingRemovals returns the number of queued removals.
func (fs *State) PendingRemovals() int {
	return len(fs.removals)
}

// TakeRemovals returns the queued removals in queueing order and empties
// the queue.
func (fs *State) TakeRemovals() []ecs.Entity {
	r := fs.removals
	fs.removals = nil
	return r
}
