package widget

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/event"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/style"
)

const selectorKey = props.KeySelector

// Get returns the property key of widget w. A missing property or a
// property of a different type is a programming error and panics.
func Get[T any](w Container, key string) T {
	return ecs.MustGet[T](w.ctx.store, key, w.e)
}

// TryGet returns the property key of widget w, if present with type T.
func TryGet[T any](w Container, key string) (T, bool) {
	v, err := ecs.Get[T](w.ctx.store, key, w.e)
	return v, err == nil
}

// GetMut returns a pointer to the storage of property key. Writes through
// the pointer are neither detected nor notified; use Set for that.
func GetMut[T any](w Container, key string) *T {
	p, err := ecs.GetMut[T](w.ctx.store, key, w.e)
	if err != nil {
		panic(fmt.Sprintf("widget %s: property %q: %v", w.e, key, err))
	}
	return p
}

// Set writes property key of widget w.
//
// Writing a value equal to the current one does nothing. Otherwise every
// entity sharing the storage of the property is marked dirty and notified
// with an event.ChangedEvent, unless its change filter suppresses the
// notification. A missing property is registered as owned by w.
// Writing a different type than the one stored panics.
//
// Setting "enabled" toggles the "disabled" pseudo-state of the widget's
// selector and re-styles the widget.
func Set[T any](w Container, key string, value T) {
	ctx := w.ctx
	if !ctx.store.IsAlive(w.e) {
		panic(fmt.Sprintf("widget %s: cannot set property %q of destroyed widget", w.e, key))
	}
	if !ctx.store.Has(w.e, key) {
		ecs.Register(ctx.store, w.e, key, value)
		ctx.changed(w.e, key)
	} else {
		p, err := ecs.GetMut[T](ctx.store, key, w.e)
		if err != nil {
			panic(fmt.Sprintf("widget %s: cannot set property %q: %v", w.e, key, err))
		}
		if equal(*p, value) {
			return
		}
		ctx.changed(w.e, key)
		*p = value
	}
	if key == props.KeyEnabled {
		if enabled, ok := any(value).(bool); ok {
			ctx.setEnabled(w.e, enabled)
		}
	}
}

// equal compares with an Equal method, if T has one.
func equal[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// changed marks every alias of (e, key) dirty and notifies it.
func (ctx *Context) changed(e ecs.Entity, key string) {
	for _, loc := range ctx.store.Aliases(e, key) {
		frame.MarkAsDirtySelf(loc.Entity, ctx.store, ctx.frame)
		if filterOf(ctx, loc.Entity).Notifies(loc.Key) {
			ctx.events.PushEventDirect(loc.Entity, event.ChangedEvent{Entity: loc.Entity, Key: loc.Key})
		}
	}
}

func (ctx *Context) setEnabled(e ecs.Entity, enabled bool) {
	sel, err := ecs.GetMut[style.Selector](ctx.store, selectorKey, e)
	if err != nil {
		return
	}
	sel.SetState(style.StateDisabled, !enabled)
	ctx.UpdateWidget(e, false, false)
}

// --- Change filter ---------------------------------------------------------

type filterKind uint8

const (
	filterComplete filterKind = iota
	filterNothing
	filterList
)

// Filter decides which property changes of a widget are notified with a
// ChangedEvent. It is stored as component "on_changed_filter". Widgets
// without a filter are not notified at all.
type Filter struct {
	kind filterKind
	keys []string
}

// FilterComplete filters all changes: no notifications.
func FilterComplete() Filter {
	return Filter{kind: filterComplete}
}

// FilterNothing lets every change pass.
func FilterNothing() Filter {
	return Filter{kind: filterNothing}
}

// FilterList lets changes of the listed keys pass.
func FilterList(keys ...string) Filter {
	return Filter{kind: filterList, keys: slices.Clone(keys)}
}

// Notifies checks if a change of key passes the filter.
func (f Filter) Notifies(key string) bool {
	switch f.kind {
	case filterNothing:
		return true
	case filterList:
		return slices.Contains(f.keys, key)
	}
	return false
}

// Equal compares two filters.
func (f Filter) Equal(other Filter) bool {
	return f.kind == other.kind && slices.Equal(f.keys, other.keys)
}

func (f Filter) String() string {
	switch f.kind {
	case filterNothing:
		return "filter(nothing)"
	case filterList:
		return fmt.Sprintf("filter%v", f.keys)
	}
	return "filter(complete)"
}

func filterOf(ctx *Context, e ecs.Entity) Filter {
	f, err := ecs.Get[Filter](ctx.store, props.KeyFilter, e)
	if err != nil {
		return FilterComplete()
	}
	return f
}
