package widget

import (
	"fmt"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/style"
	"github.com/npillmayer/widgetry/tree"
)

// Container is a widget entity together with the context it lives in.
// Containers are cheap values and may be copied freely.
type Container struct {
	e   ecs.Entity
	ctx *Context
}

// Entity returns the widget's entity.
func (w Container) Entity() ecs.Entity { return w.e }

// Context returns the application context of the widget.
func (w Container) Context() *Context { return w.ctx }

// Has checks if the widget has a property key.
func (w Container) Has(key string) bool {
	return w.ctx.store.Has(w.e, key)
}

// ID returns the id of the widget, or "".
func (w Container) ID() string {
	id, _ := TryGet[string](w, props.KeyID)
	return id
}

// Selector returns a copy of the widget's selector.
func (w Container) Selector() (style.Selector, bool) {
	return TryGet[style.Selector](w, selectorKey)
}

// Update runs the theme cascade for the widget, see UpdateWidget.
func (w Container) Update(force bool) {
	w.ctx.UpdateWidget(w.e, force, true)
}

func (w Container) String() string {
	if id := w.ID(); id != "" {
		return fmt.Sprintf("widget(%s %q)", w.e, id)
	}
	return fmt.Sprintf("widget(%s)", w.e)
}

// --- Navigation ------------------------------------------------------------

// Parent returns the parent widget. Asking a root for its parent panics.
func (w Container) Parent() Container {
	return w.ctx.Widget(w.ctx.tree.Parent(w.e))
}

// TryParent returns the parent widget, if any.
func (w Container) TryParent() (Container, bool) {
	p, ok := w.ctx.tree.TryParent(w.e)
	return w.ctx.Widget(p), ok
}

func (w Container) hasID(id string) tree.Predicate {
	return func(e, _ ecs.Entity) bool {
		x, err := ecs.Get[string](w.ctx.store, props.KeyID, e)
		return err == nil && x == id
	}
}

// Child returns the first descendant (depth-first) with the given id.
// If there is none, Child panics.
func (w Container) Child(id string) Container {
	ch, ok := w.TryChild(id)
	if !ok {
		panic(fmt.Sprintf("widget %s has no descendant with id %q", w.e, id))
	}
	return ch
}

// TryChild returns the first descendant (depth-first) with the given id.
func (w Container) TryChild(id string) (Container, bool) {
	ch, ok := w.ctx.tree.FirstDescendantWith(w.e, w.hasID(id))
	return w.ctx.Widget(ch), ok
}

// ChildFromIndex returns the i-th child. An index out of range panics.
func (w Container) ChildFromIndex(i int) Container {
	ch, ok := w.TryChildFromIndex(i)
	if !ok {
		panic(fmt.Sprintf("widget %s has no child at index %d", w.e, i))
	}
	return ch
}

// TryChildFromIndex returns the i-th child, if present.
func (w Container) TryChildFromIndex(i int) (Container, bool) {
	ch, ok := w.ctx.tree.Child(w.e, i)
	return w.ctx.Widget(ch), ok
}

// ChildCount returns the number of children.
func (w Container) ChildCount() int {
	return w.ctx.tree.ChildCount(w.e)
}

// Sibling returns the sibling with the given id. Panics if there is none.
func (w Container) Sibling(id string) Container {
	s, ok := w.TrySibling(id)
	if !ok {
		panic(fmt.Sprintf("widget %s has no sibling with id %q", w.e, id))
	}
	return s
}

// TrySibling returns the sibling with the given id, if any.
func (w Container) TrySibling(id string) (Container, bool) {
	p, ok := w.ctx.tree.TryParent(w.e)
	if !ok {
		return Container{}, false
	}
	match := w.hasID(id)
	for _, s := range w.ctx.tree.Children(p) {
		if s != w.e && match(s, p) {
			return w.ctx.Widget(s), true
		}
	}
	return Container{}, false
}

// --- Children --------------------------------------------------------------

// AppendChild attaches child as the last child of w. The child will be
// styled with the next theme update and w is marked dirty.
func (w Container) AppendChild(child ecs.Entity) error {
	if err := w.ctx.tree.AddChild(w.e, child); err != nil {
		return err
	}
	w.ctx.attached(w.e, child)
	return nil
}

// AppendChildToOverlay attaches child to the overlay root, which is
// created if necessary. Overlay widgets are laid out and rendered after the
// main tree, on top of it.
func (w Container) AppendChildToOverlay(child ecs.Entity) error {
	ov := w.ctx.overlay()
	if err := w.ctx.tree.AddChild(ov, child); err != nil {
		return err
	}
	w.ctx.attached(ov, child)
	return nil
}

// RemoveChild queues child, which has to be a child of w, for removal.
func (w Container) RemoveChild(child ecs.Entity) {
	p, ok := w.ctx.tree.TryParent(child)
	if !ok || p != w.e {
		tracer().P("entity", w.e).Errorf("cannot remove %s: not a child", child)
		return
	}
	w.ctx.queueRemoval(child)
}

// RemoveChildFromOverlay queues child, which has to be a child of the
// overlay root, for removal.
func (w Container) RemoveChildFromOverlay(child ecs.Entity) {
	ov, ok := w.ctx.tree.Overlay()
	if p, hasParent := w.ctx.tree.TryParent(child); !ok || !hasParent || p != ov {
		tracer().Errorf("cannot remove %s from overlay: not an overlay child", child)
		return
	}
	w.ctx.queueRemoval(child)
}

// ClearChildren queues all children of w for removal.
func (w Container) ClearChildren() {
	for _, ch := range w.ctx.tree.Children(w.e) {
		w.ctx.queueRemoval(ch)
	}
}

func (ctx *Context) attached(parent, child ecs.Entity) {
	if sel, err := ecs.GetMut[style.Selector](ctx.store, selectorKey, child); err == nil {
		sel.SetDirty(true)
	}
	frame.MarkAsDirtySelf(parent, ctx.store, ctx.frame)
}

// queueRemoval schedules e for destruction. The whole subtree is excised
// from the dirty list right away.
func (ctx *Context) queueRemoval(e ecs.Entity) {
	ctx.tree.Walk(e, func(x ecs.Entity) bool {
		ctx.frame.Excise(x)
		return true
	})
	ctx.frame.QueueRemoval(e)
}
