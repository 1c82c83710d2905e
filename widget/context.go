package widget

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/event"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/layout"
	"github.com/npillmayer/widgetry/render"
	"github.com/npillmayer/widgetry/style"
	"github.com/npillmayer/widgetry/tree"
)

// Context holds everything belonging to one application: the component
// store, the widget tree, the frame state, the event adapter, the theme and
// the registries for layout objects, render objects and states.
type Context struct {
	store       *ecs.Store
	tree        *tree.Tree
	frame       *frame.State
	events      *event.Adapter
	theme       style.Theme
	layouts     *layout.Registry
	renders     *render.Registry
	states      map[ecs.Entity]State
	initialized map[ecs.Entity]bool
	onRemove    []func(ecs.Entity)
}

// NewContext creates a context for the tree t. theme may be nil, in which
// case nothing gets styled.
func NewContext(store *ecs.Store, t *tree.Tree, fs *frame.State, events *event.Adapter, theme style.Theme) *Context {
	if theme == nil {
		theme = style.EmptyTheme
	}
	return &Context{
		store:       store,
		tree:        t,
		frame:       fs,
		events:      events,
		theme:       theme,
		layouts:     layout.NewRegistry(),
		renders:     render.NewRegistry(),
		states:      make(map[ecs.Entity]State),
		initialized: make(map[ecs.Entity]bool),
	}
}

// Store returns the component store.
func (ctx *Context) Store() *ecs.Store { return ctx.store }

// Tree returns the widget tree.
func (ctx *Context) Tree() *tree.Tree { return ctx.tree }

// Frame returns the frame state.
func (ctx *Context) Frame() *frame.State { return ctx.frame }

// Events returns the event adapter.
func (ctx *Context) Events() *event.Adapter { return ctx.events }

// Layouts returns the registry of layout objects.
func (ctx *Context) Layouts() *layout.Registry { return ctx.layouts }

// RenderObjects returns the registry of render objects.
func (ctx *Context) RenderObjects() *render.Registry { return ctx.renders }

// Theme returns the current theme.
func (ctx *Context) Theme() style.Theme { return ctx.theme }

// SetTheme replaces the theme and forces a re-styling of all widgets with
// the next call to UpdateDirtySelectors.
func (ctx *Context) SetTheme(theme style.Theme) {
	if theme == nil {
		theme = style.EmptyTheme
	}
	ctx.theme = theme
	for _, root := range ctx.roots() {
		if sel, err := ecs.GetMut[style.Selector](ctx.store, selectorKey, root); err == nil {
			sel.SetDirty(true)
		}
	}
}

// Widget wraps entity e into a container.
func (ctx *Context) Widget(e ecs.Entity) Container {
	return Container{e: e, ctx: ctx}
}

// Root returns the container of the root widget.
func (ctx *Context) Root() Container {
	return ctx.Widget(ctx.tree.Root())
}

// OnRemove registers a function to be called for every entity destroyed by
// ProcessRemovals, before its components are dropped.
func (ctx *Context) OnRemove(fn func(ecs.Entity)) {
	ctx.onRemove = append(ctx.onRemove, fn)
}

// roots returns the main root and, if present, the overlay root.
func (ctx *Context) roots() []ecs.Entity {
	r := []ecs.Entity{ctx.tree.Root()}
	if ov, ok := ctx.tree.Overlay(); ok {
		r = append(r, ov)
	}
	return r
}

// overlay returns the overlay root, creating it on first use.
func (ctx *Context) overlay() ecs.Entity {
	if ov, ok := ctx.tree.Overlay(); ok {
		return ov
	}
	ov := ctx.store.CreateEntity()
	ctx.Builder().Standard(ov, "overlay", "")
	if err := ctx.tree.SetOverlay(ov); err != nil {
		panic("widget: cannot install overlay: " + err.Error())
	}
	frame.MarkAsDirtySelf(ov, ctx.store, ctx.frame)
	tracer().P("entity", ov).Infof("overlay created")
	return ov
}

// --- Removal ---------------------------------------------------------------

// ProcessRemovals destroys all widgets queued for removal, together with
// their subtrees. Children are destroyed before their parents, so a widget
// sharing a property of one of its ancestors never outlives that source.
// Bindings between other widgets of the subtree, e.g. siblings, may dangle
// for the rest of the pass. The former parents are marked dirty.
func (ctx *Context) ProcessRemovals() int {
	n := 0
	for _, e := range ctx.frame.TakeRemovals() {
		parent, hasParent := ctx.tree.TryParent(e)
		removed := ctx.tree.Remove(e)
		if removed == nil && ctx.store.IsAlive(e) && !ctx.tree.Contains(e) {
			removed = []ecs.Entity{e} // never attached
		}
		for _, x := range removed {
			ctx.destroy(x)
		}
		n += len(removed)
		if hasParent && ctx.tree.Contains(parent) {
			frame.MarkAsDirtySelf(parent, ctx.store, ctx.frame)
		}
	}
	if n > 0 {
		tracer().Debugf("destroyed %d widgets", n)
	}
	return n
}

func (ctx *Context) destroy(e ecs.Entity) {
	for _, fn := range ctx.onRemove {
		fn(e)
	}
	ctx.frame.Excise(e)
	ctx.layouts.Remove(e)
	ctx.renders.Remove(e)
	delete(ctx.states, e)
	delete(ctx.initialized, e)
	ctx.store.RemoveEntity(e)
}

// --- Selectors -------------------------------------------------------------

// UpdateDirtySelectors runs the theme cascade for every widget whose
// selector is dirty, marking the re-styled widgets dirty. Subtrees of
// re-styled widgets are handled by the cascade.
func (ctx *Context) UpdateDirtySelectors() {
	for _, root := range ctx.roots() {
		ctx.tree.Walk(root, func(e ecs.Entity) bool {
			sel, err := ecs.GetMut[style.Selector](ctx.store, selectorKey, e)
			if err != nil || !sel.Dirty() {
				return true
			}
			ctx.UpdateWidget(e, false, true)
			return false
		})
	}
}
