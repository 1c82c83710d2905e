package render

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/tree"
)

// System renders a widget tree.
type System struct {
	store   *ecs.Store
	tree    *tree.Tree
	objects *Registry
}

// NewSystem creates a render system.
func NewSystem(store *ecs.Store, t *tree.Tree, objects *Registry) *System {
	return &System{store: store, tree: t, objects: objects}
}

// Run draws the main tree, then the overlay. Hidden and collapsed widgets
// are skipped together with their subtrees. It returns the number of
// render objects called.
func (sys *System) Run(c Canvas) int {
	n := sys.walk(c, sys.tree.Root(), props.Point{})
	if ov, ok := sys.tree.Overlay(); ok {
		n += sys.walk(c, ov, props.Point{})
	}
	tracer().Debugf("rendered %d objects", n)
	return n
}

func (sys *System) walk(c Canvas, e ecs.Entity, offset props.Point) int {
	if vis, err := ecs.Get[props.Visibility](sys.store, props.KeyVisibility, e); err == nil && vis != props.Visible {
		return 0
	}
	b, err := ecs.Get[props.Rectangle](sys.store, props.KeyBounds, e)
	if err != nil {
		tracer().P("entity", e).Errorf("widget has no bounds, skipping subtree")
		return 0
	}
	abs := props.Rectangle{X: offset.X + b.X, Y: offset.Y + b.Y, Width: b.Width, Height: b.Height}
	n := 0
	if o, ok := sys.objects.Of(e); ok {
		o.Render(c, sys.store, e, abs)
		n++
	}
	for _, ch := range sys.tree.Children(e) {
		n += sys.walk(c, ch, abs.Position())
	}
	return n
}
