package layout

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/render"
	"github.com/npillmayer/widgetry/tree"
)

// Layout is implemented by layout objects.
type Layout interface {
	// Measure computes the desired size of e.
	Measure(ctx *Context, e ecs.Entity) props.DirtySize
	// Arrange places e into the space parent and returns its final size.
	Arrange(ctx *Context, e ecs.Entity, parent props.Size) props.Size
}

// Context bundles what layout objects need to access.
type Context struct {
	Store   *ecs.Store
	Tree    *tree.Tree
	Frame   *frame.State
	Layouts *Registry
	Text    render.TextMeasurer
}

// Measure runs the measure pass for e with e's layout object.
func (ctx *Context) Measure(e ecs.Entity) props.DirtySize {
	return ctx.Layouts.Of(e).Measure(ctx, e)
}

// Arrange runs the arrange pass for e with e's layout object.
func (ctx *Context) Arrange(e ecs.Entity, parent props.Size) props.Size {
	return ctx.Layouts.Of(e).Arrange(ctx, e, parent)
}

// Registry holds the layout objects of widgets. Widgets without an
// explicitly registered layout get a Grid.
type Registry struct {
	layouts map[ecs.Entity]Layout
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{layouts: make(map[ecs.Entity]Layout)}
}

// Register sets the layout object of e.
func (reg *Registry) Register(e ecs.Entity, l Layout) {
	reg.layouts[e] = l
}

// Of returns the layout object of e, creating a Grid on first access.
func (reg *Registry) Of(e ecs.Entity) Layout {
	l, ok := reg.layouts[e]
	if !ok {
		l = NewGrid()
		reg.layouts[e] = l
	}
	return l
}

// Remove drops the layout object of e.
func (reg *Registry) Remove(e ecs.Entity) {
	delete(reg.layouts, e)
}

// --- Component access ------------------------------------------------------

func visibility(ctx *Context, e ecs.Entity) props.Visibility {
	v, err := ecs.Get[props.Visibility](ctx.Store, props.KeyVisibility, e)
	if err != nil {
		return props.Visible
	}
	return v
}

func isCollapsed(ctx *Context, e ecs.Entity) bool {
	return visibility(ctx, e) == props.Collapsed
}

func alignments(ctx *Context, e ecs.Entity) (h, v props.Alignment) {
	h, _ = ecs.Get[props.Alignment](ctx.Store, props.KeyHAlign, e)
	v, _ = ecs.Get[props.Alignment](ctx.Store, props.KeyVAlign, e)
	return
}

func margin(ctx *Context, e ecs.Entity) props.Thickness {
	m, _ := ecs.Get[props.Thickness](ctx.Store, props.KeyMargin, e)
	return m
}

func padding(ctx *Context, e ecs.Entity) props.Thickness {
	p, _ := ecs.Get[props.Thickness](ctx.Store, props.KeyPadding, e)
	return p
}

func constraint(ctx *Context, e ecs.Entity) props.Constraint {
	return ecs.MustGet[props.Constraint](ctx.Store, props.KeyConstraint, e)
}

func bounds(ctx *Context, e ecs.Entity) *props.Rectangle {
	b, err := ecs.GetMut[props.Rectangle](ctx.Store, props.KeyBounds, e)
	if err != nil {
		panic("layout: entity " + e.String() + " has no bounds: " + err.Error())
	}
	return b
}

func intOr(ctx *Context, e ecs.Entity, key string, dflt int) int {
	if x, err := ecs.Get[int](ctx.Store, key, e); err == nil {
		return x
	}
	return dflt
}

// alignedSize fits desired into the parent space and clamps it through
// the constraint of e.
func alignedSize(ctx *Context, e ecs.Entity, parent, desired props.Size) props.Size {
	h, v := alignments(ctx, e)
	m := margin(ctx, e)
	return constraint(ctx, e).Perform(props.Size{
		Width:  h.AlignMeasure(parent.Width, desired.Width, m.Left, m.Right),
		Height: v.AlignMeasure(parent.Height, desired.Height, m.Top, m.Bottom),
	})
}

// setBounds writes the size of e and marks the bounds dirty.
func setBounds(ctx *Context, e ecs.Entity, size props.Size) {
	bounds(ctx, e).SetSize(size.Width, size.Height)
	frame.MarkAsDirty(props.KeyBounds, e, ctx.Store, ctx.Frame)
}

// place positions child ch, already arranged to chSize, within a cell.
// Margins are honoured only for non-degenerate children.
func place(ctx *Context, ch ecs.Entity, cell props.Rectangle, chSize props.Size) {
	h, v := alignments(ctx, ch)
	var m props.Thickness
	if chSize.Width > 0 && chSize.Height > 0 {
		m = margin(ctx, ch)
	}
	bounds(ctx, ch).SetPosition(
		cell.X+h.AlignPosition(cell.Width, chSize.Width, m.Left, m.Right),
		cell.Y+v.AlignPosition(cell.Height, chSize.Height, m.Top, m.Bottom),
	)
}

// --- Shared measure/arrange skeleton ---------------------------------------

// cache is the state common to all layouts of this package.
type cache struct {
	desired  props.DirtySize
	arranged props.Size
	parent   props.Size // parent space of the latest arrange pass
	hAlign   props.Alignment
	vAlign   props.Alignment
	children map[ecs.Entity]props.Size
}

func newCache() cache {
	c := cache{children: make(map[ecs.Entity]props.Size)}
	c.desired.SetDirty(true)
	return c
}

// begin starts a measure pass. It invalidates the cache on alignment changes
// or if the widget is flagged dirty. It returns false for collapsed widgets,
// which measure to (0,0).
func (c *cache) begin(ctx *Context, e ecs.Entity) bool {
	if isCollapsed(ctx, e) {
		c.desired.SetSize(0, 0)
		return false
	}
	h, v := alignments(ctx, e)
	if h != c.hAlign || v != c.vAlign {
		c.hAlign, c.vAlign = h, v
		c.desired.SetDirty(true)
	}
	if frame.IsDirty(ctx.Store, e) {
		c.desired.SetDirty(true)
	}
	return true
}

// measureChildren measures all children of e, remembering their desired
// sizes. It returns the component-wise maximum and wether any child is dirty.
func (c *cache) measureChildren(ctx *Context, e ecs.Entity) (props.Size, bool) {
	clear(c.children)
	var largest props.Size
	dirty := false
	for _, ch := range ctx.Tree.Children(e) {
		ds := ctx.Measure(ch)
		c.children[ch] = ds.Size()
		largest = largest.Max(ds.Size())
		dirty = dirty || ds.Dirty()
	}
	return largest, dirty
}

// skip handles the arrange pass for collapsed or clean widgets. It reports
// wether the caller may return the result right away. A clean widget is
// re-arranged nevertheless if the space offered by its parent changed.
func (c *cache) skip(ctx *Context, e ecs.Entity, parent props.Size) (props.Size, bool) {
	if isCollapsed(ctx, e) {
		c.desired.SetDirty(false)
		bounds(ctx, e).SetSize(0, 0)
		return props.Size{}, true
	}
	if !c.desired.Dirty() && parent == c.parent {
		return c.arranged, true
	}
	c.parent = parent
	return props.Size{}, false
}

// done completes an arrange pass.
func (c *cache) done(size props.Size) props.Size {
	c.arranged = size
	c.desired.SetDirty(false)
	return size
}

// finish completes a measure pass with the desired size before constraints.
func (c *cache) finish(ctx *Context, e ecs.Entity, desired props.Size, dirty bool) props.DirtySize {
	size := constraint(ctx, e).Perform(desired)
	c.desired.SetSize(size.Width, size.Height)
	if dirty {
		c.desired.SetDirty(true)
	}
	return c.desired
}
