package layout

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
)

// Absolute places every child at the offset given by its "position"
// component. The widget itself takes all the space of its parent.
type Absolute struct {
	cache
}

// NewAbsolute creates an absolute layout object.
func NewAbsolute() *Absolute {
	return &Absolute{cache: newCache()}
}

var _ Layout = &Absolute{}

func position(ctx *Context, e ecs.Entity) props.Point {
	p, _ := ecs.Get[props.Point](ctx.Store, props.KeyPosition, e)
	return p
}

// Measure implements interface Layout. The desired size is the bounding
// box of all positioned children.
func (a *Absolute) Measure(ctx *Context, e ecs.Entity) props.DirtySize {
	if !a.begin(ctx, e) {
		return a.desired
	}
	clear(a.children)
	var desired props.Size
	dirty := false
	for _, ch := range ctx.Tree.Children(e) {
		ds := ctx.Measure(ch)
		dirty = dirty || ds.Dirty()
		a.children[ch] = ds.Size()
		pos := position(ctx, ch)
		desired = desired.Max(props.Size{Width: pos.X + ds.Width(), Height: pos.Y + ds.Height()})
	}
	return a.finish(ctx, e, desired, dirty)
}

// Arrange implements interface Layout.
func (a *Absolute) Arrange(ctx *Context, e ecs.Entity, parent props.Size) props.Size {
	if size, ok := a.skip(ctx, e, parent); ok {
		return size
	}
	size := constraint(ctx, e).Perform(parent)
	setBounds(ctx, e, size)
	for _, ch := range ctx.Tree.Children(e) {
		pos := position(ctx, ch)
		avail := props.Size{
			Width:  max(0, size.Width-pos.X),
			Height: max(0, size.Height-pos.Y),
		}
		ctx.Arrange(ch, avail)
		bounds(ctx, ch).SetPosition(pos.X, pos.Y)
	}
	return a.done(size)
}
