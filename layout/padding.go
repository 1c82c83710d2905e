package layout

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
)

// Padding arranges all children inside the box left after subtracting the
// "padding" component of the widget.
type Padding struct {
	cache
}

// NewPadding creates a padding layout object.
func NewPadding() *Padding {
	return &Padding{cache: newCache()}
}

var _ Layout = &Padding{}

// Measure implements interface Layout.
func (p *Padding) Measure(ctx *Context, e ecs.Entity) props.DirtySize {
	if !p.begin(ctx, e) {
		return p.desired
	}
	desired, dirty := p.measureChildren(ctx, e)
	pad := padding(ctx, e)
	desired.Width += pad.Horizontal()
	desired.Height += pad.Vertical()
	return p.finish(ctx, e, desired, dirty)
}

// Arrange implements interface Layout.
func (p *Padding) Arrange(ctx *Context, e ecs.Entity, parent props.Size) props.Size {
	if size, ok := p.skip(ctx, e, parent); ok {
		return size
	}
	size := alignedSize(ctx, e, parent, p.desired.Size())
	setBounds(ctx, e, size)
	inner := padding(ctx, e).Inset(props.Rectangle{Width: size.Width, Height: size.Height})
	for _, ch := range ctx.Tree.Children(e) {
		chSize := ctx.Arrange(ch, inner.Size())
		place(ctx, ch, inner, chSize)
	}
	return p.done(size)
}
