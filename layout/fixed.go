package layout

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
)

// FixedSize is the layout of leaf widgets. The desired size is read from
// the "size" component if present. Otherwise the "text" component is
// measured with the text measurer of the layout context.
type FixedSize struct {
	cache
}

// NewFixedSize creates a fixed-size layout object.
func NewFixedSize() *FixedSize {
	return &FixedSize{cache: newCache()}
}

var _ Layout = &FixedSize{}

// Measure implements interface Layout.
func (f *FixedSize) Measure(ctx *Context, e ecs.Entity) props.DirtySize {
	if !f.begin(ctx, e) {
		return f.desired
	}
	var desired props.Size
	if size, err := ecs.Get[props.Size](ctx.Store, props.KeySize, e); err == nil {
		desired = size
	} else if text, err := ecs.Get[string](ctx.Store, props.KeyText, e); err == nil && ctx.Text != nil {
		font, _ := ecs.Get[string](ctx.Store, props.KeyFont, e)
		fontSize, err := ecs.Get[float64](ctx.Store, props.KeyFontSize, e)
		if err != nil {
			fontSize = 12
		}
		m := ctx.Text.MeasureText(text, font, fontSize)
		pad := padding(ctx, e)
		desired = props.Size{Width: m.Width + pad.Horizontal(), Height: m.Height + pad.Vertical()}
	}
	_, dirty := f.measureChildren(ctx, e)
	return f.finish(ctx, e, desired, dirty)
}

// Arrange implements interface Layout. Children, if any, get the full
// size of the widget.
func (f *FixedSize) Arrange(ctx *Context, e ecs.Entity, parent props.Size) props.Size {
	if size, ok := f.skip(ctx, e, parent); ok {
		return size
	}
	size := alignedSize(ctx, e, parent, f.desired.Size())
	setBounds(ctx, e, size)
	cell := props.Rectangle{Width: size.Width, Height: size.Height}
	for _, ch := range ctx.Tree.Children(e) {
		place(ctx, ch, cell, ctx.Arrange(ch, size))
	}
	return f.done(size)
}
