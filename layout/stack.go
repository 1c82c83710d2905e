package layout

import (
	"fmt"
	"strings"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
)

// Orientation is the direction in which a Stack lines up its children.
type Orientation uint8

// Stacking directions.
const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation reads "vertical" or "horizontal". The empty string
// selects Vertical.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("invalid orientation %q", s)
}

// Stack lines up its children one after the other. The gap between two
// children is taken from the float64 component "spacing" of the stack.
type Stack struct {
	cache
	Orientation Orientation
}

// NewStack creates a stack layout object.
func NewStack(o Orientation) *Stack {
	return &Stack{cache: newCache(), Orientation: o}
}

var _ Layout = &Stack{}

func spacing(ctx *Context, e ecs.Entity) float64 {
	s, _ := ecs.Get[float64](ctx.Store, props.KeySpacing, e)
	return s
}

// Measure implements interface Layout. The desired size sums the children
// (margins included) along the orientation and takes the maximum across.
func (s *Stack) Measure(ctx *Context, e ecs.Entity) props.DirtySize {
	if !s.begin(ctx, e) {
		return s.desired
	}
	clear(s.children)
	var desired props.Size
	dirty, n := false, 0
	for _, ch := range ctx.Tree.Children(e) {
		ds := ctx.Measure(ch)
		dirty = dirty || ds.Dirty()
		s.children[ch] = ds.Size()
		if isCollapsed(ctx, ch) {
			continue
		}
		m := margin(ctx, ch)
		w, h := ds.Width()+m.Horizontal(), ds.Height()+m.Vertical()
		if s.Orientation == Horizontal {
			desired.Width += w
			desired.Height = max(desired.Height, h)
		} else {
			desired.Height += h
			desired.Width = max(desired.Width, w)
		}
		n++
	}
	if n > 1 {
		gap := spacing(ctx, e) * float64(n-1)
		if s.Orientation == Horizontal {
			desired.Width += gap
		} else {
			desired.Height += gap
		}
	}
	return s.finish(ctx, e, desired, dirty)
}

// Arrange implements interface Layout.
func (s *Stack) Arrange(ctx *Context, e ecs.Entity, parent props.Size) props.Size {
	if size, ok := s.skip(ctx, e, parent); ok {
		return size
	}
	size := alignedSize(ctx, e, parent, s.desired.Size())
	setBounds(ctx, e, size)
	gap := spacing(ctx, e)
	offset := 0.0
	for _, ch := range ctx.Tree.Children(e) {
		if isCollapsed(ctx, ch) {
			ctx.Arrange(ch, props.Size{})
			continue
		}
		m := margin(ctx, ch)
		desired := s.children[ch]
		var cell props.Rectangle
		if s.Orientation == Horizontal {
			cell = props.Rectangle{X: offset, Width: desired.Width + m.Horizontal(), Height: size.Height}
		} else {
			cell = props.Rectangle{Y: offset, Width: size.Width, Height: desired.Height + m.Vertical()}
		}
		chSize := ctx.Arrange(ch, cell.Size())
		place(ctx, ch, cell, chSize)
		if s.Orientation == Horizontal {
			offset += cell.Width + gap
		} else {
			offset += cell.Height + gap
		}
	}
	return s.done(size)
}
