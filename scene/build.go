package scene

import (
	"fmt"
	"strings"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/layout"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/render"
	"github.com/npillmayer/widgetry/style"
	"github.com/npillmayer/widgetry/widget"
)

// Install builds the scene into an application: the root node is applied
// to the existing root widget, overlay nodes are attached to the overlay.
func (sc *Scene) Install(b *widget.Builder) error {
	root := b.Context().Tree().Root()
	if err := Apply(b, root, &sc.Root); err != nil {
		return err
	}
	for i := range sc.Overlay {
		e, err := create(b, &sc.Overlay[i])
		if err != nil {
			return err
		}
		if err := b.AppendChildToOverlay(e); err != nil {
			return err
		}
	}
	return nil
}

// Build creates a widget for node n, including its subtree, and appends
// it to parent.
func Build(b *widget.Builder, parent ecs.Entity, n *Node) (ecs.Entity, error) {
	e, err := create(b, n)
	if err != nil {
		return ecs.None, err
	}
	if err := b.AppendChild(parent, e); err != nil {
		return ecs.None, fmt.Errorf("node %s: %w", n.name(), err)
	}
	return e, nil
}

func create(b *widget.Builder, n *Node) (ecs.Entity, error) {
	e := b.Widget(n.element(), n.ID)
	if err := Apply(b, e, n); err != nil {
		return ecs.None, err
	}
	return e, nil
}

// Apply sets the properties of node n on the existing widget e and builds
// the children of n.
func Apply(b *widget.Builder, e ecs.Entity, n *Node) error {
	if err := applyProperties(b, e, n); err != nil {
		return fmt.Errorf("node %s: %w", n.name(), err)
	}
	for i := range n.Children {
		if _, err := Build(b, e, &n.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

func applyProperties(b *widget.Builder, e ecs.Entity, n *Node) error {
	w := b.Context().Widget(e)
	if n.ID != "" {
		widget.RegisterProperty(b, e, props.KeyID, n.ID)
		widget.GetMut[style.Selector](w, props.KeySelector).ID = n.ID
	}
	for _, class := range n.Classes {
		widget.GetMut[style.Selector](w, props.KeySelector).AddClass(class)
	}
	l, err := layoutFor(n)
	if err != nil {
		return err
	}
	if l != nil {
		b.RegisterLayout(e, l)
	}
	if n.Columns != "" {
		cols, err := props.ParseColumns(n.Columns)
		if err != nil {
			return err
		}
		widget.RegisterProperty(b, e, props.KeyColumns, cols)
	}
	if n.Rows != "" {
		rows, err := props.ParseRows(n.Rows)
		if err != nil {
			return err
		}
		widget.RegisterProperty(b, e, props.KeyRows, rows)
	}
	if n.Column != nil {
		widget.RegisterProperty(b, e, props.KeyColumn, *n.Column)
	}
	if n.Row != nil {
		widget.RegisterProperty(b, e, props.KeyRow, *n.Row)
	}
	if n.ColumnSpan > 1 {
		widget.RegisterProperty(b, e, props.KeyColumnSpan, n.ColumnSpan)
	}
	if n.RowSpan > 1 {
		widget.RegisterProperty(b, e, props.KeyRowSpan, n.RowSpan)
	}
	c := widget.GetMut[props.Constraint](w, props.KeyConstraint)
	c.Width, c.Height = n.Width, n.Height
	c.MinWidth, c.MinHeight = n.MinWidth, n.MinHeight
	c.MaxWidth, c.MaxHeight = n.MaxWidth, n.MaxHeight
	if n.X != 0 || n.Y != 0 {
		widget.RegisterProperty(b, e, props.KeyPosition, props.Point{X: n.X, Y: n.Y})
	}
	if err := registerParsed(b, e, props.KeyMargin, n.Margin, props.ParseThickness); err != nil {
		return err
	}
	if err := registerParsed(b, e, props.KeyPadding, n.Padding, props.ParseThickness); err != nil {
		return err
	}
	if err := registerParsed(b, e, props.KeyHAlign, n.HAlign, props.ParseAlignment); err != nil {
		return err
	}
	if err := registerParsed(b, e, props.KeyVAlign, n.VAlign, props.ParseAlignment); err != nil {
		return err
	}
	if err := registerParsed(b, e, props.KeyVisibility, n.Visibility, props.ParseVisibility); err != nil {
		return err
	}
	if n.Enabled != nil {
		widget.RegisterProperty(b, e, props.KeyEnabled, *n.Enabled)
		widget.GetMut[style.Selector](w, props.KeySelector).SetState(style.StateDisabled, !*n.Enabled)
	}
	if err := registerParsed(b, e, props.KeyBackground, n.Background, props.ParseBrush); err != nil {
		return err
	}
	if err := registerParsed(b, e, props.KeyForeground, n.Foreground, props.ParseBrush); err != nil {
		return err
	}
	if err := registerParsed(b, e, props.KeyBorderBrush, n.BorderBrush, props.ParseBrush); err != nil {
		return err
	}
	if err := registerParsed(b, e, props.KeyBorderWidth, n.BorderWidth, props.ParseThickness); err != nil {
		return err
	}
	if n.Text != "" || n.Element == "text" {
		widget.RegisterProperty(b, e, props.KeyText, n.Text)
		widget.RegisterProperty(b, e, props.KeyFont, n.Font)
		size := n.FontSize
		if size == 0 {
			size = 12
		}
		widget.RegisterProperty(b, e, props.KeyFontSize, size)
		if n.Foreground == "" {
			black, _ := props.ParseBrush("black")
			widget.RegisterProperty(b, e, props.KeyForeground, black)
		}
	}
	if n.Spacing != 0 {
		widget.RegisterProperty(b, e, props.KeySpacing, n.Spacing)
	}
	if o := renderObjectFor(n); o != nil {
		b.RegisterRenderObject(e, o)
	}
	return nil
}

// registerParsed registers the parsed value of a non-empty string.
func registerParsed[T any](b *widget.Builder, e ecs.Entity, key, s string, parse func(string) (T, error)) error {
	if s == "" {
		return nil
	}
	v, err := parse(s)
	if err != nil {
		return fmt.Errorf("property %s: %w", key, err)
	}
	widget.RegisterProperty(b, e, key, v)
	return nil
}

func layoutFor(n *Node) (layout.Layout, error) {
	switch strings.ToLower(n.Layout) {
	case "":
		if n.Element == "text" {
			return layout.NewFixedSize(), nil
		}
		return nil, nil // grid by default
	case "grid":
		return layout.NewGrid(), nil
	case "stack":
		o, err := layout.ParseOrientation(n.Orientation)
		if err != nil {
			return nil, err
		}
		return layout.NewStack(o), nil
	case "padding":
		return layout.NewPadding(), nil
	case "fixed":
		return layout.NewFixedSize(), nil
	case "absolute":
		return layout.NewAbsolute(), nil
	}
	return nil, fmt.Errorf("%q: %w", n.Layout, ErrUnknownLayout)
}

func renderObjectFor(n *Node) render.Object {
	var objects []render.Object
	if n.Background != "" || n.BorderBrush != "" {
		objects = append(objects, render.Rectangle)
	}
	if n.Text != "" || n.Element == "text" {
		objects = append(objects, render.Text)
	}
	switch len(objects) {
	case 0:
		return nil
	case 1:
		return objects[0]
	}
	return render.Stack(objects...)
}
