package widget

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/style"
)

// UpdateWidget applies the theme to widget e and its subtree.
//
// Widgets without a selector are not styled, and neither is their subtree.
// If force is set, the selector is marked dirty. A clean selector ends the
// cascade: the subtree is assumed to be up to date. Otherwise all theme
// declarations matching the selector are applied, children are updated
// with force set, and the selector is cleaned. With shouldMarkDirty e is
// put onto the dirty list.
func (ctx *Context) UpdateWidget(e ecs.Entity, force, shouldMarkDirty bool) {
	sel, err := ecs.GetMut[style.Selector](ctx.store, selectorKey, e)
	if err != nil {
		return
	}
	if force {
		sel.SetDirty(true)
	}
	if !sel.Dirty() {
		return
	}
	w := ctx.Widget(e)
	decls := ctx.theme.Properties(sel)
	tracer().P("entity", e).Debugf("styling %v with %d declarations", sel, len(decls))
	for _, d := range decls {
		ctx.apply(w, d)
	}
	force = sel.Dirty() || force
	for _, ch := range ctx.tree.Children(e) {
		ctx.UpdateWidget(ch, force, shouldMarkDirty)
	}
	sel.SetDirty(false)
	if shouldMarkDirty {
		frame.MarkAsDirtySelf(e, ctx.store, ctx.frame)
	}
}

// apply routes a theme declaration to the matching widget property.
// Declarations for properties a widget does not have are ignored, as are
// values not convertible to the type of the property.
func (ctx *Context) apply(w Container, d style.Declaration) {
	route, side := style.RouteKey(d.Key)
	switch route {
	case style.RoutePadding, style.RouteMargin:
		key := props.KeyPadding
		if route == style.RouteMargin {
			key = props.KeyMargin
		}
		x, ok := d.Value.AsFloat64()
		th, has := TryGet[props.Thickness](w, key)
		if !ok || !has {
			return
		}
		if th.SetSide(side, x) {
			Set(w, key, th)
		}
	case style.RouteConstraint:
		x, ok := d.Value.AsFloat64()
		c, has := TryGet[props.Constraint](w, props.KeyConstraint)
		if !ok || !has {
			return
		}
		c.SetByKey(d.Key, x)
		Set(w, props.KeyConstraint, c)
	default:
		if !w.Has(d.Key) {
			return
		}
		if !applyGeneric(w, d.Key, d.Value) {
			tracer().P("entity", w.e).Infof("theme value %v does not fit property %q", d.Value, d.Key)
		}
	}
}

// applyGeneric tries the value kinds a theme can deliver against the type
// of the stored property, in a fixed order.
func applyGeneric(w Container, key string, v style.Value) bool {
	s := w.ctx.store
	switch {
	case ecs.Is[props.Brush](s, key, w.e):
		return setIf(w, key, v.AsBrush)
	case ecs.Is[float32](s, key, w.e):
		return setIf(w, key, v.AsFloat32)
	case ecs.Is[float64](s, key, w.e):
		return setIf(w, key, v.AsFloat64)
	case ecs.Is[props.Thickness](s, key, w.e):
		return setIf(w, key, v.AsThickness)
	case ecs.Is[string](s, key, w.e):
		return setIf(w, key, v.AsString)
	case ecs.Is[props.Alignment](s, key, w.e):
		return setIf(w, key, v.AsAlignment)
	}
	return false
}

func setIf[T any](w Container, key string, conv func() (T, bool)) bool {
	x, ok := conv()
	if ok {
		Set(w, key, x)
	}
	return ok
}
