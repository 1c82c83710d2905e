package render

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
)

// Rectangle fills the bounds with the "background" brush and strokes the
// "border_brush" with "border_width", if present.
var Rectangle Object = ObjectFunc(func(c Canvas, store *ecs.Store, e ecs.Entity, bounds props.Rectangle) {
	if bg, err := ecs.Get[props.Brush](store, props.KeyBackground, e); err == nil && !bg.IsTransparent() {
		c.FillRect(bounds, bg)
	}
	border, err := ecs.Get[props.Brush](store, props.KeyBorderBrush, e)
	if err != nil || border.IsTransparent() {
		return
	}
	if w, err := ecs.Get[props.Thickness](store, props.KeyBorderWidth, e); err == nil && w != (props.Thickness{}) {
		c.StrokeRect(bounds, border, w)
	}
})

// Text draws the "text" property with the "foreground" brush, using "font"
// and "font_size". Text is placed at the upper left corner inside the
// "padding" of the widget.
var Text Object = ObjectFunc(func(c Canvas, store *ecs.Store, e ecs.Entity, bounds props.Rectangle) {
	text, err := ecs.Get[string](store, props.KeyText, e)
	if err != nil || text == "" {
		return
	}
	fg, err := ecs.Get[props.Brush](store, props.KeyForeground, e)
	if err != nil {
		fg, _ = props.ParseBrush("black")
	}
	font, _ := ecs.Get[string](store, props.KeyFont, e)
	size, err := ecs.Get[float64](store, props.KeyFontSize, e)
	if err != nil {
		size = 12
	}
	at := bounds.Position()
	if pad, err := ecs.Get[props.Thickness](store, props.KeyPadding, e); err == nil {
		at = pad.Inset(bounds).Position()
	}
	c.DrawText(text, at, font, size, fg)
})

// Stack combines render objects, drawing them in order.
func Stack(objects ...Object) Object {
	return ObjectFunc(func(c Canvas, store *ecs.Store, e ecs.Entity, bounds props.Rectangle) {
		for _, o := range objects {
			o.Render(c, store, e, bounds)
		}
	})
}
