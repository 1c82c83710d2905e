package render

import (
	"unicode/utf8"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
)

// TextMetrics is the extent of a run of text.
type TextMetrics struct {
	Width, Height float64
}

// TextMeasurer measures text for layout.
type TextMeasurer interface {
	MeasureText(text, font string, size float64) TextMetrics
}

// MonospaceMeasurer measures text as if every glyph had the same advance.
// Advance and LineHeight are factors of the font size. It does not depend
// on any font data and is used for tests and headless tools.
type MonospaceMeasurer struct {
	Advance    float64
	LineHeight float64
}

// DefaultMeasurer advances 0.5 em per glyph with a line height of 1.2 em.
var DefaultMeasurer = MonospaceMeasurer{Advance: 0.5, LineHeight: 1.2}

// MeasureText implements interface TextMeasurer. Font names are ignored.
func (m MonospaceMeasurer) MeasureText(text, font string, size float64) TextMetrics {
	if text == "" {
		return TextMetrics{}
	}
	n := float64(utf8.RuneCountInString(text))
	return TextMetrics{Width: n * size * m.Advance, Height: size * m.LineHeight}
}

// Canvas is the drawing surface of a backend. Coordinates are absolute.
type Canvas interface {
	FillRect(r props.Rectangle, b props.Brush)
	StrokeRect(r props.Rectangle, b props.Brush, width props.Thickness)
	DrawText(text string, at props.Point, font string, size float64, b props.Brush)
}

// Object draws a widget. bounds are absolute.
type Object interface {
	Render(c Canvas, store *ecs.Store, e ecs.Entity, bounds props.Rectangle)
}

// ObjectFunc adapts a function to interface Object.
type ObjectFunc func(c Canvas, store *ecs.Store, e ecs.Entity, bounds props.Rectangle)

// Render calls f.
func (f ObjectFunc) Render(c Canvas, store *ecs.Store, e ecs.Entity, bounds props.Rectangle) {
	f(c, store, e, bounds)
}

// Registry holds the render objects of widgets.
type Registry struct {
	objects map[ecs.Entity]Object
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{objects: make(map[ecs.Entity]Object)}
}

// Register sets the render object of e.
func (reg *Registry) Register(e ecs.Entity, o Object) {
	reg.objects[e] = o
}

// Of returns the render object of e, if any.
func (reg *Registry) Of(e ecs.Entity) (Object, bool) {
	o, ok := reg.objects[e]
	return o, ok
}

// Remove drops the render object of e.
func (reg *Registry) Remove(e ecs.Entity) {
	delete(reg.objects, e)
}
