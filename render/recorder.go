package render

import (
	"fmt"

	"github.com/npillmayer/widgetry/props"
)

// Recorder is a Canvas which records draw calls as text. It is used by
// tests and by headless tools.
type Recorder struct {
	Calls []string
}

// FillRect implements interface Canvas.
func (r *Recorder) FillRect(rect props.Rectangle, b props.Brush) {
	r.Calls = append(r.Calls, fmt.Sprintf("fill %v %v", rect, b))
}

// StrokeRect implements interface Canvas.
func (r *Recorder) StrokeRect(rect props.Rectangle, b props.Brush, width props.Thickness) {
	r.Calls = append(r.Calls, fmt.Sprintf("stroke %v %v %v", rect, b, width))
}

// DrawText implements interface Canvas.
func (r *Recorder) DrawText(text string, at props.Point, font string, size float64, b props.Brush) {
	r.Calls = append(r.Calls, fmt.Sprintf("text %q at (%g,%g) %s/%g %v", text, at.X, at.Y, font, size, b))
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

var _ Canvas = &Recorder{}
