package layout

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/props"
)

// Engine runs the layout passes for the main tree and the overlay.
type Engine struct {
	ctx    *Context
	window props.Size
}

// NewEngine creates a layout engine working on ctx.
func NewEngine(ctx *Context) *Engine {
	return &Engine{ctx: ctx}
}

// Context returns the layout context of the engine.
func (eng *Engine) Context() *Context {
	return eng.ctx
}

// Run lays out the widget trees within window. A changed window size marks
// the root as dirty. If nothing is dirty, no work is done at all and Run
// returns false.
func (eng *Engine) Run(window props.Size) bool {
	ctx := eng.ctx
	root := ctx.Tree.Root()
	if window != eng.window {
		tracer().Infof("window size changed from %v to %v", eng.window, window)
		eng.window = window
		frame.MarkAsDirtySelf(root, ctx.Store, ctx.Frame)
	}
	if ctx.Frame.Len() == 0 {
		return false
	}
	eng.layoutRoot(root, window)
	if ov, ok := ctx.Tree.Overlay(); ok {
		eng.layoutRoot(ov, window)
	}
	return true
}

func (eng *Engine) layoutRoot(root ecs.Entity, window props.Size) {
	eng.ctx.Measure(root)
	eng.ctx.Arrange(root, window)
	bounds(eng.ctx, root).SetPosition(0, 0)
	tracer().P("entity", root).Debugf("layout done, bounds = %v", *bounds(eng.ctx, root))
}
