package shell

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/event"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/layout"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/render"
	"github.com/npillmayer/widgetry/style"
	"github.com/npillmayer/widgetry/tree"
	"github.com/npillmayer/widgetry/widget"
)

// RootElement is the element name of the root widget's selector.
const RootElement = "window"

// Shell is a running widget application.
type Shell struct {
	window     props.Size
	ctx        *widget.Context
	dispatcher *event.Dispatcher
	engine     *layout.Engine
	renderer   *render.System
	frames     int
}

// Stats reports what happened during a frame.
type Stats struct {
	Frame    int  // frame number, starting at 1
	Events   int  // events dispatched
	Removed  int  // widgets destroyed
	LaidOut  bool // wether the layout passes did run
	Rendered int  // render objects called
}

// New creates a shell with an empty root widget. theme and measurer may
// be nil.
func New(cfg Config, theme style.Theme, measurer render.TextMeasurer) *Shell {
	if measurer == nil {
		measurer = render.DefaultMeasurer
	}
	store := ecs.NewStore()
	root := store.CreateEntity()
	t := tree.New(root)
	fs := frame.NewState(root)
	ctx := widget.NewContext(store, t, fs, event.NewAdapter(), theme)
	ctx.Builder().Standard(root, RootElement, "")
	sh := &Shell{
		window:     props.Size{Width: cfg.Width, Height: cfg.Height},
		ctx:        ctx,
		dispatcher: event.NewDispatcher(t.TryParent),
		renderer:   render.NewSystem(store, t, ctx.RenderObjects()),
	}
	sh.engine = layout.NewEngine(&layout.Context{
		Store:   store,
		Tree:    t,
		Frame:   fs,
		Layouts: ctx.Layouts(),
		Text:    measurer,
	})
	ctx.OnRemove(sh.dispatcher.Forget)
	tracer().Infof("shell created with window %v", sh.window)
	return sh
}

// Context returns the widget context of the application.
func (sh *Shell) Context() *widget.Context { return sh.ctx }

// Builder returns a builder for widgets of the application.
func (sh *Shell) Builder() *widget.Builder { return sh.ctx.Builder() }

// Root returns the root widget.
func (sh *Shell) Root() widget.Container { return sh.ctx.Root() }

// Dispatcher returns the event dispatcher, to register handlers with.
func (sh *Shell) Dispatcher() *event.Dispatcher { return sh.dispatcher }

// Window returns the current window size.
func (sh *Shell) Window() props.Size { return sh.window }

// Resize changes the window size. The next frame will lay out the tree.
func (sh *Shell) Resize(w, h float64) {
	sh.window = props.Size{Width: w, Height: h}
}

// RunFrame executes one frame. If c is nil, nothing is rendered.
func (sh *Shell) RunFrame(c render.Canvas) Stats {
	sh.frames++
	st := Stats{Frame: sh.frames}
	ctx := sh.ctx
	st.Events = sh.dispatcher.DrainQueue(ctx.Events().Queue())
	ctx.UpdateStates()
	st.Removed = ctx.ProcessRemovals()
	ctx.UpdateDirtySelectors()
	st.LaidOut = sh.engine.Run(sh.window)
	ctx.Frame().Clear(ctx.Store())
	ctx.UpdateStatesPostLayout()
	if c != nil && st.LaidOut {
		st.Rendered = sh.renderer.Run(c)
	}
	tracer().Debugf("frame %d: %d events, %d removed, layout=%v, %d rendered",
		st.Frame, st.Events, st.Removed, st.LaidOut, st.Rendered)
	return st
}
