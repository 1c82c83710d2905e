package widget

import "github.com/npillmayer/widgetry/ecs"

// State holds the behaviour of a widget. The hooks are called once per
// frame by the application shell: Init before the first Update, Update
// before the layout pass and UpdatePostLayout after it.
type State interface {
	Init(w Container)
	Update(w Container)
	UpdatePostLayout(w Container)
}

// BaseState implements State with no-ops. Embed it to implement only some
// of the hooks.
type BaseState struct{}

// Init implements interface State.
func (BaseState) Init(Container) {}

// Update implements interface State.
func (BaseState) Update(Container) {}

// UpdatePostLayout implements interface State.
func (BaseState) UpdatePostLayout(Container) {}

// StateOf returns the state registered for e, if any.
func (ctx *Context) StateOf(e ecs.Entity) (State, bool) {
	s, ok := ctx.states[e]
	return s, ok
}

// withStates calls fn for every widget with a state, main tree first,
// parents before children.
func (ctx *Context) withStates(fn func(State, Container)) {
	if len(ctx.states) == 0 {
		return
	}
	for _, root := range ctx.roots() {
		ctx.tree.Walk(root, func(e ecs.Entity) bool {
			if s, ok := ctx.states[e]; ok {
				fn(s, ctx.Widget(e))
			}
			return true
		})
	}
}

// UpdateStates initializes new states and calls Update for all states.
func (ctx *Context) UpdateStates() {
	ctx.withStates(func(s State, w Container) {
		if !ctx.initialized[w.e] {
			ctx.initialized[w.e] = true
			s.Init(w)
		}
		s.Update(w)
	})
}

// UpdateStatesPostLayout calls UpdatePostLayout for all initialized states.
func (ctx *Context) UpdateStatesPostLayout() {
	ctx.withStates(func(s State, w Container) {
		if ctx.initialized[w.e] {
			s.UpdatePostLayout(w)
		}
	})
}
