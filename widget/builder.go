package widget

import (
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/layout"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/render"
	"github.com/npillmayer/widgetry/style"
)

// Builder is used to construct widget trees. Unlike Set, registering
// properties does not compare, mark or notify.
type Builder struct {
	ctx *Context
}

// Builder returns a builder for the widgets of ctx.
func (ctx *Context) Builder() *Builder {
	return &Builder{ctx: ctx}
}

// Context returns the context the builder works on.
func (b *Builder) Context() *Context {
	return b.ctx
}

// CreateEntity creates a bare entity.
func (b *Builder) CreateEntity() ecs.Entity {
	return b.ctx.store.CreateEntity()
}

// RegisterProperty stores an owned property for entity e.
func RegisterProperty[T any](b *Builder, e ecs.Entity, key string, value T) {
	ecs.Register(b.ctx.store, e, key, value)
}

// RegisterSharedProperty makes property key of e an alias of property
// srcKey of src.
func (b *Builder) RegisterSharedProperty(e ecs.Entity, key string, src ecs.Entity, srcKey string) error {
	return b.ctx.store.RegisterShared(e, key, src, srcKey)
}

// AppendChild attaches child to parent.
func (b *Builder) AppendChild(parent, child ecs.Entity) error {
	return b.ctx.Widget(parent).AppendChild(child)
}

// AppendChildToOverlay attaches child to the overlay root.
func (b *Builder) AppendChildToOverlay(child ecs.Entity) error {
	return b.ctx.Widget(b.ctx.tree.Root()).AppendChildToOverlay(child)
}

// RegisterLayout sets the layout object of e. Widgets without one are laid
// out by a Grid.
func (b *Builder) RegisterLayout(e ecs.Entity, l layout.Layout) {
	b.ctx.layouts.Register(e, l)
}

// RegisterRenderObject sets the render object of e.
func (b *Builder) RegisterRenderObject(e ecs.Entity, o render.Object) {
	b.ctx.renders.Register(e, o)
}

// RegisterState sets the state of e.
func (b *Builder) RegisterState(e ecs.Entity, s State) {
	b.ctx.states[e] = s
	delete(b.ctx.initialized, e)
}

// Widget creates an entity carrying the standard widget components.
// id may be empty.
func (b *Builder) Widget(element, id string) ecs.Entity {
	e := b.CreateEntity()
	b.Standard(e, element, id)
	return e
}

// Standard registers the standard widget components for e: bounds,
// constraint, margin, padding, alignments, visibility, enabled, selector,
// dirty and id. The widget starts out dirty.
func (b *Builder) Standard(e ecs.Entity, element, id string) {
	s := b.ctx.store
	ecs.Register(s, e, props.KeyID, id)
	ecs.Register(s, e, props.KeyElement, element)
	ecs.Register(s, e, props.KeyBounds, props.Rectangle{})
	ecs.Register(s, e, props.KeyConstraint, props.Unconstrained)
	ecs.Register(s, e, props.KeyMargin, props.Thickness{})
	ecs.Register(s, e, props.KeyPadding, props.Thickness{})
	ecs.Register(s, e, props.KeyHAlign, props.Stretch)
	ecs.Register(s, e, props.KeyVAlign, props.Stretch)
	ecs.Register(s, e, props.KeyVisibility, props.Visible)
	ecs.Register(s, e, props.KeyEnabled, true)
	ecs.Register(s, e, selectorKey, style.NewSelector(element).WithID(id))
	frame.SetDirtyFlag(s, e, false)
	frame.MarkAsDirtySelf(e, s, b.ctx.frame)
}
