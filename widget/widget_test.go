package widget

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/event"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/style"
	"github.com/npillmayer/widgetry/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(theme style.Theme) *Context {
	store := ecs.NewStore()
	root := store.CreateEntity()
	ctx := NewContext(store, tree.New(root), frame.NewState(root), event.NewAdapter(), theme)
	ctx.Builder().Standard(root, "window", "root")
	return ctx
}

// settle drops dirty markings and pending events.
func settle(ctx *Context) {
	ctx.Frame().Clear(ctx.Store())
	for range ctx.Events().Queue().Dequeue().All() {
	}
}

func events(ctx *Context) []event.Event {
	var r []event.Event
	for entry := range ctx.Events().Queue().Dequeue().All() {
		r = append(r, entry.Event)
	}
	return r
}

func TestSetIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	ctx := newApp(nil)
	w := ctx.Root()
	Set(w, props.KeyFilter, FilterNothing())
	Set(w, props.KeyText, "hello")
	settle(ctx)
	//
	Set(w, props.KeyText, "hello")
	assert.Equal(t, 0, ctx.Frame().Len(), "equal value should not mark dirty")
	assert.Equal(t, 0, ctx.Events().Len(), "equal value should not notify")
	Set(w, props.KeyMargin, props.Thickness{})
	assert.Equal(t, 0, ctx.Frame().Len())
	//
	Set(w, props.KeyText, "world")
	assert.Equal(t, []ecs.Entity{w.Entity()}, ctx.Frame().DirtyWidgets())
	assert.Equal(t, []event.Event{event.ChangedEvent{Entity: w.Entity(), Key: props.KeyText}}, events(ctx))
	assert.Equal(t, "world", Get[string](w, props.KeyText))
	assert.Panics(t, func() { Set(w, props.KeyText, 42) })
}

func TestSharedPropertyDirtyFanOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	ctx := newApp(nil)
	b := ctx.Builder()
	root := ctx.Root().Entity()
	x, y, z := b.Widget("box", "x"), b.Widget("box", "y"), b.Widget("box", "z")
	require.NoError(t, b.AppendChild(root, x))
	require.NoError(t, b.AppendChild(x, y))
	require.NoError(t, b.AppendChild(x, z))
	RegisterProperty(b, x, props.KeyText, "shared")
	require.NoError(t, b.RegisterSharedProperty(y, props.KeyText, x, props.KeyText))
	require.NoError(t, b.RegisterSharedProperty(z, "label", x, props.KeyText))
	RegisterProperty(b, z, props.KeyFilter, FilterNothing())
	settle(ctx)
	//
	Set(ctx.Widget(x), props.KeyText, "changed")
	dirty := ctx.Frame().DirtyWidgets()
	t.Logf("dirty = %v", dirty)
	assert.Equal(t, []ecs.Entity{x, y, z}, dirty)
	assert.Equal(t, "changed", Get[string](ctx.Widget(z), "label"))
	// only z has a filter letting events pass, and is told its local key
	assert.Equal(t, []event.Event{event.ChangedEvent{Entity: z, Key: "label"}}, events(ctx))
}

func TestChangedFilterList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	ctx := newApp(nil)
	w := ctx.Root()
	RegisterProperty(ctx.Builder(), w.Entity(), props.KeyFilter, FilterList(props.KeyText))
	RegisterProperty(ctx.Builder(), w.Entity(), props.KeyText, "")
	settle(ctx)
	//
	Set(w, "color", props.Brush{})
	assert.Empty(t, events(ctx))
	Set(w, props.KeyText, "v2")
	assert.Equal(t, []event.Event{event.ChangedEvent{Entity: w.Entity(), Key: props.KeyText}}, events(ctx))
	//
	assert.False(t, FilterComplete().Notifies(props.KeyText))
	assert.True(t, FilterNothing().Notifies("anything"))
}

func TestEnabledTogglesDisabledState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	rs := &style.RuleSet{}
	require.NoError(t, rs.Add("button", style.Declaration{Key: props.KeyOpacity, Value: style.Float32Value(1)}))
	require.NoError(t, rs.Add("button:disabled", style.Declaration{Key: props.KeyOpacity, Value: style.Float32Value(0.5)}))
	ctx := newApp(rs)
	b := ctx.Builder()
	btn := b.Widget("button", "ok")
	RegisterProperty(b, btn, props.KeyOpacity, float32(0))
	require.NoError(t, b.AppendChild(ctx.Root().Entity(), btn))
	ctx.UpdateDirtySelectors()
	w := ctx.Widget(btn)
	assert.Equal(t, float32(1), Get[float32](w, props.KeyOpacity))
	//
	Set(w, props.KeyEnabled, false)
	sel, _ := w.Selector()
	assert.True(t, sel.HasState(style.StateDisabled))
	assert.False(t, sel.Dirty())
	assert.Equal(t, float32(0.5), Get[float32](w, props.KeyOpacity))
	Set(w, props.KeyEnabled, true)
	assert.Equal(t, float32(1), Get[float32](w, props.KeyOpacity))
}

func TestThemeCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	rs := &style.RuleSet{}
	require.NoError(t, rs.AddRaw("panel",
		style.KeyValue{Key: "padding-left", Value: "4"},
		style.KeyValue{Key: "margin", Value: "1 2"},
		style.KeyValue{Key: "width", Value: "100"},
		style.KeyValue{Key: "background", Value: "red"},
		style.KeyValue{Key: "horizontal-alignment", Value: "center"},
		style.KeyValue{Key: "unknown", Value: "x"},
	))
	require.NoError(t, rs.Add("#label", style.Declaration{Key: props.KeyFontSize, Value: style.Float64Value(20)}))
	ctx := newApp(rs)
	b := ctx.Builder()
	panel := b.Widget("panel", "")
	RegisterProperty(b, panel, props.KeyBackground, props.Brush{})
	label := b.Widget("text", "label")
	RegisterProperty(b, label, props.KeyFontSize, 12.0)
	require.NoError(t, b.AppendChild(ctx.Root().Entity(), panel))
	require.NoError(t, b.AppendChild(panel, label))
	settle(ctx)
	//
	ctx.UpdateDirtySelectors()
	pw, lw := ctx.Widget(panel), ctx.Widget(label)
	assert.Equal(t, props.Thickness{Left: 4}, Get[props.Thickness](pw, props.KeyPadding))
	assert.Equal(t, props.Thickness{Left: 2, Top: 1, Right: 2, Bottom: 1}, Get[props.Thickness](pw, props.KeyMargin))
	assert.Equal(t, 100.0, Get[props.Constraint](pw, props.KeyConstraint).Width)
	assert.Equal(t, "#ff0000", Get[props.Brush](pw, props.KeyBackground).String())
	assert.Equal(t, props.Center, Get[props.Alignment](pw, props.KeyHAlign))
	assert.False(t, pw.Has("unknown"))
	assert.Equal(t, 20.0, Get[float64](lw, props.KeyFontSize))
	assert.True(t, ctx.Frame().IsListed(label))
	//
	// clean selectors stop the cascade
	settle(ctx)
	ctx.UpdateDirtySelectors()
	assert.Equal(t, 0, ctx.Frame().Len())
	// forcing re-applies, but equal values do not mark anything except
	// the re-styled widgets themselves
	pw.Update(true)
	assert.ElementsMatch(t, []ecs.Entity{label, panel}, ctx.Frame().DirtyWidgets())
}

func TestNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	ctx := newApp(nil)
	b := ctx.Builder()
	root := ctx.Root()
	panel := b.Widget("panel", "panel")
	x, y, z := b.Widget("box", "x"), b.Widget("box", "y"), b.Widget("box", "z")
	require.NoError(t, root.AppendChild(panel))
	require.NoError(t, b.AppendChild(panel, x))
	require.NoError(t, b.AppendChild(panel, y))
	require.NoError(t, b.AppendChild(y, z))
	//
	assert.Equal(t, z, root.Child("z").Entity())
	assert.Equal(t, "z", root.Child("z").ID())
	_, ok := root.TryChild("nope")
	assert.False(t, ok)
	assert.Panics(t, func() { root.Child("nope") })
	assert.Equal(t, y, root.Child("panel").ChildFromIndex(1).Entity())
	assert.Panics(t, func() { root.ChildFromIndex(3) })
	assert.Equal(t, 2, ctx.Widget(panel).ChildCount())
	assert.Equal(t, y, ctx.Widget(x).Sibling("y").Entity())
	_, ok = ctx.Widget(x).TrySibling("z")
	assert.False(t, ok, "z is a nephew, not a sibling")
	assert.Equal(t, panel, ctx.Widget(x).Parent().Entity())
	assert.Panics(t, func() { root.Parent() })
	_, ok = root.TryParent()
	assert.False(t, ok)
}

func TestRemoveChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	ctx := newApp(nil)
	b := ctx.Builder()
	root := ctx.Root()
	panel := b.Widget("panel", "panel")
	x, y := b.Widget("box", "x"), b.Widget("box", "y")
	require.NoError(t, root.AppendChild(panel))
	require.NoError(t, b.AppendChild(panel, x))
	require.NoError(t, b.AppendChild(panel, y))
	RegisterProperty(b, x, props.KeyText, "own")
	require.NoError(t, b.RegisterSharedProperty(y, props.KeyText, x, props.KeyText))
	var destroyed []ecs.Entity
	ctx.OnRemove(func(e ecs.Entity) { destroyed = append(destroyed, e) })
	settle(ctx)
	//
	Set(ctx.Widget(y), props.KeyText, "other")
	require.True(t, ctx.Frame().IsListed(y))
	root.RemoveChild(panel)
	assert.False(t, ctx.Frame().IsListed(x))
	assert.False(t, ctx.Frame().IsListed(y))
	assert.True(t, ctx.Tree().Contains(panel), "removal is deferred")
	//
	assert.Equal(t, 3, ctx.ProcessRemovals())
	assert.Equal(t, []ecs.Entity{x, y, panel}, destroyed)
	assert.False(t, ctx.Tree().Contains(panel))
	assert.False(t, ctx.Store().IsAlive(y))
	assert.True(t, ctx.Frame().IsListed(root.Entity()))
	assert.Equal(t, 0, root.ChildCount())
}

func TestSetOnDestroyedWidget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	ctx := newApp(nil)
	box := ctx.Builder().Widget("box", "box")
	require.NoError(t, ctx.Root().AppendChild(box))
	settle(ctx)
	w := ctx.Widget(box)
	ctx.Root().RemoveChild(box)
	assert.Equal(t, 1, ctx.ProcessRemovals())
	assert.Panics(t, func() { Set(w, props.KeyText, "late") })
	assert.False(t, ctx.Store().IsAlive(box))
	assert.False(t, ctx.Frame().IsListed(box))
	assert.Empty(t, ctx.Store().Keys(box))
}

func TestOverlay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	ctx := newApp(nil)
	popup := ctx.Builder().Widget("popup", "popup")
	require.NoError(t, ctx.Builder().AppendChildToOverlay(popup))
	ov, ok := ctx.Tree().Overlay()
	require.True(t, ok)
	assert.Equal(t, ov, ctx.Widget(popup).Parent().Entity())
	_, found := ctx.Root().TryChild("popup")
	assert.False(t, found, "overlay is not part of the main tree")
	//
	ctx.Root().RemoveChild(popup) // wrong parent, ignored
	assert.Equal(t, 0, ctx.Frame().PendingRemovals())
	ctx.Root().RemoveChildFromOverlay(popup)
	assert.Equal(t, 1, ctx.ProcessRemovals())
	assert.Equal(t, 0, ctx.Tree().ChildCount(ov))
}

type countingState struct {
	BaseState
	inits, updates, post int
}

func (s *countingState) Init(Container)             { s.inits++ }
func (s *countingState) Update(Container)           { s.updates++ }
func (s *countingState) UpdatePostLayout(Container) { s.post++ }

func TestStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.widget")
	defer teardown()
	//
	ctx := newApp(nil)
	b := ctx.Builder()
	box := b.Widget("box", "")
	require.NoError(t, b.AppendChild(ctx.Root().Entity(), box))
	s := &countingState{}
	b.RegisterState(box, s)
	ctx.UpdateStates()
	ctx.UpdateStatesPostLayout()
	ctx.UpdateStates()
	assert.Equal(t, 1, s.inits)
	assert.Equal(t, 2, s.updates)
	assert.Equal(t, 1, s.post)
	_, ok := ctx.StateOf(box)
	assert.True(t, ok)
	ctx.Root().ClearChildren()
	ctx.ProcessRemovals()
	_, ok = ctx.StateOf(box)
	assert.False(t, ok)
}
