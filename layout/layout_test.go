package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/frame"
	"github.com/npillmayer/widgetry/props"
	"github.com/npillmayer/widgetry/render"
	"github.com/npillmayer/widgetry/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() *Context {
	store := ecs.NewStore()
	root := newWidget(store)
	return &Context{
		Store:   store,
		Tree:    tree.New(root),
		Frame:   frame.NewState(root),
		Layouts: NewRegistry(),
		Text:    render.DefaultMeasurer,
	}
}

func newWidget(store *ecs.Store) ecs.Entity {
	e := store.CreateEntity()
	ecs.Register(store, e, props.KeyBounds, props.Rectangle{})
	ecs.Register(store, e, props.KeyConstraint, props.Unconstrained)
	ecs.Register(store, e, props.KeyVisibility, props.Visible)
	frame.SetDirtyFlag(store, e, false)
	return e
}

func addChild(t *testing.T, ctx *Context, parent ecs.Entity, l Layout) ecs.Entity {
	e := newWidget(ctx.Store)
	require.NoError(t, ctx.Tree.AddChild(parent, e))
	if l != nil {
		ctx.Layouts.Register(e, l)
	}
	return e
}

func boundsOf(ctx *Context, e ecs.Entity) props.Rectangle {
	return ecs.MustGet[props.Rectangle](ctx.Store, props.KeyBounds, e)
}

func columnWidths(ctx *Context, e ecs.Entity) []float64 {
	cols := ecs.MustGet[props.Columns](ctx.Store, props.KeyColumns, e)
	w := make([]float64, len(cols))
	for i, c := range cols {
		w[i] = c.Current
	}
	return w
}

// countingLayout counts the arrange calls which are not skipped.
type countingLayout struct {
	*FixedSize
	arranged int
}

func (cl *countingLayout) Arrange(ctx *Context, e ecs.Entity, parent props.Size) props.Size {
	if _, ok := cl.skip(ctx, e, parent); !ok {
		cl.arranged++
		cl.desired.SetDirty(true) // skip has already recorded parent
	}
	return cl.FixedSize.Arrange(ctx, e, parent)
}

func TestGridAutoStretchFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	cols, err := props.ParseColumns("auto, *, 50")
	require.NoError(t, err)
	ecs.Register(ctx.Store, root, props.KeyColumns, cols)
	ch := addChild(t, ctx, root, NewFixedSize())
	ecs.Register(ctx.Store, ch, props.KeySize, props.Size{Width: 40, Height: 20})
	ecs.Register(ctx.Store, ch, props.KeyMargin, props.Uniform(4))
	ecs.Register(ctx.Store, ch, props.KeyColumn, 0)
	//
	eng := NewEngine(ctx)
	require.True(t, eng.Run(props.Size{Width: 300, Height: 100}))
	assert.Equal(t, []float64{48, 202, 50}, columnWidths(ctx, root))
	assert.Equal(t, props.Rectangle{X: 0, Y: 0, Width: 300, Height: 100}, boundsOf(ctx, root))
	assert.Equal(t, props.Rectangle{X: 4, Y: 4, Width: 40, Height: 92}, boundsOf(ctx, ch))
	ctx.Frame.Clear(ctx.Store)
	//
	// moving the child to column 2 keeps the auto column
	require.NoError(t, ecs.Set(ctx.Store, props.KeyColumn, ch, 2))
	frame.MarkAsDirtySelf(ch, ctx.Store, ctx.Frame)
	require.True(t, eng.Run(props.Size{Width: 300, Height: 100}))
	assert.Equal(t, []float64{48, 202, 50}, columnWidths(ctx, root))
	b := boundsOf(ctx, ch)
	t.Logf("child bounds = %v", b)
	assert.Equal(t, 254.0, b.X)
	assert.Equal(t, 42.0, b.Width)
}

func TestGridStretchRemainder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	cols, err := props.ParseColumns("*, *, 10, *")
	require.NoError(t, err)
	ecs.Register(ctx.Store, root, props.KeyColumns, cols)
	eng := NewEngine(ctx)
	eng.Run(props.Size{Width: 111, Height: 10})
	widths := columnWidths(ctx, root)
	assert.Equal(t, []float64{33, 33, 10, 35}, widths)
	sum := 0.0
	for _, w := range widths {
		sum += w
	}
	assert.Equal(t, 111.0, sum)
}

func TestGridStretchNeverNegative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	cols, err := props.ParseColumns("80, *")
	require.NoError(t, err)
	ecs.Register(ctx.Store, root, props.KeyColumns, cols)
	NewEngine(ctx).Run(props.Size{Width: 50, Height: 10})
	assert.Equal(t, []float64{80, 0}, columnWidths(ctx, root))
}

func TestGridSpanAndRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	cols, _ := props.ParseColumns("20, 30, 50")
	rows, _ := props.ParseRows("10, *")
	ecs.Register(ctx.Store, root, props.KeyColumns, cols)
	ecs.Register(ctx.Store, root, props.KeyRows, rows)
	ch := addChild(t, ctx, root, NewFixedSize())
	ecs.Register(ctx.Store, ch, props.KeyColumn, 1)
	ecs.Register(ctx.Store, ch, props.KeyColumnSpan, 2)
	ecs.Register(ctx.Store, ch, props.KeyRow, 1)
	NewEngine(ctx).Run(props.Size{Width: 100, Height: 60})
	assert.Equal(t, props.Rectangle{X: 20, Y: 10, Width: 80, Height: 50}, boundsOf(ctx, ch))
}

func TestGridWithoutTracksAligns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	ch := addChild(t, ctx, root, NewFixedSize())
	ecs.Register(ctx.Store, ch, props.KeySize, props.Size{Width: 20, Height: 10})
	ecs.Register(ctx.Store, ch, props.KeyHAlign, props.Center)
	ecs.Register(ctx.Store, ch, props.KeyVAlign, props.End)
	ecs.Register(ctx.Store, ch, props.KeyMargin, props.Uniform(2))
	NewEngine(ctx).Run(props.Size{Width: 100, Height: 50})
	assert.Equal(t, props.Rectangle{X: 40, Y: 38, Width: 20, Height: 10}, boundsOf(ctx, ch))
}

func TestArrangeSkipsCleanSubtrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	counter := &countingLayout{FixedSize: NewFixedSize()}
	ch := addChild(t, ctx, root, counter)
	ecs.Register(ctx.Store, ch, props.KeySize, props.Size{Width: 10, Height: 10})
	eng := NewEngine(ctx)
	window := props.Size{Width: 100, Height: 100}
	require.True(t, eng.Run(window))
	assert.Equal(t, 1, counter.arranged)
	ctx.Frame.Clear(ctx.Store)
	//
	assert.False(t, eng.Run(window), "nothing dirty, expected no layout")
	ctx.Measure(root)
	ctx.Arrange(root, window)
	assert.Equal(t, 1, counter.arranged, "clean subtree should not be arranged again")
	//
	frame.MarkAsDirtySelf(ch, ctx.Store, ctx.Frame)
	require.True(t, eng.Run(window))
	assert.Equal(t, 2, counter.arranged)
}

func TestCollapsedTakesNoSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	cols, _ := props.ParseColumns("auto, *")
	ecs.Register(ctx.Store, root, props.KeyColumns, cols)
	ch := addChild(t, ctx, root, NewFixedSize())
	ecs.Register(ctx.Store, ch, props.KeySize, props.Size{Width: 30, Height: 30})
	ecs.Register(ctx.Store, ch, props.KeyMargin, props.Uniform(5))
	ecs.Register(ctx.Store, ch, props.KeyColumn, 0)
	require.NoError(t, ecs.Set(ctx.Store, props.KeyVisibility, ch, props.Collapsed))
	NewEngine(ctx).Run(props.Size{Width: 100, Height: 100})
	assert.Equal(t, []float64{0, 100}, columnWidths(ctx, root))
	assert.Equal(t, props.Size{}, boundsOf(ctx, ch).Size())
	assert.Equal(t, props.Size{}, ctx.Layouts.Of(ch).Measure(ctx, ch).Size())
}

func TestConstraintClampsArrange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	ch := addChild(t, ctx, root, NewFixedSize())
	require.NoError(t, ecs.Set(ctx.Store, props.KeyConstraint, ch, props.Constraint{MaxWidth: 40, Height: 15}))
	NewEngine(ctx).Run(props.Size{Width: 100, Height: 100})
	assert.Equal(t, props.Size{Width: 40, Height: 15}, boundsOf(ctx, ch).Size())
}

func TestStackAndText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	stack := addChild(t, ctx, root, NewStack(Horizontal))
	ecs.Register(ctx.Store, stack, props.KeySpacing, 4.0)
	ecs.Register(ctx.Store, stack, props.KeyHAlign, props.Start)
	ecs.Register(ctx.Store, stack, props.KeyVAlign, props.Start)
	a := addChild(t, ctx, stack, NewFixedSize())
	ecs.Register(ctx.Store, a, props.KeyText, "abcd") // 4 × 0.5 × 10 = 20
	ecs.Register(ctx.Store, a, props.KeyFontSize, 10.0)
	b := addChild(t, ctx, stack, NewFixedSize())
	ecs.Register(ctx.Store, b, props.KeySize, props.Size{Width: 30, Height: 5})
	NewEngine(ctx).Run(props.Size{Width: 200, Height: 100})
	assert.Equal(t, props.Size{Width: 54, Height: 12}, boundsOf(ctx, stack).Size())
	assert.Equal(t, props.Rectangle{X: 0, Y: 0, Width: 20, Height: 12}, boundsOf(ctx, a))
	assert.Equal(t, props.Rectangle{X: 24, Y: 0, Width: 30, Height: 12}, boundsOf(ctx, b))
}

func TestPaddingAndAbsolute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	root := ctx.Tree.Root()
	ctx.Layouts.Register(root, NewPadding())
	ecs.Register(ctx.Store, root, props.KeyPadding, props.Symmetric(10, 5))
	abs := addChild(t, ctx, root, NewAbsolute())
	ch := addChild(t, ctx, abs, NewFixedSize())
	ecs.Register(ctx.Store, ch, props.KeyPosition, props.Point{X: 7, Y: 3})
	ecs.Register(ctx.Store, ch, props.KeySize, props.Size{Width: 10, Height: 10})
	ecs.Register(ctx.Store, ch, props.KeyHAlign, props.Start)
	ecs.Register(ctx.Store, ch, props.KeyVAlign, props.Start)
	NewEngine(ctx).Run(props.Size{Width: 100, Height: 50})
	assert.Equal(t, props.Rectangle{X: 10, Y: 5, Width: 80, Height: 40}, boundsOf(ctx, abs))
	assert.Equal(t, props.Rectangle{X: 7, Y: 3, Width: 10, Height: 10}, boundsOf(ctx, ch))
}

func TestOverlayIsLaidOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.layout")
	defer teardown()
	//
	ctx := newContext()
	ov := newWidget(ctx.Store)
	require.NoError(t, ctx.Tree.SetOverlay(ov))
	NewEngine(ctx).Run(props.Size{Width: 64, Height: 48})
	assert.Equal(t, props.Rectangle{Width: 64, Height: 48}, boundsOf(ctx, ov))
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("Horizontal")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, o)
	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)
}
