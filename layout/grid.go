package layout

import (
	"math"

	"github.com/npillmayer/widgetry/ecs"
	"github.com/npillmayer/widgetry/props"
)

// Grid arranges children in cells of columns and rows. Widgets without
// column and row definitions degrade to a plain alignment container: every
// child gets the full space.
//
// Column widths (row heights likewise) are resolved per arrange pass:
//
//   - auto columns grow to the widest child placed in them, margins
//     included; they never shrink
//   - fixed columns take their declared extent
//   - stretch columns share the remaining space equally, truncated to whole
//     pixels; the rounding remainder goes to the last stretch column
type Grid struct {
	cache
}

// NewGrid creates a grid layout object.
func NewGrid() *Grid {
	return &Grid{cache: newCache()}
}

var _ Layout = &Grid{}

// Measure implements interface Layout.
func (g *Grid) Measure(ctx *Context, e ecs.Entity) props.DirtySize {
	if !g.begin(ctx, e) {
		return g.desired
	}
	desired, dirty := g.measureChildren(ctx, e)
	return g.finish(ctx, e, desired, dirty)
}

// Arrange implements interface Layout.
func (g *Grid) Arrange(ctx *Context, e ecs.Entity, parent props.Size) props.Size {
	if size, ok := g.skip(ctx, e, parent); ok {
		return size
	}
	size := alignedSize(ctx, e, parent, g.desired.Size())
	setBounds(ctx, e, size)
	children := ctx.Tree.Children(e)
	colOffsets := g.resolveColumns(ctx, e, children, size.Width)
	rowOffsets := g.resolveRows(ctx, e, children, size.Height)
	for _, ch := range children {
		cell := props.Rectangle{Width: size.Width, Height: size.Height}
		if colOffsets != nil {
			cell.X, cell.Width = span(colOffsets, intOr(ctx, ch, props.KeyColumn, 0), intOr(ctx, ch, props.KeyColumnSpan, 1))
		}
		if rowOffsets != nil {
			cell.Y, cell.Height = span(rowOffsets, intOr(ctx, ch, props.KeyRow, 0), intOr(ctx, ch, props.KeyRowSpan, 1))
		}
		chSize := ctx.Arrange(ch, cell.Size())
		place(ctx, ch, cell, chSize)
	}
	tracer().P("entity", e).Debugf("grid arranged to %v", size)
	return g.done(size)
}

// resolveColumns computes the current widths of the columns of e and
// returns the prefix sums of the widths (len(columns)+1 offsets), or nil
// if e has no columns.
func (g *Grid) resolveColumns(ctx *Context, e ecs.Entity, children []ecs.Entity, available float64) []float64 {
	cols, err := ecs.GetMut[props.Columns](ctx.Store, props.KeyColumns, e)
	if err != nil || len(*cols) == 0 {
		return nil
	}
	tracks := make(trackList, len(*cols))
	for i, c := range *cols {
		tracks[i] = track{size: c.Width, current: c.Current}
	}
	for _, ch := range children {
		if isCollapsed(ctx, ch) || !ecs.Is[int](ctx.Store, props.KeyColumn, ch) {
			continue
		}
		if intOr(ctx, ch, props.KeyColumnSpan, 1) > 1 {
			continue
		}
		m := margin(ctx, ch)
		tracks.grow(intOr(ctx, ch, props.KeyColumn, 0), g.children[ch].Width+m.Left+m.Right)
	}
	offsets := tracks.resolve(available)
	for i := range *cols {
		(*cols)[i].Current = tracks[i].current
	}
	return offsets
}

// resolveRows is the vertical counterpart of resolveColumns.
func (g *Grid) resolveRows(ctx *Context, e ecs.Entity, children []ecs.Entity, available float64) []float64 {
	rows, err := ecs.GetMut[props.Rows](ctx.Store, props.KeyRows, e)
	if err != nil || len(*rows) == 0 {
		return nil
	}
	tracks := make(trackList, len(*rows))
	for i, r := range *rows {
		tracks[i] = track{size: r.Height, current: r.Current}
	}
	for _, ch := range children {
		if isCollapsed(ctx, ch) || !ecs.Is[int](ctx.Store, props.KeyRow, ch) {
			continue
		}
		if intOr(ctx, ch, props.KeyRowSpan, 1) > 1 {
			continue
		}
		m := margin(ctx, ch)
		tracks.grow(intOr(ctx, ch, props.KeyRow, 0), g.children[ch].Height+m.Top+m.Bottom)
	}
	offsets := tracks.resolve(available)
	for i := range *rows {
		(*rows)[i].Current = tracks[i].current
	}
	return offsets
}

// --- Tracks ----------------------------------------------------------------

type track struct {
	size    props.TrackSize
	current float64
}

type trackList []track

// grow widens an auto track to at least extent.
func (tl trackList) grow(i int, extent float64) {
	if i < 0 || i >= len(tl) {
		return
	}
	if tl[i].size.Match().IsAuto() != nil && extent > tl[i].current {
		tl[i].current = extent
	}
}

// resolve sets fixed and stretch tracks and returns the prefix sums.
func (tl trackList) resolve(available float64) []float64 {
	used, stretchCount, lastStretch := 0.0, 0, -1
	for i := range tl {
		var px float64
		switch m := tl[i].size.Match(); m {
		case m.Fixed(&px):
			tl[i].current = px
			used += px
		case m.IsStretch():
			stretchCount++
			lastStretch = i
		default:
			used += tl[i].current
		}
	}
	if stretchCount > 0 {
		w := math.Trunc((available - used) / float64(stretchCount))
		if w < 0 {
			w = 0
		}
		for i := range tl {
			if tl[i].size.Match().IsStretch() != nil {
				tl[i].current = w
			}
		}
	}
	offsets := tl.offsets()
	if rem := available - offsets[len(tl)]; rem > 0 && lastStretch >= 0 {
		tl[lastStretch].current += rem
		offsets = tl.offsets()
	}
	return offsets
}

func (tl trackList) offsets() []float64 {
	offsets := make([]float64, len(tl)+1)
	for i, t := range tl {
		offsets[i+1] = offsets[i] + t.current
	}
	return offsets
}

// span returns the offset and extent of a cell starting at track i and
// spanning n tracks, clamped to the available tracks.
func span(offsets []float64, i, n int) (float64, float64) {
	last := len(offsets) - 2
	i = min(max(i, 0), last)
	end := min(i+max(n, 1), last+1)
	return offsets[i], offsets[end] - offsets[i]
}
