package props

// DirtySize caches the desired size of a layout together with a dirty flag.
// It is the unit of memoization between layout passes.
type DirtySize struct {
	width, height float64
	dirty         bool
}

// NewDirtySize creates a clean desired size.
func NewDirtySize(w, h float64) DirtySize {
	return DirtySize{width: w, height: h}
}

// Width returns the cached width.
func (ds DirtySize) Width() float64 { return ds.width }

// Height returns the cached height.
func (ds DirtySize) Height() float64 { return ds.height }

// Size returns the cached size.
func (ds DirtySize) Size() Size {
	return Size{ds.width, ds.height}
}

// SetWidth changes the width. A different value sets the dirty flag.
func (ds *DirtySize) SetWidth(w float64) {
	if w != ds.width {
		ds.width = w
		ds.dirty = true
	}
}

// SetHeight changes the height. A different value sets the dirty flag.
func (ds *DirtySize) SetHeight(h float64) {
	if h != ds.height {
		ds.height = h
		ds.dirty = true
	}
}

// SetSize changes width and height. A different value sets the dirty flag.
func (ds *DirtySize) SetSize(w, h float64) {
	ds.SetWidth(w)
	ds.SetHeight(h)
}

// Dirty reports if the cached value is stale.
func (ds DirtySize) Dirty() bool { return ds.dirty }

// SetDirty sets or clears the dirty flag.
func (ds *DirtySize) SetDirty(dirty bool) { ds.dirty = dirty }
