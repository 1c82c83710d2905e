package style

import (
	"slices"
	"strings"
)

// Pseudo-states widgets commonly toggle.
const (
	StateDisabled = "disabled"
	StateSelected = "selected"
	StateFocused  = "focused"
	StatePressed  = "pressed"
	StateHover    = "hover"
	StateEmpty    = "empty"
)

// Selector is the styling identity of a widget. The dirty flag signals that
// theme-derived properties have to be re-applied.
type Selector struct {
	Element string
	ID      string
	classes []string
	states  []string
	dirty   bool
}

// NewSelector creates a selector for an element. It starts out dirty, so
// the first theme update will style the widget.
func NewSelector(element string) Selector {
	return Selector{Element: element, dirty: true}
}

// WithID sets the id and returns the selector.
func (sel Selector) WithID(id string) Selector {
	sel.ID = id
	return sel
}

// WithClass adds a style class and returns the selector.
func (sel Selector) WithClass(class string) Selector {
	sel.AddClass(class)
	return sel
}

// AddClass adds a style class. The selector is marked dirty if the class
// has not been present.
func (sel *Selector) AddClass(class string) {
	if class == "" || slices.Contains(sel.classes, class) {
		return
	}
	sel.classes = insertSorted(sel.classes, class)
	sel.dirty = true
}

// RemoveClass removes a style class.
func (sel *Selector) RemoveClass(class string) {
	if i := slices.Index(sel.classes, class); i >= 0 {
		sel.classes = slices.Delete(slices.Clone(sel.classes), i, i+1)
		sel.dirty = true
	}
}

// HasClass checks for a style class.
func (sel *Selector) HasClass(class string) bool {
	return slices.Contains(sel.classes, class)
}

// Classes returns the style classes in lexical order.
func (sel *Selector) Classes() []string {
	return slices.Clone(sel.classes)
}

// SetState switches a pseudo-state on or off. A change marks the selector
// dirty.
func (sel *Selector) SetState(state string, on bool) {
	i := slices.Index(sel.states, state)
	switch {
	case on && i < 0:
		sel.states = insertSorted(sel.states, state)
	case !on && i >= 0:
		sel.states = slices.Delete(slices.Clone(sel.states), i, i+1)
	default:
		return
	}
	sel.dirty = true
}

// HasState checks for a pseudo-state.
func (sel *Selector) HasState(state string) bool {
	return slices.Contains(sel.states, state)
}

// States returns the active pseudo-states in lexical order.
func (sel *Selector) States() []string {
	return slices.Clone(sel.states)
}

// Dirty reports if theme properties have to be re-applied.
func (sel *Selector) Dirty() bool {
	return sel.dirty
}

// SetDirty sets or clears the dirty flag.
func (sel *Selector) SetDirty(dirty bool) {
	sel.dirty = dirty
}

// String renders the selector in pattern syntax, e.g. "button#ok.primary:focused".
func (sel Selector) String() string {
	var b strings.Builder
	b.WriteString(sel.Element)
	if sel.ID != "" {
		b.WriteString("#" + sel.ID)
	}
	for _, c := range sel.classes {
		b.WriteString("." + c)
	}
	for _, s := range sel.states {
		b.WriteString(":" + s)
	}
	return b.String()
}

// insertSorted never modifies the backing array of s, as selectors are
// copied by value.
func insertSorted(s []string, x string) []string {
	i, _ := slices.BinarySearch(s, x)
	r := make([]string, 0, len(s)+1)
	r = append(r, s[:i]...)
	r = append(r, x)
	return append(r, s[i:]...)
}
