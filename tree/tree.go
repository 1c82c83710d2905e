package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/widgetry/ecs"
)

// ErrCycle is returned if an insertion would make an entity its own ancestor.
var ErrCycle = errors.New("insertion would create a cycle")

// ErrUnknownEntity is returned if a parent entity is not part of the tree.
var ErrUnknownEntity = errors.New("entity is not part of the tree")

// ErrRoot is returned if a root (main or overlay) is to be attached as a child.
var ErrRoot = errors.New("root entities can not be children")

// Tree holds the parent/children relation of widget entities.
type Tree struct {
	root     ecs.Entity
	overlay  ecs.Entity
	parent   map[ecs.Entity]ecs.Entity
	children map[ecs.Entity][]ecs.Entity
}

// New creates a tree consisting of the root entity only.
func New(root ecs.Entity) *Tree {
	return &Tree{
		root:     root,
		parent:   make(map[ecs.Entity]ecs.Entity),
		children: make(map[ecs.Entity][]ecs.Entity),
	}
}

// Root returns the root entity.
func (t *Tree) Root() ecs.Entity {
	return t.root
}

// SetOverlay installs e as the overlay root. e may not already be part of
// the tree.
func (t *Tree) SetOverlay(e ecs.Entity) error {
	if t.Contains(e) {
		return fmt.Errorf("overlay %s already attached: %w", e, ErrRoot)
	}
	if t.overlay != ecs.None {
		tracer().Infof("replacing overlay %s with %s", t.overlay, e)
	}
	t.overlay = e
	return nil
}

// Overlay returns the overlay root, if one is installed.
func (t *Tree) Overlay() (ecs.Entity, bool) {
	return t.overlay, t.overlay != ecs.None
}

// Contains is true if e is one of the roots or has a parent.
func (t *Tree) Contains(e ecs.Entity) bool {
	if e == ecs.None {
		return false
	}
	if e == t.root || e == t.overlay {
		return true
	}
	_, ok := t.parent[e]
	return ok
}

// IsRoot is true for the main root and for the overlay.
func (t *Tree) IsRoot(e ecs.Entity) bool {
	return e != ecs.None && (e == t.root || e == t.overlay)
}

// AddChild appends child to the children of parent. If child is currently
// attached elsewhere, it is moved.
func (t *Tree) AddChild(parent, child ecs.Entity) error {
	return t.InsertChildAt(parent, -1, child)
}

// InsertChildAt inserts child into the children of parent at position i,
// shifting children at later positions. i < 0 or i beyond the end appends.
func (t *Tree) InsertChildAt(parent ecs.Entity, i int, child ecs.Entity) error {
	if !t.Contains(parent) {
		return fmt.Errorf("parent %s: %w", parent, ErrUnknownEntity)
	}
	if t.IsRoot(child) {
		return fmt.Errorf("attaching %s to %s: %w", child, parent, ErrRoot)
	}
	if child == parent || t.isAncestor(child, parent) {
		return fmt.Errorf("attaching %s to %s: %w", child, parent, ErrCycle)
	}
	t.Isolate(child)
	chs := t.children[parent]
	if i < 0 || i >= len(chs) {
		chs = append(chs, child)
	} else {
		chs = append(chs, ecs.None)
		copy(chs[i+1:], chs[i:])
		chs[i] = child
	}
	t.children[parent] = chs
	t.parent[child] = parent
	return nil
}

// Parent returns the parent of e. Asking for the parent of a root, or of an
// entity not in the tree, is a programming error and panics.
func (t *Tree) Parent(e ecs.Entity) ecs.Entity {
	p, ok := t.parent[e]
	if !ok {
		panic(fmt.Sprintf("tree: entity %s has no parent", e))
	}
	return p
}

// TryParent returns the parent of e, if any.
func (t *Tree) TryParent(e ecs.Entity) (ecs.Entity, bool) {
	p, ok := t.parent[e]
	return p, ok
}

// Children returns a copy of the ordered children of e.
func (t *Tree) Children(e ecs.Entity) []ecs.Entity {
	chs := t.children[e]
	r := make([]ecs.Entity, len(chs))
	copy(r, chs)
	return r
}

// ChildCount returns the number of children of e.
func (t *Tree) ChildCount(e ecs.Entity) int {
	return len(t.children[e])
}

// Child returns the n-th child of e.
func (t *Tree) Child(e ecs.Entity, n int) (ecs.Entity, bool) {
	chs := t.children[e]
	if n < 0 || n >= len(chs) {
		return ecs.None, false
	}
	return chs[n], true
}

// IndexOfChild returns the position of ch within the children of parent,
// or -1.
func (t *Tree) IndexOfChild(parent, ch ecs.Entity) int {
	for i, c := range t.children[parent] {
		if c == ch {
			return i
		}
	}
	return -1
}

// Isolate detaches e from its parent. The subtree below e stays intact.
func (t *Tree) Isolate(e ecs.Entity) ecs.Entity {
	p, ok := t.parent[e]
	if !ok {
		return e
	}
	chs := t.children[p]
	for i, c := range chs {
		if c == e {
			chs = append(chs[:i], chs[i+1:]...)
			break
		}
	}
	if len(chs) == 0 {
		delete(t.children, p)
	} else {
		t.children[p] = chs
	}
	delete(t.parent, e)
	return e
}

// Remove detaches e and drops its whole subtree from the tree. It returns
// the removed entities in post-order, i.e. children before parents.
// Removing the overlay uninstalls it; the main root can not be removed.
func (t *Tree) Remove(e ecs.Entity) []ecs.Entity {
	if e == t.root || !t.Contains(e) {
		return nil
	}
	var removed []ecs.Entity
	t.WalkPost(e, func(x ecs.Entity) {
		removed = append(removed, x)
	})
	t.Isolate(e)
	for _, x := range removed {
		delete(t.children, x)
		delete(t.parent, x)
	}
	if e == t.overlay {
		t.overlay = ecs.None
	}
	tracer().P("entity", e).Debugf("removed subtree of %d entities", len(removed))
	return removed
}

// Ancestors returns the ancestors of e, nearest first.
func (t *Tree) Ancestors(e ecs.Entity) []ecs.Entity {
	var r []ecs.Entity
	for p, ok := t.parent[e]; ok; p, ok = t.parent[p] {
		r = append(r, p)
	}
	return r
}

// isAncestor checks wether a is an ancestor of e.
func (t *Tree) isAncestor(a, e ecs.Entity) bool {
	for p, ok := t.parent[e]; ok; p, ok = t.parent[p] {
		if p == a {
			return true
		}
	}
	return false
}
