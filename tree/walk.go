package tree

import "github.com/npillmayer/widgetry/ecs"

// Predicate is a function type to match against entities of a tree.
// It is used as an argument for search functions like DescendantsWith.
type Predicate func(e ecs.Entity, parent ecs.Entity) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever() Predicate {
	return func(ecs.Entity, ecs.Entity) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func (t *Tree) NodeIsLeaf() Predicate {
	return func(e ecs.Entity, _ ecs.Entity) bool {
		return t.ChildCount(e) == 0
	}
}

// Walk visits the subtree rooted at e depth-first, parents before children.
// If fn returns false, the children of the current entity are skipped.
func (t *Tree) Walk(e ecs.Entity, fn func(ecs.Entity) bool) {
	if !fn(e) {
		return
	}
	for _, ch := range t.children[e] {
		t.Walk(ch, fn)
	}
}

// WalkPost visits the subtree rooted at e depth-first, children before
// parents.
func (t *Tree) WalkPost(e ecs.Entity, fn func(ecs.Entity)) {
	for _, ch := range t.children[e] {
		t.WalkPost(ch, fn)
	}
	fn(e)
}

// DescendantsWith returns all descendants of e (excluding e) matching
// predicate, in depth-first pre-order.
func (t *Tree) DescendantsWith(e ecs.Entity, predicate Predicate) []ecs.Entity {
	var r []ecs.Entity
	for _, ch := range t.children[e] {
		t.Walk(ch, func(x ecs.Entity) bool {
			if predicate(x, t.parent[x]) {
				r = append(r, x)
			}
			return true
		})
	}
	return r
}

// FirstDescendantWith returns the first descendant of e in depth-first
// pre-order which matches predicate.
func (t *Tree) FirstDescendantWith(e ecs.Entity, predicate Predicate) (ecs.Entity, bool) {
	for _, ch := range t.children[e] {
		if predicate(ch, e) {
			return ch, true
		}
		if found, ok := t.FirstDescendantWith(ch, predicate); ok {
			return found, true
		}
	}
	return ecs.None, false
}

// AncestorWith returns the nearest ancestor of e matching predicate.
func (t *Tree) AncestorWith(e ecs.Entity, predicate Predicate) (ecs.Entity, bool) {
	for p, ok := t.parent[e]; ok; p, ok = t.parent[p] {
		if predicate(p, t.parent[p]) {
			return p, true
		}
	}
	return ecs.None, false
}
