package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgetry/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree creates
//
//	1
//	├── 2
//	│   ├── 4
//	│   └── 5
//	└── 3
func buildTree(t *testing.T) *Tree {
	tr := New(1)
	require.NoError(t, tr.AddChild(1, 2))
	require.NoError(t, tr.AddChild(1, 3))
	require.NoError(t, tr.AddChild(2, 4))
	require.NoError(t, tr.AddChild(2, 5))
	return tr
}

func TestTreeBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.tree")
	defer teardown()
	//
	tr := buildTree(t)
	assert.Equal(t, ecs.Entity(1), tr.Root())
	assert.Equal(t, []ecs.Entity{2, 3}, tr.Children(1))
	assert.Equal(t, ecs.Entity(2), tr.Parent(5))
	assert.Equal(t, 1, tr.IndexOfChild(2, 5))
	assert.Equal(t, -1, tr.IndexOfChild(2, 3))
	ch, ok := tr.Child(2, 0)
	assert.True(t, ok)
	assert.Equal(t, ecs.Entity(4), ch)
	_, ok = tr.Child(2, 2)
	assert.False(t, ok)
	assert.Equal(t, []ecs.Entity{2, 1}, tr.Ancestors(4))
	assert.Panics(t, func() { tr.Parent(1) })
}

func TestTreeInsertAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.tree")
	defer teardown()
	//
	tr := buildTree(t)
	require.NoError(t, tr.InsertChildAt(1, 0, 6))
	require.NoError(t, tr.InsertChildAt(1, 99, 7))
	assert.Equal(t, []ecs.Entity{6, 2, 3, 7}, tr.Children(1))
	// moving
	require.NoError(t, tr.AddChild(3, 4))
	assert.Equal(t, []ecs.Entity{5}, tr.Children(2))
	assert.Equal(t, ecs.Entity(3), tr.Parent(4))
}

func TestTreeRejectsCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.tree")
	defer teardown()
	//
	tr := buildTree(t)
	if err := tr.AddChild(4, 2); !errors.Is(err, ErrCycle) {
		t.Errorf("expected cycle to be detected, got %v", err)
	}
	if err := tr.AddChild(5, 5); !errors.Is(err, ErrCycle) {
		t.Errorf("expected self-parenting to be detected, got %v", err)
	}
	if err := tr.AddChild(3, 1); !errors.Is(err, ErrRoot) {
		t.Errorf("expected root as child to be rejected, got %v", err)
	}
	if err := tr.AddChild(42, 43); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("expected unknown parent to be rejected, got %v", err)
	}
	// tree unchanged
	assert.Equal(t, []ecs.Entity{4, 5}, tr.Children(2))
}

func TestTreeOverlay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.tree")
	defer teardown()
	//
	tr := buildTree(t)
	_, ok := tr.Overlay()
	assert.False(t, ok)
	assert.Error(t, tr.SetOverlay(4))
	require.NoError(t, tr.SetOverlay(10))
	require.NoError(t, tr.AddChild(10, 11))
	ov, ok := tr.Overlay()
	assert.True(t, ok)
	assert.Equal(t, ecs.Entity(10), ov)
	assert.True(t, tr.Contains(11))
	_, hasParent := tr.TryParent(10)
	assert.False(t, hasParent)
	if err := tr.AddChild(2, 10); !errors.Is(err, ErrRoot) {
		t.Errorf("expected overlay as child to be rejected, got %v", err)
	}
}

func TestTreeRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.tree")
	defer teardown()
	//
	tr := buildTree(t)
	removed := tr.Remove(2)
	assert.Equal(t, []ecs.Entity{4, 5, 2}, removed)
	assert.False(t, tr.Contains(4))
	assert.Equal(t, []ecs.Entity{3}, tr.Children(1))
	assert.Nil(t, tr.Remove(1))
}

func TestTreeWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.tree")
	defer teardown()
	//
	tr := buildTree(t)
	var pre []ecs.Entity
	tr.Walk(1, func(e ecs.Entity) bool {
		pre = append(pre, e)
		return e != 2 // skip children of 2
	})
	assert.Equal(t, []ecs.Entity{1, 2, 3}, pre)
	leafs := tr.DescendantsWith(1, tr.NodeIsLeaf())
	assert.Equal(t, []ecs.Entity{4, 5, 3}, leafs)
	found, ok := tr.FirstDescendantWith(1, func(e, _ ecs.Entity) bool { return e == 5 })
	assert.True(t, ok)
	assert.Equal(t, ecs.Entity(5), found)
	anc, ok := tr.AncestorWith(5, func(e, parent ecs.Entity) bool { return parent == ecs.None })
	assert.True(t, ok)
	assert.Equal(t, ecs.Entity(1), anc)
}
