package ecs

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreOwned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.ecs")
	defer teardown()
	//
	s := NewStore()
	e := s.CreateEntity()
	Register(s, e, "width", 12.5)
	w, err := Get[float64](s, "width", e)
	require.NoError(t, err)
	assert.Equal(t, 12.5, w)
	//
	p, err := GetMut[float64](s, "width", e)
	require.NoError(t, err)
	*p = 7
	assert.Equal(t, 7.0, MustGet[float64](s, "width", e))
	if !Is[float64](s, "width", e) || Is[string](s, "width", e) {
		t.Errorf("type check of component 'width' is wrong")
	}
}

func TestStoreErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.ecs")
	defer teardown()
	//
	s := NewStore()
	e := s.CreateEntity()
	Register(s, e, "text", "hello")
	_, err := Get[string](s, "missing", e)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	_, err = Get[int](s, "text", e)
	if !errors.Is(err, ErrWrongType) {
		t.Errorf("expected ErrWrongType, got %v", err)
	}
	assert.Panics(t, func() { MustGet[int](s, "text", e) })
	assert.Error(t, Set(s, "nope", e, 3))
}

func TestStoreSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.ecs")
	defer teardown()
	//
	s := NewStore()
	a, b, c := s.CreateEntity(), s.CreateEntity(), s.CreateEntity()
	Register(s, a, "text", "A")
	require.NoError(t, s.RegisterShared(b, "text", a, "text"))
	require.NoError(t, s.RegisterShared(c, "label", a, "text"))
	//
	require.NoError(t, Set(s, "label", c, "C"))
	assert.Equal(t, "C", MustGet[string](s, "text", a))
	assert.Equal(t, "C", MustGet[string](s, "text", b))
	//
	src, err := s.Source(c, "label")
	require.NoError(t, err)
	assert.Equal(t, Location{a, "text"}, src)
	t.Logf("aliases = %v", s.Aliases(b, "text"))
	assert.Equal(t, []Location{{a, "text"}, {b, "text"}, {c, "label"}}, s.Aliases(b, "text"))
	assert.Equal(t, []Entity{a, b, c}, s.EntitiesOfComponent("text", a))
	assert.Equal(t, []Entity{b}, s.EntitiesOfComponent("unknown", b))
}

func TestStoreRejectsChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.ecs")
	defer teardown()
	//
	s := NewStore()
	a, b, c := s.CreateEntity(), s.CreateEntity(), s.CreateEntity()
	Register(s, a, "x", 1)
	require.NoError(t, s.RegisterShared(b, "x", a, "x"))
	if err := s.RegisterShared(c, "x", b, "x"); !errors.Is(err, ErrSharingChain) {
		t.Errorf("expected binding to a binding to be rejected, got %v", err)
	}
	Register(s, c, "x", 3)
	require.NoError(t, s.RegisterShared(c, "y", c, "x"))
	if err := s.RegisterShared(c, "x", a, "x"); !errors.Is(err, ErrSharingChain) {
		t.Errorf("expected source location to be rejected as binding, got %v", err)
	}
	if err := s.RegisterShared(a, "x", a, "x"); !errors.Is(err, ErrSharingChain) {
		t.Errorf("expected self binding to be rejected, got %v", err)
	}
	if err := s.RegisterShared(a, "z", c, "nothing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected missing source to be reported, got %v", err)
	}
}

func TestStoreRebindAndOwn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.ecs")
	defer teardown()
	//
	s := NewStore()
	a, b := s.CreateEntity(), s.CreateEntity()
	Register(s, a, "x", 1)
	require.NoError(t, s.RegisterShared(b, "x", a, "x"))
	assert.True(t, s.IsShared(b, "x"))
	Register(s, b, "x", 2) // dissolves the binding
	assert.False(t, s.IsShared(b, "x"))
	assert.Equal(t, 1, MustGet[int](s, "x", a))
	assert.Equal(t, []Location{{a, "x"}}, s.Aliases(a, "x"))
}

func TestStoreRemoveEntity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetry.ecs")
	defer teardown()
	//
	s := NewStore()
	a, b := s.CreateEntity(), s.CreateEntity()
	Register(s, a, "x", 1)
	require.NoError(t, s.RegisterShared(b, "x", a, "x"))
	s.RemoveEntity(a)
	assert.False(t, s.IsAlive(a))
	assert.Equal(t, []Entity{b}, s.Entities())
	if _, err := Get[int](s, "x", b); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected dangling binding to resolve to ErrNotFound, got %v", err)
	}
	assert.True(t, s.Has(b, "x"))
	assert.Equal(t, []string{"x"}, s.Keys(b))
	//
	assert.Panics(t, func() { Register(s, a, "y", 2) })
	assert.False(t, s.IsAlive(a))
	if err := s.RegisterShared(a, "x", b, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected binding for removed entity to be rejected, got %v", err)
	}
	Register(s, 42, "z", 3) // unknown ids are adopted
	assert.True(t, s.IsAlive(42))
	assert.Equal(t, Entity(43), s.CreateEntity())
}
