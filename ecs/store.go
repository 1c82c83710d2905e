package ecs

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sort"
)

// Entity is an opaque handle identifying a widget instance.
// The zero value is never handed out by a store.
type Entity uint32

// None is the invalid entity.
const None Entity = 0

func (e Entity) String() string {
	return fmt.Sprintf("#%d", uint32(e))
}

// Location is a storage location of a component: an entity and a key.
type Location struct {
	Entity Entity
	Key    string
}

func (loc Location) String() string {
	return fmt.Sprintf("%s.%s", loc.Entity, loc.Key)
}

// Errors returned by store operations. Callers should test with errors.Is.
var (
	ErrNotFound     = errors.New("component not found")
	ErrWrongType    = errors.New("component has different type")
	ErrSharingChain = errors.New("component sharing may not exceed one hop")
)

// slot holds either an owned value (always a pointer *T, boxed) or a
// binding to a source location.
type slot struct {
	value  any
	shared bool
	source Location
}

// Store maps entities to typed, keyed components.
type Store struct {
	next     Entity
	entities []Entity
	alive    map[Entity]bool
	removed  map[Entity]bool
	comps    map[Entity]map[string]*slot
	aliases  map[Location][]Location // source location => bound locations, in binding order
}

// NewStore creates an empty component store.
func NewStore() *Store {
	return &Store{
		alive:   make(map[Entity]bool),
		removed: make(map[Entity]bool),
		comps:   make(map[Entity]map[string]*slot),
		aliases: make(map[Location][]Location),
	}
}

// CreateEntity hands out a fresh entity. Entities are never reused.
func (s *Store) CreateEntity() Entity {
	s.next++
	e := s.next
	s.alive[e] = true
	s.entities = append(s.entities, e)
	return e
}

// Entities returns all live entities in creation order.
func (s *Store) Entities() []Entity {
	r := make([]Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if s.alive[e] {
			r = append(r, e)
		}
	}
	return r
}

// IsAlive is true if e has been created and not yet removed.
func (s *Store) IsAlive(e Entity) bool {
	return s.alive[e]
}

// RemoveEntity drops every component of e, owned or shared.
// Bindings of other entities which use e as their source are left dangling
// and will resolve to ErrNotFound.
func (s *Store) RemoveEntity(e Entity) {
	if !s.alive[e] {
		return
	}
	for key, sl := range s.comps[e] {
		if sl.shared {
			s.unbind(Location{e, key}, sl.source)
		} else if n := len(s.aliases[Location{e, key}]); n > 0 {
			tracer().P("entity", e).Infof("removing source of %d bindings for %q", n, key)
			delete(s.aliases, Location{e, key})
		}
	}
	delete(s.comps, e)
	delete(s.alive, e)
	s.removed[e] = true
	for i, x := range s.entities {
		if x == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
	tracer().P("entity", e).Debugf("entity removed from store")
}

// Has is true if (e, key) holds an owned value or a binding.
// Dangling bindings count as present.
func (s *Store) Has(e Entity, key string) bool {
	_, ok := s.comps[e][key]
	return ok
}

// IsShared is true if (e, key) is a binding to another location.
func (s *Store) IsShared(e Entity, key string) bool {
	sl, ok := s.comps[e][key]
	return ok && sl.shared
}

// Keys returns the component keys of e in lexical order.
func (s *Store) Keys(e Entity) []string {
	keys := make([]string, 0, len(s.comps[e]))
	for k := range s.comps[e] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RegisterShared binds (e, key) to read and write through (src, srcKey).
//
// The source has to exist and has to be owned. (e, key) may not be the
// source of other bindings. Violations return ErrSharingChain. An owned
// value previously stored at (e, key) is dropped; a previous binding is
// replaced.
func (s *Store) RegisterShared(e Entity, key string, src Entity, srcKey string) error {
	target := Location{e, key}
	source := Location{src, srcKey}
	if s.removed[e] {
		return fmt.Errorf("binding %s of removed entity: %w", target, ErrNotFound)
	}
	if target == source {
		return fmt.Errorf("binding %s to itself: %w", target, ErrSharingChain)
	}
	srcSlot, ok := s.comps[src][srcKey]
	if !ok {
		return fmt.Errorf("source %s of binding %s: %w", source, target, ErrNotFound)
	}
	if srcSlot.shared {
		return fmt.Errorf("source %s of binding %s is itself shared: %w", source, target, ErrSharingChain)
	}
	if len(s.aliases[target]) > 0 {
		return fmt.Errorf("%s is a source for %d bindings: %w", target, len(s.aliases[target]), ErrSharingChain)
	}
	if old, ok := s.comps[e][key]; ok && old.shared {
		s.unbind(target, old.source)
	}
	s.slots(e)[key] = &slot{shared: true, source: source}
	s.aliases[source] = append(s.aliases[source], target)
	tracer().P("entity", e).Debugf("component %q shared from %s", key, source)
	return nil
}

// Source returns the true storage location of (e, key). For owned
// components this is (e, key) itself.
func (s *Store) Source(e Entity, key string) (Location, error) {
	loc, _, err := s.resolve(e, key)
	return loc, err
}

// Aliases returns every location backed by the same storage as (e, key):
// the source location first, followed by all bindings to it in the order
// they were registered. For an absent key the result is just (e, key).
func (s *Store) Aliases(e Entity, key string) []Location {
	src, _, err := s.resolve(e, key)
	if err != nil {
		return []Location{{e, key}}
	}
	bound := s.aliases[src]
	r := make([]Location, 0, len(bound)+1)
	r = append(r, src)
	r = append(r, bound...)
	return r
}

// EntitiesOfComponent returns every entity which shares the storage of
// (e, key), including the source entity. The result is never empty.
func (s *Store) EntitiesOfComponent(key string, e Entity) []Entity {
	locs := s.Aliases(e, key)
	r := make([]Entity, len(locs))
	for i, loc := range locs {
		r[i] = loc.Entity
	}
	return r
}

// --- Typed access ----------------------------------------------------------

// Register stores value as a component owned by e under key.
// A binding previously registered at (e, key) is dissolved.
// Entities not handed out by CreateEntity are adopted; registering for a
// removed entity panics.
func Register[T any](s *Store, e Entity, key string, value T) {
	if s.removed[e] {
		panic(fmt.Sprintf("ecs: registering component %q for removed entity %s", key, e))
	}
	if !s.alive[e] {
		s.alive[e] = true
		s.entities = append(s.entities, e)
		if e > s.next {
			s.next = e
		}
	}
	slots := s.slots(e)
	if old, ok := slots[key]; ok && old.shared {
		s.unbind(Location{e, key}, old.source)
	}
	v := new(T)
	*v = value
	if old, ok := slots[key]; ok && !old.shared {
		old.value = v
		return
	}
	slots[key] = &slot{value: v}
}

// Get returns a copy of the component stored for (e, key), resolving a
// binding if necessary.
func Get[T any](s *Store, key string, e Entity) (T, error) {
	p, err := GetMut[T](s, key, e)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// GetMut returns a pointer to the storage of (e, key). Writes through the
// pointer are visible to every alias of the location.
func GetMut[T any](s *Store, key string, e Entity) (*T, error) {
	loc, sl, err := s.resolve(e, key)
	if err != nil {
		return nil, err
	}
	p, ok := sl.value.(*T)
	if !ok {
		var zero T
		return nil, fmt.Errorf("%s is %T, requested %T: %w", loc, sl.value, &zero, ErrWrongType)
	}
	return p, nil
}

// MustGet is like Get, but panics if the component is missing or has a
// different type. Use it for properties guaranteed by widget construction.
func MustGet[T any](s *Store, key string, e Entity) T {
	v, err := Get[T](s, key, e)
	if err != nil {
		panic(fmt.Sprintf("entity %s: required component %q: %v", e, key, err))
	}
	return v
}

// Set overwrites the storage of (e, key). The component has to exist with
// type T. No dirty marking is involved; see package frame for that.
func Set[T any](s *Store, key string, e Entity, value T) error {
	p, err := GetMut[T](s, key, e)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Is checks wether (e, key) resolves to a component of type T.
func Is[T any](s *Store, key string, e Entity) bool {
	_, sl, err := s.resolve(e, key)
	if err != nil {
		return false
	}
	_, ok := sl.value.(*T)
	return ok
}

// --- Internals -------------------------------------------------------------

func (s *Store) slots(e Entity) map[string]*slot {
	m, ok := s.comps[e]
	if !ok {
		m = make(map[string]*slot)
		s.comps[e] = m
	}
	return m
}

// resolve follows at most one binding.
func (s *Store) resolve(e Entity, key string) (Location, *slot, error) {
	sl, ok := s.comps[e][key]
	if !ok {
		return Location{}, nil, fmt.Errorf("entity %s has no component %q: %w", e, key, ErrNotFound)
	}
	if !sl.shared {
		return Location{e, key}, sl, nil
	}
	src, ok := s.comps[sl.source.Entity][sl.source.Key]
	if !ok {
		return Location{}, nil, fmt.Errorf("binding %s.%s dangles at %s: %w", e, key, sl.source, ErrNotFound)
	}
	if src.shared { // prevented at registration
		panic(fmt.Sprintf("ecs: sharing chain detected at %s.%s -> %s", e, key, sl.source))
	}
	return sl.source, src, nil
}

func (s *Store) unbind(target, source Location) {
	bound := s.aliases[source]
	for i, loc := range bound {
		if loc == target {
			bound = append(bound[:i], bound[i+1:]...)
			break
		}
	}
	if len(bound) == 0 {
		delete(s.aliases, source)
	} else {
		s.aliases[source] = bound
	}
}
