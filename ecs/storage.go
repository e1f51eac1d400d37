package ecs

import (
	"reflect"
	"slices"
	"strings"

	"github.com/kamstrup/intmap"
)

// Storage owns the archetypes and singletons of one world. It is not safe
// for concurrent use; structural changes made while systems run go through
// Commands.
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	order      []*Archetype
	signatures map[string]uint32
	singletons map[reflect.Type]reflect.Value
}

func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		signatures: make(map[string]uint32),
		singletons: make(map[reflect.Type]reflect.Value),
	}
}

// Spawn creates an entity from component values (or pointers to them).
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}

	types := make([]reflect.Type, len(components))
	for i, comp := range components {
		types[i] = componentType(comp)
	}
	a := s.archetypeFor(types)
	return NewEntityId(a.id, a.spawn(components))
}

// Delete removes an entity. It reports whether the entity was alive.
func (s *Storage) Delete(id EntityId) bool {
	a, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return false
	}
	return a.delete(id.Index())
}

// GetComponent returns a pointer to the entity's component of type t, or
// nil when the entity is gone or has no such component.
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	a, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return a.component(id.Index(), t)
}

func (s *Storage) HasComponent(id EntityId, t reflect.Type) bool {
	return s.GetComponent(id, t) != nil
}

// Len counts live entities over all archetypes.
func (s *Storage) Len() int {
	n := 0
	for _, a := range s.order {
		n += a.Len()
	}
	return n
}

// Archetypes returns the archetypes in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.order
}

// AddSingleton stores a copy of value as the one instance of its type,
// replacing any previous one.
func (s *Storage) AddSingleton(value any) {
	t := componentType(value)
	v := reflect.New(t)
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	v.Elem().Set(rv)
	s.singletons[t] = v
}

// ReadSingleton points *out (a **T) at the stored singleton of type T. It
// reports whether one exists.
func (s *Storage) ReadSingleton(out any) bool {
	target := reflect.ValueOf(out).Elem()
	v, ok := s.singletons[target.Type().Elem()]
	if !ok {
		target.SetZero()
		return false
	}
	target.Set(v)
	return true
}

func (s *Storage) singleton(t reflect.Type) any {
	v, ok := s.singletons[t]
	if !ok {
		return nil
	}
	return v.Interface()
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	types = slices.Clone(types)
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(typeKey(a), typeKey(b))
	})

	keys := make([]string, len(types))
	for i, t := range types {
		keys[i] = typeKey(t)
	}
	signature := strings.Join(keys, ",")

	if id, ok := s.signatures[signature]; ok {
		a, _ := s.archetypes.Get(id)
		return a
	}

	a := newArchetype(uint32(len(s.order)+1), types, s.registry)
	s.signatures[signature] = a.id
	s.archetypes.Put(a.id, a)
	s.order = append(s.order, a)
	return a
}

func typeKey(t reflect.Type) string {
	return t.PkgPath() + "." + t.String()
}

// componentType unwraps one level of pointer. Components are values:
// pointers to pointers, maps, channels and funcs are rejected.
func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t == nil {
		panic("ecs: nil component")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		panic("ecs: components cannot be pointers, maps, channels, or functions")
	}
	return t
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T, or nil.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	c, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return c
}
