package ecs

import (
	"reflect"
	"slices"
)

// Archetype stores every entity that has exactly one set of component
// types, one column per type.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentColumn
	count   int
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentColumn, len(types)),
	}
	for i, t := range types {
		a.columns[i] = registry.column(t)
	}
	return a
}

// spawn appends one entity. components must match types one to one, in
// any order.
func (a *Archetype) spawn(components []any) uint32 {
	index := -1
	for _, comp := range components {
		i := a.columnOf(componentType(comp))
		index = a.columns[i].Append(comp)
	}
	a.count++
	return uint32(index)
}

func (a *Archetype) delete(index uint32) bool {
	if a.columns[0].Get(int(index)) == nil {
		return false
	}
	for _, c := range a.columns {
		c.Delete(int(index))
	}
	a.count--
	return true
}

func (a *Archetype) columnOf(t reflect.Type) int {
	return slices.Index(a.types, t)
}

// component returns a pointer to the entity's component of type t, or nil.
func (a *Archetype) component(index uint32, t reflect.Type) any {
	i := a.columnOf(t)
	if i < 0 {
		return nil
	}
	return a.columns[i].Get(int(index))
}

func (a *Archetype) ID() uint32 { return a.id }

func (a *Archetype) Types() []reflect.Type { return a.types }

// Len is the number of live entities.
func (a *Archetype) Len() int { return a.count }

func (a *Archetype) HasComponent(t reflect.Type) bool {
	return a.columnOf(t) >= 0
}

// Iter yields the ids of live entities in slot order.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
