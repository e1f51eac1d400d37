package ecs

import (
	"iter"
	"reflect"
)

// View reads entities through a struct of component pointers, for example
//
//	struct {
//		*Position
//		Sprite *Sprite `ecs:"optional"`
//	}
//
// Embedded fields are always required. Named fields may be tagged optional
// and are nil when the entity lacks the component.
type View[T any] struct {
	storage  *Storage
	types    []reflect.Type
	optional []bool
}

func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := range structType.NumField() {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Pointer {
			panic("ecs: View struct fields must be pointer types")
		}

		optional := false
		switch tag := field.Tag.Get("ecs"); {
		case tag == "":
		case tag == "optional" && !field.Anonymous:
			optional = true
		default:
			panic("ecs: invalid tag " + tag + " on field " + field.Name)
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, optional)
	}
	return v
}

func (v *View[T]) matches(a *Archetype) bool {
	for i, t := range v.types {
		if !v.optional[i] && !a.HasComponent(t) {
			return false
		}
	}
	return true
}

func (v *View[T]) fill(dst reflect.Value, a *Archetype, index uint32) bool {
	for i, t := range v.types {
		field := dst.Field(i)
		c := a.component(index, t)
		if c == nil {
			if !v.optional[i] {
				return false
			}
			field.SetZero()
			continue
		}
		field.Set(reflect.ValueOf(c))
	}
	return true
}

// Get returns the entity seen through the view, or nil when it is gone or
// lacks a required component.
func (v *View[T]) Get(id EntityId) *T {
	a, ok := v.storage.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	var result T
	if !v.fill(reflect.ValueOf(&result).Elem(), a, id.Index()) {
		return nil
	}
	return &result
}

func (v *View[T]) iterArchetype(a *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		var result T
		dst := reflect.ValueOf(&result).Elem()
		for id := range a.Iter() {
			if !v.fill(dst, a, id.Index()) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Iter walks every matching entity, archetypes in creation order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, a := range v.storage.order {
			if !v.matches(a) {
				continue
			}
			for id, item := range v.iterArchetype(a) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}
