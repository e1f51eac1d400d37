package ecs

import (
	"iter"
	"reflect"
)

// componentColumn is one archetype column, erased over its component type.
type componentColumn interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Iter() iter.Seq[int]
}

// ComponentRegistry knows how to build a column for each component type.
// Every Storage owns one.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentColumn
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentColumn),
	}
}

// RegisterComponent makes T usable as a component. Spawning an unregistered
// type panics.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentColumn {
		return &column[T]{}
	}
}

func (r *ComponentRegistry) column(t reflect.Type) componentColumn {
	factory, ok := r.factories[t]
	if !ok {
		panic("ecs: component type " + t.String() + " not registered")
	}
	return factory()
}

const blockSize = 64

// column keeps components in fixed blocks so pointers handed out by Get stay
// valid while the column grows. Freed slots are reused, newest first.
type column[T any] struct {
	blocks []*[blockSize]T
	filled []*[blockSize]bool
	free   []int
	next   int
}

func (c *column[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		panic("ecs: wrong component type " + reflect.TypeOf(item).String())
	}

	var index int
	if n := len(c.free); n > 0 {
		index = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		index = c.next
		c.next++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([blockSize]T))
			c.filled = append(c.filled, new([blockSize]bool))
		}
	}

	c.blocks[index/blockSize][index%blockSize] = value
	c.filled[index/blockSize][index%blockSize] = true
	return index
}

func (c *column[T]) has(index int) bool {
	return index >= 0 && index < c.next && c.filled[index/blockSize][index%blockSize]
}

func (c *column[T]) Get(index int) any {
	if !c.has(index) {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

func (c *column[T]) Delete(index int) {
	if !c.has(index) {
		return
	}
	var zero T
	c.blocks[index/blockSize][index%blockSize] = zero
	c.filled[index/blockSize][index%blockSize] = false
	c.free = append(c.free, index)
}

func (c *column[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range c.next {
			if c.filled[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}
