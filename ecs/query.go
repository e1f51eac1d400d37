package ecs

import "iter"

// Query is a View that a Scheduler snapshots once per frame. Systems hold
// Query fields by value; the scheduler binds them on Register.
type Query[T any] struct {
	view       *View[T]
	storage    *Storage
	archetypes []*Archetype
	seen       int

	entities   []EntityId
	components []T
	ready      bool
}

func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to a storage and drops every cache.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.seen = 0
	q.ready = false
}

// Execute snapshots the matching entities for this frame. Archetypes are
// only rescanned when new ones appeared since the last call.
func (q *Query[T]) Execute() {
	for _, a := range q.storage.order[q.seen:] {
		if q.view.matches(a) {
			q.archetypes = append(q.archetypes, a)
		}
	}
	q.seen = len(q.storage.order)

	q.entities = q.entities[:0]
	q.components = q.components[:0]
	for _, a := range q.archetypes {
		for id, item := range q.view.iterArchetype(a) {
			q.entities = append(q.entities, id)
			q.components = append(q.components, item)
		}
	}
	q.ready = true
}

func (q *Query[T]) mustBeReady() {
	if !q.ready {
		panic("ecs: Query used before Execute")
	}
}

func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.mustBeReady()
	return func(yield func(EntityId, T) bool) {
		for i, id := range q.entities {
			if !yield(id, q.components[i]) {
				return
			}
		}
	}
}

func (q *Query[T]) Values() iter.Seq[T] {
	q.mustBeReady()
	return func(yield func(T) bool) {
		for _, c := range q.components {
			if !yield(c) {
				return
			}
		}
	}
}

// Len is the size of the current snapshot.
func (q *Query[T]) Len() int {
	q.mustBeReady()
	return len(q.entities)
}
