package ecs

import "reflect"

// Singleton gives systems the one instance of T kept outside any entity,
// such as a frame clock or a running tally.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton returns an accessor for T, storing initializer (or the zero
// value) first when the storage has no T yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.singleton(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(&value)
	}
	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor. The scheduler calls it on Register.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = nil
}

// Get returns the stored T, or nil when none was added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil && s.storage != nil {
		s.ptr, _ = s.storage.singleton(reflect.TypeFor[T]()).(*T)
	}
	return s.ptr
}

func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
