package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/fptetris/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSpawnAndRead(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 3})
	b := storage.Spawn(&Velocity{DX: 4}, &Position{X: 5})
	c := storage.Spawn(Score(7))

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId(), "component order does not change the archetype")
	assert.NotEqual(t, a.ArchetypeId(), c.ArchetypeId())
	assert.Len(t, storage.Archetypes(), 2)
	assert.Equal(t, 3, storage.Len())

	pos := ecs.ReadComponent[Position](storage, b)
	require.NotNil(t, pos)
	assert.Equal(t, float32(5), pos.X)

	score := ecs.ReadComponent[Score](storage, c)
	require.NotNil(t, score)
	assert.Equal(t, Score(7), *score)

	assert.Nil(t, ecs.ReadComponent[Health](storage, a))
	assert.True(t, storage.HasComponent(a, reflect.TypeFor[Velocity]()))
	assert.False(t, storage.HasComponent(c, reflect.TypeFor[Velocity]()))
}

func TestStorageComponentPointersAreStable(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	pos := ecs.ReadComponent[Position](storage, first)
	for i := range 500 {
		storage.Spawn(Position{X: float32(i)})
	}

	pos.Y = 9
	assert.Equal(t, float32(9), ecs.ReadComponent[Position](storage, first).Y)
	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, first).X)
}

func TestStorageDeleteReusesSlots(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{X: 1})
	b := storage.Spawn(Position{X: 2})

	assert.True(t, storage.Delete(a))
	assert.False(t, storage.Delete(a), "second delete is a no-op")
	assert.Nil(t, ecs.ReadComponent[Position](storage, a))
	assert.Equal(t, 1, storage.Len())

	c := storage.Spawn(Position{X: 3})
	assert.Equal(t, a, c, "freed slot is reused")
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, c).X)
	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, b).X)
}

func TestStorageDeleteUnknownEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	assert.False(t, storage.Delete(ecs.NewEntityId(42, 0)))
	assert.Nil(t, ecs.ReadComponent[Position](storage, ecs.NewEntityId(42, 0)))
}

func TestStorageRejectsBadComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
	assert.Panics(t, func() { storage.Spawn(Position{}, 1.5) }, "unregistered type")
}

func TestStorageSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var health *Health
	assert.False(t, storage.ReadSingleton(&health))
	assert.Nil(t, health)

	storage.AddSingleton(Health{Current: 3, Max: 10})
	require.True(t, storage.ReadSingleton(&health))
	health.Current = 4

	var again *Health
	require.True(t, storage.ReadSingleton(&again))
	assert.Same(t, health, again)
	assert.Equal(t, 4, again.Current)
}

func TestEntityId(t *testing.T) {
	id := ecs.NewEntityId(3, 17)
	assert.Equal(t, uint32(3), id.ArchetypeId())
	assert.Equal(t, uint32(17), id.Index())
}
