package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
)

type entityData struct {
	generation uint32
	components int32
	alive      bool
}

// World holds entities and their components. It satisfies WorldContext and is
// the world systems receive when driven by a Scheduler[*World].
type World struct {
	name      string
	entities  []entityData
	recycled  []uint32
	alive     int
	pools     []componentPool
	poolIndex map[reflect.Type]componentPool
}

// NewWorld creates an empty world. The name is used in diagnostics.
func NewWorld(name string) *World {
	return &World{
		name:      name,
		entities:  make([]entityData, 0, 512),
		recycled:  make([]uint32, 0, 64),
		poolIndex: make(map[reflect.Type]componentPool),
	}
}

// Name returns the name the world was created with.
func (w *World) Name() string {
	return w.name
}

// NewEntity creates an entity with no components. An entity must receive a
// component before the next leak check, otherwise it counts as leaked.
func (w *World) NewEntity() Entity {
	var index uint32
	if n := len(w.recycled); n > 0 {
		index = w.recycled[n-1]
		w.recycled = w.recycled[:n-1]
	} else {
		index = uint32(len(w.entities))
		w.entities = append(w.entities, entityData{})
	}

	data := &w.entities[index]
	data.generation++
	data.components = 0
	data.alive = true
	w.alive++

	return MakeEntity(index, data.generation)
}

// DelEntity removes the entity and all of its components. Deleting a dead or
// stale entity does nothing.
func (w *World) DelEntity(e Entity) {
	if !w.IsAlive(e) {
		return
	}

	data := &w.entities[e.Index()]
	if data.components > 0 {
		for _, pool := range w.pools {
			pool.release(e)
		}
	}

	data.alive = false
	data.components = 0
	w.recycled = append(w.recycled, e.Index())
	w.alive--
}

// IsAlive reports whether e refers to a live entity of the current generation.
func (w *World) IsAlive(e Entity) bool {
	index := e.Index()
	if int(index) >= len(w.entities) {
		return false
	}
	data := w.entities[index]
	return data.alive && data.generation == e.Generation()
}

// ComponentCount returns the number of components attached to a live entity.
func (w *World) ComponentCount(e Entity) int {
	if !w.IsAlive(e) {
		return 0
	}
	return int(w.entities[e.Index()].components)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.alive
}

// Entities iterates over every live entity.
func (w *World) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i, data := range w.entities {
			if !data.alive {
				continue
			}
			if !yield(MakeEntity(uint32(i), data.generation)) {
				return
			}
		}
	}
}

// CheckForLeakedEntities reports whether any live entity has no components or
// any pool holds a component for an entity that is no longer alive.
func (w *World) CheckForLeakedEntities() bool {
	for _, data := range w.entities {
		if data.alive && data.components == 0 {
			return true
		}
	}
	for _, pool := range w.pools {
		for e := range pool.entities() {
			if !w.IsAlive(e) {
				return true
			}
		}
	}
	return false
}

func (w *World) componentAdded(e Entity) {
	if w.IsAlive(e) {
		w.entities[e.Index()].components++
	}
}

func (w *World) componentRemoved(e Entity) {
	if !w.IsAlive(e) {
		return
	}
	data := &w.entities[e.Index()]
	data.components--
	if data.components <= 0 {
		w.DelEntity(e)
	}
}

// PoolInfo describes one component pool of a world.
type PoolInfo struct {
	Type reflect.Type
	Len  int
}

// Pools describes every component pool in the order the pools were created.
func (w *World) Pools() []PoolInfo {
	infos := make([]PoolInfo, len(w.pools))
	for i, pool := range w.pools {
		infos[i] = PoolInfo{Type: pool.Type(), Len: pool.Len()}
	}
	return infos
}

// WorldStats is a snapshot of a world's size.
type WorldStats struct {
	Name        string
	EntityCount int
	PoolCount   int
	Pools       []PoolStats
}

// PoolStats describes one component pool.
type PoolStats struct {
	Type  string
	Count int
}

// CollectStats gathers entity and pool counts, with pools sorted by type name.
func (w *World) CollectStats() WorldStats {
	pools := w.Pools()
	stats := WorldStats{
		Name:        w.name,
		EntityCount: w.alive,
		PoolCount:   len(pools),
		Pools:       make([]PoolStats, 0, len(pools)),
	}
	for _, pool := range pools {
		stats.Pools = append(stats.Pools, PoolStats{
			Type:  pool.Type.String(),
			Count: pool.Len,
		})
	}
	slices.SortFunc(stats.Pools, func(a, b PoolStats) int {
		return strings.Compare(a.Type, b.Type)
	})
	return stats
}
