package ecs

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// componentPool is the type-erased view of a Pool the World works with.
type componentPool interface {
	Type() reflect.Type
	Len() int
	Has(e Entity) bool
	release(e Entity) bool
	entities() iter.Seq[Entity]
}

const poolBlockSize = 64

// Pool stores every component of type T in a world. Values live in fixed-size
// blocks, so pointers returned by Add and Get stay valid until the component
// is deleted.
type Pool[T any] struct {
	world     *World
	typ       reflect.Type
	blocks    []*[poolBlockSize]T
	owners    []Entity
	index     *intmap.Map[Entity, int]
	freeSlots []int
	nextSlot  int
	count     int
}

func newPool[T any](world *World, typ reflect.Type) *Pool[T] {
	return &Pool[T]{
		world: world,
		typ:   typ,
		index: intmap.New[Entity, int](256),
	}
}

// GetPool returns the pool for component type T, creating it on first use.
func GetPool[T any](w *World) *Pool[T] {
	t := reflect.TypeFor[T]()
	if p, ok := w.poolIndex[t]; ok {
		return p.(*Pool[T])
	}

	p := newPool[T](w, t)
	w.poolIndex[t] = p
	w.pools = append(w.pools, p)
	return p
}

// Type returns the component type stored in the pool.
func (p *Pool[T]) Type() reflect.Type {
	return p.typ
}

// Len returns the number of components in the pool.
func (p *Pool[T]) Len() int {
	return p.count
}

// Add attaches a zero T to the entity and returns a pointer to it.
// Adding a component the entity already has panics.
func (p *Pool[T]) Add(e Entity) *T {
	if debugChecks && !p.world.IsAlive(e) {
		panic(fmt.Sprintf("ecs: cannot add %s to dead entity %d", p.typ, e))
	}
	if _, ok := p.index.Get(e); ok {
		panic(fmt.Sprintf("ecs: entity %d already has %s", e, p.typ))
	}

	slot := p.alloc()
	p.owners[slot] = e
	p.index.Put(e, slot)
	p.count++
	p.world.componentAdded(e)

	return &p.blocks[slot/poolBlockSize][slot%poolBlockSize]
}

// Get returns a pointer to the entity's component, or nil if it has none.
func (p *Pool[T]) Get(e Entity) *T {
	slot, ok := p.index.Get(e)
	if !ok {
		return nil
	}
	return &p.blocks[slot/poolBlockSize][slot%poolBlockSize]
}

// Has reports whether the entity has a component in this pool.
func (p *Pool[T]) Has(e Entity) bool {
	_, ok := p.index.Get(e)
	return ok
}

// Del removes the entity's component. Removing the last component of an
// entity deletes the entity.
func (p *Pool[T]) Del(e Entity) {
	if p.release(e) {
		p.world.componentRemoved(e)
	}
}

// All iterates over every entity in the pool and its component.
func (p *Pool[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for slot := 0; slot < p.nextSlot; slot++ {
			owner := p.owners[slot]
			if owner.IsZero() {
				continue
			}
			if !yield(owner, &p.blocks[slot/poolBlockSize][slot%poolBlockSize]) {
				return
			}
		}
	}
}

func (p *Pool[T]) entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for e := range p.All() {
			if !yield(e) {
				return
			}
		}
	}
}

func (p *Pool[T]) alloc() int {
	if n := len(p.freeSlots); n > 0 {
		slot := p.freeSlots[n-1]
		p.freeSlots = p.freeSlots[:n-1]
		return slot
	}

	slot := p.nextSlot
	p.nextSlot++
	if slot/poolBlockSize >= len(p.blocks) {
		p.blocks = append(p.blocks, new([poolBlockSize]T))
	}
	p.owners = append(p.owners, 0)
	return slot
}

// release drops the entity's component without touching the entity's
// bookkeeping in the world. It reports whether a component was removed.
func (p *Pool[T]) release(e Entity) bool {
	slot, ok := p.index.Get(e)
	if !ok {
		return false
	}

	var zero T
	p.blocks[slot/poolBlockSize][slot%poolBlockSize] = zero
	p.owners[slot] = 0
	p.freeSlots = append(p.freeSlots, slot)
	p.index.Del(e)
	p.count--
	return true
}
