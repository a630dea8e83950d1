package ecs

// Entity encodes both the generation (upper 32 bits) and the slot index (lower 32 bits).
// Generations start at 1, so the zero Entity never refers to a live entity.
type Entity uint64

// MakeEntity creates an Entity from a slot index and generation
func MakeEntity(index uint32, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the entity
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation from the entity
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether e is the zero Entity
func (e Entity) IsZero() bool {
	return e == 0
}
