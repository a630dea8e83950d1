package main

import (
	"math/rand/v2"

	"github.com/plus3/ecslite/ecs"
)

type Position struct{ X, Y float32 }
type Velocity struct{ DX, DY float32 }
type Health struct{ Current, Max int32 }
type Heat float32
type Age uint32
type Mass float32
type Charge int8
type Tag struct{}

const componentKinds = 8

// addComponent attaches the kind-th component type to e.
func addComponent(world *ecs.World, e ecs.Entity, kind int, rng *rand.Rand) {
	switch kind {
	case 0:
		*ecs.GetPool[Position](world).Add(e) = Position{X: rng.Float32() * 100, Y: rng.Float32() * 100}
	case 1:
		*ecs.GetPool[Velocity](world).Add(e) = Velocity{DX: rng.Float32() - 0.5, DY: rng.Float32() - 0.5}
	case 2:
		*ecs.GetPool[Health](world).Add(e) = Health{Current: 100, Max: 100}
	case 3:
		*ecs.GetPool[Heat](world).Add(e) = Heat(rng.Float32())
	case 4:
		ecs.GetPool[Age](world).Add(e)
	case 5:
		*ecs.GetPool[Mass](world).Add(e) = Mass(1 + rng.Float32())
	case 6:
		*ecs.GetPool[Charge](world).Add(e) = Charge(rng.IntN(3) - 1)
	case 7:
		ecs.GetPool[Tag](world).Add(e)
	}
}

// SpawnRandomEntity creates an entity with between 1 and maxComponents distinct components.
func SpawnRandomEntity(world *ecs.World, maxComponents int, rng *rand.Rand) ecs.Entity {
	e := world.NewEntity()
	count := rng.IntN(maxComponents) + 1
	for _, kind := range rng.Perm(componentKinds)[:count] {
		addComponent(world, e, kind, rng)
	}
	return e
}

// IntegratorSystem applies velocities to positions.
type IntegratorSystem struct{}

func (IntegratorSystem) Execute(world *ecs.World) {
	velocities := ecs.GetPool[Velocity](world)
	for e, pos := range ecs.GetPool[Position](world).All() {
		if vel := velocities.Get(e); vel != nil {
			pos.X += vel.DX
			pos.Y += vel.DY
		}
	}
}

// AgingSystem ages every entity with an Age and cools every Heat.
type AgingSystem struct {
	ages  *ecs.Pool[Age]
	heats *ecs.Pool[Heat]
}

func (s *AgingSystem) Init(world *ecs.World) {
	s.ages = ecs.GetPool[Age](world)
	s.heats = ecs.GetPool[Heat](world)
}

func (s *AgingSystem) Execute(*ecs.World) {
	for _, age := range s.ages.All() {
		*age++
	}
	for _, heat := range s.heats.All() {
		*heat *= 0.99
	}
}

// ChurnSystem owns a batch of entities and replaces a few of them every frame.
type ChurnSystem struct {
	Batch         int
	MaxComponents int
	rng           *rand.Rand
	owned         []ecs.Entity
}

func (s *ChurnSystem) Init(world *ecs.World) {
	for range s.Batch {
		s.owned = append(s.owned, SpawnRandomEntity(world, s.MaxComponents, s.rng))
	}
}

func (s *ChurnSystem) Execute(world *ecs.World) {
	if len(s.owned) == 0 {
		return
	}
	for range max(1, len(s.owned)/10) {
		i := s.rng.IntN(len(s.owned))
		world.DelEntity(s.owned[i])
		s.owned[i] = SpawnRandomEntity(world, s.MaxComponents, s.rng)
	}
}

func (s *ChurnSystem) Destroy(world *ecs.World) {
	for _, e := range s.owned {
		world.DelEntity(e)
	}
	s.owned = nil
}

// DamageSystem drains health and deletes the Health component at zero.
type DamageSystem struct {
	rng *rand.Rand
}

func (s *DamageSystem) Execute(world *ecs.World) {
	healths := ecs.GetPool[Health](world)
	for e, health := range healths.All() {
		health.Current -= int32(s.rng.IntN(2))
		if health.Current <= 0 {
			healths.Del(e)
		}
	}
}

// ChargeSetupSystem tags every charged entity once at startup.
type ChargeSetupSystem struct{}

func (ChargeSetupSystem) Init(world *ecs.World) {
	tags := ecs.GetPool[Tag](world)
	for e := range ecs.GetPool[Charge](world).All() {
		if !tags.Has(e) {
			tags.Add(e)
		}
	}
}

// ShutdownSystem removes every remaining entity at teardown. It is registered
// first so that it is destroyed last.
type ShutdownSystem struct{}

func (ShutdownSystem) Destroy(world *ecs.World) {
	entities := make([]ecs.Entity, 0, world.EntityCount())
	for e := range world.Entities() {
		entities = append(entities, e)
	}
	for _, e := range entities {
		world.DelEntity(e)
	}
}

// RegisterSystems registers count systems cycling through every capability mix.
func RegisterSystems(scheduler *ecs.Scheduler[*ecs.World], count, maxComponents int, rng *rand.Rand) {
	scheduler.Register(ShutdownSystem{})
	for i := 1; i < count; i++ {
		switch i % 5 {
		case 0:
			scheduler.Register(IntegratorSystem{})
		case 1:
			scheduler.Register(&AgingSystem{})
		case 2:
			scheduler.Register(&ChurnSystem{Batch: 16, MaxComponents: maxComponents, rng: rng})
		case 3:
			scheduler.Register(&DamageSystem{rng: rng})
		case 4:
			scheduler.Register(ChargeSetupSystem{})
		}
	}
}
