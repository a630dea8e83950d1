package ecs_test

import "github.com/plus3/ecslite/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

// recorder appends "<name>.<phase>" to a shared call log.
type recorder struct {
	name string
	log  *[]string
}

func (r recorder) rec(phase string) {
	*r.log = append(*r.log, r.name+"."+phase)
}

type initOnly struct{ recorder }

func (s *initOnly) Init(*ecs.World) { s.rec("init") }

type runOnly struct{ recorder }

func (s *runOnly) Execute(*ecs.World) { s.rec("run") }

type destroyOnly struct{ recorder }

func (s *destroyOnly) Destroy(*ecs.World) { s.rec("destroy") }

type initRun struct{ recorder }

func (s *initRun) Init(*ecs.World)    { s.rec("init") }
func (s *initRun) Execute(*ecs.World) { s.rec("run") }

type initDestroy struct{ recorder }

func (s *initDestroy) Init(*ecs.World)    { s.rec("init") }
func (s *initDestroy) Destroy(*ecs.World) { s.rec("destroy") }

type fullSystem struct{ recorder }

func (s *fullSystem) Init(*ecs.World)    { s.rec("init") }
func (s *fullSystem) Execute(*ecs.World) { s.rec("run") }
func (s *fullSystem) Destroy(*ecs.World) { s.rec("destroy") }

// inertSystem implements no capability at all.
type inertSystem struct{ recorder }

// MovementSystem moves every entity with a Position and a Velocity.
type MovementSystem struct {
	ExecuteCount int
}

func (s *MovementSystem) Execute(world *ecs.World) {
	s.ExecuteCount++
	velocities := ecs.GetPool[Velocity](world)
	for e, pos := range ecs.GetPool[Position](world).All() {
		if vel := velocities.Get(e); vel != nil {
			pos.X += vel.DX
			pos.Y += vel.DY
		}
	}
}

// SpawnSystem creates entities on Init and removes them on Destroy.
type SpawnSystem struct {
	Count   int
	spawned []ecs.Entity
}

func (s *SpawnSystem) Init(world *ecs.World) {
	positions := ecs.GetPool[Position](world)
	velocities := ecs.GetPool[Velocity](world)
	for i := 0; i < s.Count; i++ {
		e := world.NewEntity()
		*positions.Add(e) = Position{X: float32(i)}
		*velocities.Add(e) = Velocity{DX: 1, DY: 2}
		s.spawned = append(s.spawned, e)
	}
}

func (s *SpawnSystem) Destroy(world *ecs.World) {
	for _, e := range s.spawned {
		world.DelEntity(e)
	}
	s.spawned = nil
}

// leakySystem creates an entity and never gives it a component.
type leakySystem struct {
	leakOn string
}

func (s *leakySystem) leak(world *ecs.World, phase string) {
	if s.leakOn == phase {
		world.NewEntity()
	}
}

func (s *leakySystem) Init(world *ecs.World)    { s.leak(world, "init") }
func (s *leakySystem) Execute(world *ecs.World) { s.leak(world, "run") }
func (s *leakySystem) Destroy(world *ecs.World) { s.leak(world, "destroy") }

func newLog() *[]string {
	calls := make([]string, 0)
	return &calls
}
