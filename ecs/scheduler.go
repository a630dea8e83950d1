package ecs

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
)

const defaultCapacity = 128

type schedulerState uint8

const (
	stateIdle schedulerState = iota
	stateInitializing
	stateReady
	stateTearingDown
)

func (s schedulerState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInitializing:
		return "initializing"
	case stateReady:
		return "ready"
	case stateTearingDown:
		return "tearing down"
	default:
		return "unknown"
	}
}

type options struct {
	logger   *zap.Logger
	stats    bool
	capacity int
}

// Option configures a Scheduler.
type Option func(*options)

// WithLogger sets the logger used for phase boundaries and failed leak checks.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStats enables per-system timing of Execute calls.
func WithStats() Option {
	return func(o *options) {
		o.stats = true
	}
}

// WithCapacity sets the initial capacity of the system lists.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Scheduler drives registered systems through Initialize, Execute and Teardown
// against a single world. Systems run in registration order, and in reverse
// order on Teardown.
//
// A Scheduler is not safe for concurrent use. Register every system before
// Initialize; after Teardown the scheduler is empty and may be populated again.
type Scheduler[W WorldContext] struct {
	world  W
	all    []System
	run    []ExecuteSystem[W]
	state  schedulerState
	logger *zap.Logger
	stats  *schedulerStats
}

// NewScheduler creates a scheduler bound to world. The scheduler never owns
// the world; its lifetime is managed by the caller.
func NewScheduler[W WorldContext](world W, opts ...Option) *Scheduler[W] {
	o := options{
		logger:   zap.NewNop(),
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scheduler[W]{
		world:  world,
		all:    make([]System, 0, o.capacity),
		run:    make([]ExecuteSystem[W], 0, o.capacity),
		logger: o.logger.With(zap.String("world", world.Name())),
	}
	if o.stats {
		s.stats = &schedulerStats{}
	}
	return s
}

// World returns the world the scheduler is bound to.
func (s *Scheduler[W]) World() W {
	return s.world
}

// Register appends a system to the scheduler and returns the scheduler so
// calls can be chained. Systems implementing ExecuteSystem are also added to
// the per-frame list here, so Execute never inspects capabilities.
func (s *Scheduler[W]) Register(system System) *Scheduler[W] {
	if system == nil {
		panic("ecs: cannot register a nil system")
	}
	if debugChecks {
		s.expectState("Register", stateIdle)
	}

	s.all = append(s.all, system)
	if runSystem, ok := system.(ExecuteSystem[W]); ok {
		s.run = append(s.run, runSystem)
		if s.stats != nil {
			s.stats.add(SystemName(system))
		}
	}
	return s
}

// AllSystems returns a copy of every registered system in registration order.
func (s *Scheduler[W]) AllSystems() []System {
	return slices.Clone(s.all)
}

// RunSystems returns a copy of the systems called by Execute, in the order
// Execute calls them.
func (s *Scheduler[W]) RunSystems() []ExecuteSystem[W] {
	return slices.Clone(s.run)
}

// Initialize calls Init on every InitSystem in registration order. It must be
// called once, after all systems are registered and before the first Execute.
func (s *Scheduler[W]) Initialize() {
	if debugChecks {
		s.expectState("Initialize", stateIdle)
	}
	s.state = stateInitializing
	s.logger.Debug("initializing systems",
		zap.Int("systems", len(s.all)),
		zap.Int("run_systems", len(s.run)),
	)

	for _, system := range s.all {
		if initSystem, ok := system.(InitSystem[W]); ok {
			initSystem.Init(s.world)
			if debugChecks {
				s.checkLeaks(PhaseInit, system)
			}
		}
	}

	s.state = stateReady
	s.logger.Debug("systems initialized")
}

// Execute runs one frame: Execute is called on every ExecuteSystem in
// registration order.
func (s *Scheduler[W]) Execute() {
	if debugChecks {
		s.expectState("Execute", stateReady)
	}
	if s.stats != nil {
		s.executeTimed()
		return
	}

	for _, system := range s.run {
		system.Execute(s.world)
		if debugChecks {
			s.checkLeaks(PhaseExecute, system)
		}
	}
}

func (s *Scheduler[W]) executeTimed() {
	for i, system := range s.run {
		start := time.Now()
		system.Execute(s.world)
		s.stats.systems[i].record(time.Since(start))
		if debugChecks {
			s.checkLeaks(PhaseExecute, system)
		}
	}
	s.stats.frames++
}

// Teardown calls Destroy on every DestroySystem in reverse registration order,
// so systems release their resources before the systems they depend on. The
// scheduler is emptied afterwards, even if a leak check aborts the teardown.
// Teardown is also accepted after a recovered panic in Initialize, so systems
// that did initialize still get their Destroy call.
func (s *Scheduler[W]) Teardown() {
	if debugChecks && s.state != stateInitializing {
		s.expectState("Teardown", stateReady)
	}
	s.state = stateTearingDown
	s.logger.Debug("destroying systems", zap.Int("systems", len(s.all)))
	defer s.reset()

	for i := len(s.all) - 1; i >= 0; i-- {
		if destroySystem, ok := s.all[i].(DestroySystem[W]); ok {
			destroySystem.Destroy(s.world)
			if debugChecks {
				s.checkLeaks(PhaseDestroy, s.all[i])
			}
		}
	}

	s.logger.Debug("systems destroyed")
}

func (s *Scheduler[W]) reset() {
	clear(s.all)
	s.all = s.all[:0]
	clear(s.run)
	s.run = s.run[:0]
	if s.stats != nil {
		s.stats.reset()
	}
	s.state = stateIdle
}

// Run calls Execute at the given interval until the context is cancelled.
// Initialize and Teardown are left to the caller. The interval must be positive.
func (s *Scheduler[W]) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		panic(fmt.Sprintf("ecs: Run interval must be positive, got %s", interval))
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Execute()
		}
	}
}
