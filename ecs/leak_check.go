package ecs

import (
	"fmt"

	"go.uber.org/zap"
)

// Phase names the system entry point a diagnostic refers to.
type Phase string

const (
	PhaseInit    Phase = "Init"
	PhaseExecute Phase = "Execute"
	PhaseDestroy Phase = "Destroy"
)

// LeakError is the panic value raised when the world fails its leak check
// right after a system call. It is only produced in ecsdebug builds.
type LeakError struct {
	Phase  Phase
	System string
	World  string
}

func (e *LeakError) Error() string {
	return fmt.Sprintf("ecs: leaked entity detected in world %q after %s.%s()", e.World, e.System, e.Phase)
}

// PhaseError is the panic value raised when a scheduler method is called out
// of order. It is only produced in ecsdebug builds.
type PhaseError struct {
	Op    string
	State string
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("ecs: %s called while scheduler is %s", e.Op, e.State)
}

// checkLeaks asks the world for its invariant and panics if it does not hold.
// Call sites are guarded by debugChecks so release builds drop them entirely.
func (s *Scheduler[W]) checkLeaks(phase Phase, system System) {
	if !s.world.CheckForLeakedEntities() {
		return
	}
	err := &LeakError{
		Phase:  phase,
		System: SystemName(system),
		World:  s.world.Name(),
	}
	s.logger.Error("leak check failed", zap.String("phase", string(phase)), zap.String("system", err.System))
	panic(err)
}

func (s *Scheduler[W]) expectState(op string, want schedulerState) {
	if s.state != want {
		panic(&PhaseError{Op: op, State: s.state.String()})
	}
}
