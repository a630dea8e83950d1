package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorld struct {
	name   string
	leaked bool
	checks int
}

func (w *fakeWorld) Name() string { return w.name }

func (w *fakeWorld) CheckForLeakedEntities() bool {
	w.checks++
	return w.leaked
}

type corruptingSystem struct{}

func (corruptingSystem) Execute(world *fakeWorld) {
	world.leaked = true
}

func TestCheckLeaks(t *testing.T) {
	world := &fakeWorld{name: "fake"}
	scheduler := NewScheduler(world)

	assert.NotPanics(t, func() {
		scheduler.checkLeaks(PhaseExecute, corruptingSystem{})
	})

	world.leaked = true
	defer func() {
		r := recover()
		require.NotNil(t, r)
		leak, ok := r.(*LeakError)
		require.True(t, ok)
		assert.Equal(t, &LeakError{Phase: PhaseExecute, System: "corruptingSystem", World: "fake"}, leak)
	}()
	scheduler.checkLeaks(PhaseExecute, corruptingSystem{})
}

func TestLeakCheckCallSites(t *testing.T) {
	world := &fakeWorld{name: "fake"}
	scheduler := NewScheduler(world)
	scheduler.Register(corruptingSystem{})
	scheduler.Initialize()

	if debugChecks {
		assert.Panics(t, scheduler.Execute)
		assert.Equal(t, 1, world.checks)
		return
	}

	assert.NotPanics(t, scheduler.Execute)
	assert.Zero(t, world.checks, "release builds never consult the world")
}

func TestSchedulerStateString(t *testing.T) {
	assert.Equal(t, "idle", stateIdle.String())
	assert.Equal(t, "initializing", stateInitializing.String())
	assert.Equal(t, "ready", stateReady.String())
	assert.Equal(t, "tearing down", stateTearingDown.String())
	assert.Equal(t, "unknown", schedulerState(42).String())
}
