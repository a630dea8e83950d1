package debugui

import "github.com/plus3/ecslite/ecs"

// SystemInfo describes one registered system for display.
type SystemInfo struct {
	Order   int
	Name    string
	Init    bool
	Execute bool
	Destroy bool
}

// Flags returns the capabilities as a compact "IED" string, with "-" for
// each capability the system lacks.
func (si SystemInfo) Flags() string {
	flags := []byte("---")
	if si.Init {
		flags[0] = 'I'
	}
	if si.Execute {
		flags[1] = 'E'
	}
	if si.Destroy {
		flags[2] = 'D'
	}
	return string(flags)
}

// Capabilities reports which lifecycle interfaces the system implements for worlds of type W.
func Capabilities[W ecs.WorldContext](system ecs.System) (canInit, canExecute, canDestroy bool) {
	_, canInit = system.(ecs.InitSystem[W])
	_, canExecute = system.(ecs.ExecuteSystem[W])
	_, canDestroy = system.(ecs.DestroySystem[W])
	return canInit, canExecute, canDestroy
}

// DescribeSystems lists the scheduler's systems in registration order.
func DescribeSystems[W ecs.WorldContext](scheduler *ecs.Scheduler[W]) []SystemInfo {
	systems := scheduler.AllSystems()
	infos := make([]SystemInfo, 0, len(systems))
	for i, system := range systems {
		canInit, canExecute, canDestroy := Capabilities[W](system)
		infos = append(infos, SystemInfo{
			Order:   i,
			Name:    ecs.SystemName(system),
			Init:    canInit,
			Execute: canExecute,
			Destroy: canDestroy,
		})
	}
	return infos
}
