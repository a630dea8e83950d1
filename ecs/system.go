package ecs

import "reflect"

// System is a unit of behavior registered with a Scheduler. A system takes part
// in a phase only if it implements the matching capability: InitSystem,
// ExecuteSystem or DestroySystem. A system implementing none of them is kept in
// the registry but never invoked.
type System any

// InitSystem is implemented by systems that need to run once before the first frame.
type InitSystem[W any] interface {
	Init(world W)
}

// ExecuteSystem is implemented by systems that run every frame.
type ExecuteSystem[W any] interface {
	Execute(world W)
}

// DestroySystem is implemented by systems that release resources at shutdown.
type DestroySystem[W any] interface {
	Destroy(world W)
}

// WorldContext is the part of a world a Scheduler relies on. Everything else
// about the world is left to the systems that receive it.
type WorldContext interface {
	// Name identifies the world in diagnostics.
	Name() string
	// CheckForLeakedEntities reports whether the world holds an entity
	// without components or a component without a live entity.
	CheckForLeakedEntities() bool
}

// SystemName returns the name of the system's concrete type, without the pointer.
func SystemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType == nil {
		return "<nil>"
	}
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if name := systemType.Name(); name != "" {
		return name
	}
	return systemType.String()
}
