// Package debugui provides a Dear ImGui overlay for inspecting a scheduler and
// its world while it runs. The overlay is itself a system: register it last so
// it sees the state every other system produced during the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecslite/ecs"
)

// StatsCollector is implemented by worlds that can report their size.
// *ecs.World implements it.
type StatsCollector interface {
	CollectStats() ecs.WorldStats
}

// ImguiInputState mirrors Dear ImGui's input capture flags for the current frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders the scheduler and world windows once per frame. It must run
// between the ImGui backend's BeginFrame and EndFrame.
type Overlay[W ecs.WorldContext] struct {
	Input ImguiInputState

	scheduler   *ecs.Scheduler[W]
	systems     SchedulerWindow[W]
	worldWindow *WorldWindow
	collector   StatsCollector
	timer       frameTimer
}

// NewOverlay creates an overlay for the given scheduler. It does not register itself.
func NewOverlay[W ecs.WorldContext](scheduler *ecs.Scheduler[W]) *Overlay[W] {
	return &Overlay[W]{
		scheduler:   scheduler,
		worldWindow: NewWorldWindow(120),
	}
}

// Init caches the system list and checks whether the world can report stats.
func (o *Overlay[W]) Init(world W) {
	o.systems.Refresh(o.scheduler)
	o.collector, _ = any(world).(StatsCollector)
	o.timer.reset()
}

// Execute records the frame time and input capture flags, then draws the windows.
func (o *Overlay[W]) Execute(world W) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if frameTime := o.timer.Tick(); frameTime > 0 {
		o.worldWindow.Record(frameTime)
	}
	o.systems.Render(o.scheduler)
	if o.collector != nil {
		o.worldWindow.Render(o.collector.CollectStats())
	}
}

// Destroy drops the cached system list.
func (o *Overlay[W]) Destroy(world W) {
	o.systems = SchedulerWindow[W]{}
	o.collector = nil
}
