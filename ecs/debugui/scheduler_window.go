package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecslite/ecs"
)

// SchedulerWindow renders the registered systems and, when the scheduler
// collects them, per-system execution timings.
type SchedulerWindow[W ecs.WorldContext] struct {
	systems []SystemInfo
}

// Refresh rebuilds the cached system list. The registry does not change
// between Initialize and Teardown, so this only needs to run once.
func (sw *SchedulerWindow[W]) Refresh(scheduler *ecs.Scheduler[W]) {
	sw.systems = DescribeSystems(scheduler)
}

func (sw *SchedulerWindow[W]) Render(scheduler *ecs.Scheduler[W]) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)

	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := scheduler.Stats()
	imgui.Text(fmt.Sprintf("Registered: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Per frame: %d", stats.RunSystemCount))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Caps")
		imgui.TableHeadersRow()

		for _, info := range sw.systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Order))
			imgui.TableNextColumn()
			imgui.Text(info.Name)
			imgui.TableNextColumn()
			imgui.Text(info.Flags())
		}

		imgui.EndTable()
	}

	if scheduler.StatsEnabled() && imgui.TreeNodeStr("Timings") {
		imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
		if imgui.BeginTableV("TimingsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
