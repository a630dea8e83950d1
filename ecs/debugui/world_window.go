package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecslite/ecs"
)

// WorldWindow renders entity and pool counts together with a frame time graph.
type WorldWindow struct {
	frameHistory []float32
	frameIndex   int
	recorded     int
}

func NewWorldWindow(historyFrames int) *WorldWindow {
	return &WorldWindow{
		frameHistory: make([]float32, max(historyFrames, 1)),
	}
}

// Record stores a frame time in the ring buffer, in milliseconds.
func (ww *WorldWindow) Record(frameTime time.Duration) {
	ww.frameHistory[ww.frameIndex] = float32(frameTime.Seconds() * 1000)
	ww.frameIndex = (ww.frameIndex + 1) % len(ww.frameHistory)
	ww.recorded = min(ww.recorded+1, len(ww.frameHistory))
}

// AverageFrameTime returns the mean of the recorded frame times in
// milliseconds, ignoring slots that were never written.
func (ww *WorldWindow) AverageFrameTime() float32 {
	if ww.recorded == 0 {
		return 0
	}
	var total float32
	for _, ft := range ww.frameHistory {
		total += ft
	}
	return total / float32(ww.recorded)
}

func (ww *WorldWindow) Render(stats ecs.WorldStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 260), imgui.CondOnce)

	if !imgui.BeginV(fmt.Sprintf("World: %s", stats.Name), nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Pools: %d", stats.PoolCount))

	avgFrameTime := ww.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ww.frameHistory[0], int32(len(ww.frameHistory)))

	if imgui.TreeNodeStr("Pool Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PoolTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, pool := range stats.Pools {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(pool.Type)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", pool.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// frameTimer measures the wall time between consecutive frames. The first
// Tick after a reset only starts the clock and reports zero.
type frameTimer struct {
	last time.Time
}

func (ft *frameTimer) Tick() time.Duration {
	now := time.Now()
	if ft.last.IsZero() {
		ft.last = now
		return 0
	}
	elapsed := now.Sub(ft.last)
	ft.last = now
	return elapsed
}

func (ft *frameTimer) reset() {
	ft.last = time.Time{}
}
