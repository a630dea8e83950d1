package debugui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/plus3/ecslite/ecs"
	"github.com/plus3/ecslite/ecs/debugui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loader struct{}

func (loader) Init(*ecs.World)    {}
func (loader) Destroy(*ecs.World) {}

type mover struct{}

func (mover) Execute(*ecs.World) {}

type idle struct{}

func TestDescribeSystems(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewWorld("debug"))
	overlay := debugui.NewOverlay(scheduler)
	scheduler.Register(loader{}).Register(mover{}).Register(idle{}).Register(overlay)

	infos := debugui.DescribeSystems(scheduler)

	require.Len(t, infos, 4)
	assert.Equal(t, []debugui.SystemInfo{
		{Order: 0, Name: "loader", Init: true, Destroy: true},
		{Order: 1, Name: "mover", Execute: true},
		{Order: 2, Name: "idle"},
	}, infos[:3])
	assert.True(t, strings.HasPrefix(infos[3].Name, "Overlay["), infos[3].Name)
	assert.Equal(t, "I-D", infos[0].Flags())
	assert.Equal(t, "-E-", infos[1].Flags())
	assert.Equal(t, "---", infos[2].Flags())
	assert.Equal(t, "IED", infos[3].Flags())
}

func TestCapabilitiesDependOnWorldType(t *testing.T) {
	canInit, canExecute, canDestroy := debugui.Capabilities[*ecs.World](mover{})
	assert.False(t, canInit)
	assert.True(t, canExecute)
	assert.False(t, canDestroy)

	type otherWorld struct{ ecs.WorldContext }
	_, canExecute, _ = debugui.Capabilities[*otherWorld](mover{})
	assert.False(t, canExecute)
}

func TestWorldWindowFrameHistory(t *testing.T) {
	window := debugui.NewWorldWindow(4)
	assert.Zero(t, window.AverageFrameTime())

	window.Record(10 * time.Millisecond)
	window.Record(20 * time.Millisecond)
	assert.InDelta(t, 15.0, window.AverageFrameTime(), 0.001, "unwritten slots are ignored")

	for range 6 {
		window.Record(16 * time.Millisecond)
	}
	assert.InDelta(t, 16.0, window.AverageFrameTime(), 0.001)
}
