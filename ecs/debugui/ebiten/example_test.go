package ebiten_test

import (
	"github.com/plus3/ecslite/ecs"
	"github.com/plus3/ecslite/ecs/debugui"
	debugui_ebiten "github.com/plus3/ecslite/ecs/debugui/ebiten"
)

type Spin struct {
	Angle float32
}

type SpinSystem struct{}

func (SpinSystem) Init(world *ecs.World) {
	for range 10 {
		ecs.GetPool[Spin](world).Add(world.NewEntity())
	}
}

func (SpinSystem) Execute(world *ecs.World) {
	for _, spin := range ecs.GetPool[Spin](world).All() {
		spin.Angle += 0.1
	}
}

func Example() {
	world := ecs.NewWorld("ebiten-example")

	scheduler := ecs.NewScheduler(world, ecs.WithStats())
	scheduler.Register(SpinSystem{})
	// Register the overlay last so it reports on the finished frame
	scheduler.Register(debugui.NewOverlay(scheduler))

	game := &debugui_ebiten.Game[*ecs.World]{
		Backend:   debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720),
		Scheduler: scheduler,
	}

	if err := debugui_ebiten.Run(game); err != nil {
		panic(err)
	}
}
