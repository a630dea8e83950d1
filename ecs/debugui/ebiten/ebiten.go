// Package ebiten runs a scheduler inside an Ebiten game loop with a Dear ImGui
// overlay drawn on top.
package ebiten

import (
	"errors"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ecslite/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is disabled.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Game implements ebiten.Game. Every Update runs one scheduler frame inside an
// ImGui frame, so systems such as debugui.Overlay can issue ImGui calls.
type Game[W ecs.WorldContext] struct {
	Backend   *ImguiBackend
	Scheduler *ecs.Scheduler[W]
	// DrawWorld, if set, draws the game content before the ImGui overlay.
	DrawWorld func(screen *ebiten.Image)
}

// Update runs one scheduler frame, or ends the game when Escape is pressed.
func (g *Game[W]) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.Backend.BeginFrame()
	g.Scheduler.Execute()
	g.Backend.EndFrame()
	return nil
}

// Draw draws the game content, then the ImGui overlay on top.
func (g *Game[W]) Draw(screen *ebiten.Image) {
	if g.DrawWorld != nil {
		g.DrawWorld(screen)
	}
	g.Backend.Draw(screen)
}

// Layout keeps the logical screen the size of the window.
func (g *Game[W]) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run initializes the scheduler, runs the game until the window closes or
// Escape is pressed, and tears the scheduler down.
func Run[W ecs.WorldContext](g *Game[W]) error {
	g.Scheduler.Initialize()
	defer g.Scheduler.Teardown()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
