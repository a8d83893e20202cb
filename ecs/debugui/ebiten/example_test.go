package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/gobs/ecs"
	"github.com/plus3/gobs/ecs/debugui"
	debugui_ebiten "github.com/plus3/gobs/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and overlays the debug windows on the entity
// manager's output.
type Game struct {
	manager      *ecs.Manager
	ui           *debugui.UI
	imguiBackend debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.manager.Update(1.0 / 60.0)

	// Debug windows are declared inside the ImGui frame.
	g.imguiBackend.BeginFrame()
	g.ui.Render(g.manager)
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Render game content first...
	// ...then composite the ImGui overlay on top.
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Entity Manager Debug", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	manager := ecs.NewManager(ecs.NewRegistry())

	game := &Game{
		manager:      manager,
		ui:           debugui.NewUI(),
		imguiBackend: debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
