// Package ebiten provides Dear ImGui backend integration for drivers built
// on the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Call BeginFrame
// before rendering debug windows, EndFrame after, and Draw from the game's
// Draw to composite the overlay.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
