// Package debugui provides immediate-mode inspection windows for a live
// entity manager using Dear ImGui: an entity browser, a per-entity component
// inspector, a group viewer, and a performance window fed by the manager's
// frame stats.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gobs/ecs"
)

// UI bundles the standard debug windows over a single manager. Selecting an
// entity in the browser feeds the inspector; selecting a group in the group
// viewer filters the browser.
type UI struct {
	Browser   EntityBrowserComponent
	Inspector ComponentInspectorComponent
	Groups    GroupViewerComponent
	Perf      PerformanceStatsComponent

	timer *FrameTimer
}

func NewUI() *UI {
	return &UI{
		Browser:   NewEntityBrowserComponent(100),
		Inspector: NewComponentInspectorComponent(),
		Groups:    NewGroupViewerComponent(),
		Perf:      NewPerformanceStatsComponent(120),
		timer:     NewFrameTimer(),
	}
}

// Render draws all debug windows. Call between the backend's BeginFrame and
// EndFrame, on the driver thread.
func (u *UI) Render(m *ecs.Manager) {
	dt := u.timer.GetDeltaTime()

	if clicked := u.Groups.Render(m); clicked != nil {
		u.Browser.FilterByGroup(*clicked)
	}
	u.Browser.Render(m)
	u.Inspector.Render(m, u.Browser.GetSelectedEntity())
	u.Perf.Render(m, dt)
}

// WantCapture reports whether ImGui is consuming mouse or keyboard input, so
// drivers can suppress their own input handling while a window is focused.
func WantCapture() (mouse, keyboard bool) {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse(), io.WantCaptureKeyboard()
}
