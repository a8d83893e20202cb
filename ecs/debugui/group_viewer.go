package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gobs/ecs"
)

func NewGroupViewerComponent() GroupViewerComponent {
	return GroupViewerComponent{
		sortColumn:    1,
		sortAscending: false,
	}
}

// Render draws the group table and returns the group clicked this frame, if
// any, so the caller can wire it into the entity browser's filter.
func (gv *GroupViewerComponent) Render(m *ecs.Manager) *ecs.GroupID {
	if !imgui.BeginV("Group Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	stats := m.Stats()

	maxSize := 0
	for _, size := range stats.GroupSizes {
		if size > maxSize {
			maxSize = size
		}
	}

	var clickedGroup *ecs.GroupID

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("GroupTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Group")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		for g, size := range stats.GroupSizes {
			if size == 0 {
				continue
			}
			group := ecs.GroupID(g)

			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := gv.selectedGroup != nil && *gv.selectedGroup == group
			if imgui.SelectableBoolV(fmt.Sprintf("%d", group), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				groupCopy := group
				clickedGroup = &groupCopy
				gv.selectedGroup = &groupCopy
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", size))

			if maxSize > 0 {
				barWidth := float32(size) / float32(maxSize) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clickedGroup
}
