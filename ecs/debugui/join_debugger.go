package debugui

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinrush/ecs"
)

// JoinResult describes the entities carrying every selected component type.
type JoinResult struct {
	Entities []ecs.EntityId
	// Driver is the smallest selected table, the one the join iterates.
	Driver reflect.Type
	Sizes  map[reflect.Type]int
}

func NewJoinDebuggerComponent() JoinDebuggerComponent {
	return JoinDebuggerComponent{
		selected: make(map[reflect.Type]bool),
	}
}

func (jd *JoinDebuggerComponent) Render(target *Target) {
	if !imgui.BeginV("Join Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		clear(jd.selected)
	}

	for _, compType := range target.World.Registry().Types() {
		selected := jd.selected[compType]
		if imgui.Checkbox(compType.String(), &selected) {
			jd.Toggle(compType, selected)
		}
	}

	imgui.Separator()

	if len(jd.selected) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	result := jd.Evaluate(target.World)

	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(result.Entities)))
	if result.Driver != nil {
		imgui.Text(fmt.Sprintf("Driver: %s (%d)", result.Driver, result.Sizes[result.Driver]))
	}

	if imgui.TreeNodeStr("Matches") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("JoinMatches", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity")
			imgui.TableSetupColumn("Components")
			imgui.TableHeadersRow()

			for _, id := range result.Entities {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				if imgui.SelectableBoolV(id.String(), target.Selected == id, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
					target.Selected = id
				}

				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("%v", target.World.ComponentTypes(id)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// Toggle adds or removes compType from the selection.
func (jd *JoinDebuggerComponent) Toggle(compType reflect.Type, selected bool) {
	if selected {
		jd.selected[compType] = true
	} else {
		delete(jd.selected, compType)
	}
}

// Evaluate joins the selected tables of world. Selected types the world does
// not know are ignored.
func (jd *JoinDebuggerComponent) Evaluate(world *ecs.World) JoinResult {
	result := JoinResult{Sizes: make(map[reflect.Type]int, len(jd.selected))}

	var sets []ecs.Membership
	for _, compType := range world.Registry().Types() {
		if !jd.selected[compType] {
			continue
		}
		membership := world.Membership(compType)
		if membership == nil {
			continue
		}

		size := membership.Len()
		result.Sizes[compType] = size
		if result.Driver == nil || size < result.Sizes[result.Driver] {
			result.Driver = compType
		}
		sets = append(sets, membership)
	}

	if len(sets) == 0 {
		return result
	}

	result.Entities = ecs.Join(sets...)
	slices.SortFunc(result.Entities, func(a, b ecs.EntityId) int {
		return cmpUint32(a.Index(), b.Index())
	})
	return result
}
