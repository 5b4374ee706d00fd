package debugui

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinrush/ecs"
)

// TableInfo is one row of the table viewer.
type TableInfo struct {
	Type        reflect.Type
	Name        string
	EntityCount int
}

type TableViewerCache struct {
	tables        []TableInfo
	sortColumn    int
	sortAscending bool
}

func NewTableViewerComponent() TableViewerComponent {
	return TableViewerComponent{
		cache: &TableViewerCache{
			sortColumn:    1,
			sortAscending: false,
		},
	}
}

// Render lists every component table. Clicking a row filters the entity
// browser to that table.
func (tv *TableViewerComponent) Render(target *Target) {
	if !imgui.BeginV("Table Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	tv.Rebuild(target.World)

	maxEntityCount := 0
	for _, table := range tv.cache.tables {
		maxEntityCount = max(maxEntityCount, table.EntityCount)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ComponentTables", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			tv.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, table := range tv.cache.tables {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := target.FilterType == table.Type
			if imgui.SelectableBoolV(table.Name, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				if isSelected {
					target.FilterType = nil
				} else {
					target.FilterType = table.Type
				}
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", table.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(table.EntityCount) / float32(maxEntityCount) * 80.0
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
}

// Rebuild reads the current size of every registered component table.
func (tv *TableViewerComponent) Rebuild(world *ecs.World) {
	tv.cache.tables = tv.cache.tables[:0]
	for _, t := range world.Registry().Types() {
		membership := world.Membership(t)
		if membership == nil {
			continue
		}
		tv.cache.tables = append(tv.cache.tables, TableInfo{
			Type:        t,
			Name:        t.String(),
			EntityCount: membership.Len(),
		})
	}
	tv.sortTables()
}

// Tables returns the rows of the last Rebuild in display order.
func (tv *TableViewerComponent) Tables() []TableInfo {
	return tv.cache.tables
}

// SortBy orders the rows by column: 0 component name, 1 entity count.
func (tv *TableViewerComponent) SortBy(column int, ascending bool) {
	tv.cache.sortColumn = column
	tv.cache.sortAscending = ascending
	tv.sortTables()
}

func (tv *TableViewerComponent) sortTables() {
	slices.SortStableFunc(tv.cache.tables, func(a, b TableInfo) int {
		var c int
		if tv.cache.sortColumn == 0 {
			c = strings.Compare(a.Name, b.Name)
		} else {
			c = a.EntityCount - b.EntityCount
		}

		if !tv.cache.sortAscending {
			return -c
		}
		return c
	})
}
