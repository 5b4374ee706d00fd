package debugui

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinrush/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	Index          uint32
	Generation     uint32
	ComponentTypes []reflect.Type
	ComponentNames []string
}

type EntityBrowserCache struct {
	entities      []EntityInfo
	lastTick      uint64
	valid         bool
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache: &EntityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(target *Target) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.refresh(target)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		target.FilterType = nil
		eb.currentPage = 0
	}
	if target.FilterType != nil {
		imgui.Text(fmt.Sprintf("Table: %s", target.FilterType))
	}

	filteredEntities := eb.Filtered(target.FilterType)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
			filteredEntities = eb.Filtered(target.FilterType)
		}

		startIdx, endIdx := eb.pageBounds(len(filteredEntities))
		for _, entity := range filteredEntities[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := target.Selected == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.Index), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				target.Selected = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.Generation))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentNames, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(entity.ComponentTypes)))
		}

		imgui.EndTable()
	}

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

// refresh rebuilds the cache once per simulation tick; without a scheduler it
// rebuilds every frame.
func (eb *EntityBrowserComponent) refresh(target *Target) {
	if target.Scheduler != nil {
		tick := target.Scheduler.Tick()
		if eb.cache.valid && eb.cache.lastTick == tick {
			return
		}
		eb.cache.lastTick = tick
	}
	eb.Rebuild(target.World)
}

// Rebuild snapshots every live entity of world.
func (eb *EntityBrowserComponent) Rebuild(world *ecs.World) {
	eb.cache.entities = eb.cache.entities[:0]

	for _, id := range world.Entities() {
		types := world.ComponentTypes(id)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}

		eb.cache.entities = append(eb.cache.entities, EntityInfo{
			ID:             id,
			Index:          id.Index(),
			Generation:     id.Generation(),
			ComponentTypes: types,
			ComponentNames: names,
		})
	}
	eb.cache.valid = true

	eb.sortEntities()
}

// SortBy orders the cached entities by column: 0 index, 1 generation,
// 2 component names, 3 component count.
func (eb *EntityBrowserComponent) SortBy(column int, ascending bool) {
	eb.cache.sortColumn = column
	eb.cache.sortAscending = ascending
	eb.sortEntities()
}

func (eb *EntityBrowserComponent) sortEntities() {
	slices.SortStableFunc(eb.cache.entities, func(a, b EntityInfo) int {
		var c int
		switch eb.cache.sortColumn {
		case 1:
			c = cmpUint32(a.Generation, b.Generation)
		case 2:
			c = strings.Compare(strings.Join(a.ComponentNames, ","), strings.Join(b.ComponentNames, ","))
		case 3:
			c = len(a.ComponentTypes) - len(b.ComponentTypes)
		default:
			c = cmpUint32(a.Index, b.Index)
		}

		if !eb.cache.sortAscending {
			return -c
		}
		return c
	})
}

func cmpUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Filtered returns the cached entities matching the search text and, when
// compType is non-nil, carrying a component of that type.
func (eb *EntityBrowserComponent) Filtered(compType reflect.Type) []EntityInfo {
	if eb.filterText == "" && compType == nil {
		return eb.cache.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.cache.entities {
		if compType != nil && !slices.Contains(entity.ComponentTypes, compType) {
			continue
		}

		if eb.filterText != "" {
			idStr := entity.ID.String()
			componentsStr := strings.ToLower(strings.Join(entity.ComponentNames, " "))

			if !strings.Contains(idStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}

// SetFilter sets the search text matched against entity ids and component names.
func (eb *EntityBrowserComponent) SetFilter(text string) {
	eb.filterText = text
	eb.currentPage = 0
}

func (eb *EntityBrowserComponent) pageBounds(n int) (int, int) {
	start := eb.currentPage * eb.maxEntitiesPerPage
	if start > n {
		eb.currentPage = 0
		start = 0
	}
	end := min(start+eb.maxEntitiesPerPage, n)
	return start, end
}
