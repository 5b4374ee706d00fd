package debugui

import (
	"reflect"

	"github.com/plus3/coinrush/ecs"
)

// Target is the overlay's view of the world being debugged. It lives as a
// singleton in the overlay world and is shared by every window.
type Target struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler

	// Selected is the entity shown by the component inspector.
	Selected ecs.EntityId
	// FilterType restricts the entity browser to entities carrying this component type.
	FilterType reflect.Type
	// DeltaTime is the wall time of the last overlay frame, in seconds.
	DeltaTime float32
}

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntityId ecs.EntityId
}

type TableViewerComponent struct {
	cache *TableViewerCache
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type JoinDebuggerComponent struct {
	selected map[reflect.Type]bool
}
