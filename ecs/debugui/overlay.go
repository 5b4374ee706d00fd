package debugui

import (
	"fmt"

	"github.com/plus3/coinrush/ecs"
)

// RegisterDebugUIComponents registers the window components and ImguiItem.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[EntityBrowserComponent](registry)
	ecs.RegisterComponent[ComponentInspectorComponent](registry)
	ecs.RegisterComponent[TableViewerComponent](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
	ecs.RegisterComponent[JoinDebuggerComponent](registry)
}

type window[T any] interface {
	*T
	Render(target *Target)
}

// spawnWindow stores w as a component and attaches an ImguiItem that renders
// the stored copy against the Target singleton.
func spawnWindow[T any, P window[T]](world *ecs.World, target *ecs.Singleton[Target], w T) error {
	id, err := world.Spawn(w)
	if err != nil {
		return fmt.Errorf("spawn %T: %w", w, err)
	}
	var stored P = ecs.ReadComponent[T](world, id)
	return world.AddComponent(id, ImguiItem{Render: func() { stored.Render(target.Get()) }})
}

// SpawnDebugUI spawns every debug window into world. The Target singleton is
// created when missing.
func SpawnDebugUI(world *ecs.World) error {
	target := ecs.NewSingleton[Target](world)
	if err := spawnWindow(world, target, NewEntityBrowserComponent(100)); err != nil {
		return err
	}
	if err := spawnWindow(world, target, NewComponentInspectorComponent()); err != nil {
		return err
	}
	if err := spawnWindow(world, target, NewTableViewerComponent()); err != nil {
		return err
	}
	if err := spawnWindow(world, target, NewPerformanceStatsComponent(120)); err != nil {
		return err
	}
	return spawnWindow(world, target, NewJoinDebuggerComponent())
}

// Overlay runs the debug windows in a world of their own, so window entities
// never show up in the world being inspected.
type Overlay struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	target    *ecs.Singleton[Target]
	input     *ecs.Singleton[ImguiInputState]
	timer     *FrameTimer
}

// NewOverlay builds the overlay world for inspecting world and scheduler.
// scheduler may be nil, in which case per-system timings are not shown.
func NewOverlay(world *ecs.World, scheduler *ecs.Scheduler) (*Overlay, error) {
	registry := ecs.NewComponentRegistry()
	RegisterDebugUIComponents(registry)
	ui := ecs.NewWorld(registry)

	o := &Overlay{
		world:  ui,
		target: ecs.NewSingleton(ui, Target{World: world, Scheduler: scheduler}),
		input:  ecs.NewSingleton[ImguiInputState](ui),
		timer:  NewFrameTimer(),
	}
	if err := SpawnDebugUI(ui); err != nil {
		return nil, err
	}

	o.scheduler = ecs.NewScheduler(ui)
	if err := o.scheduler.Register(&ImguiSystem{}); err != nil {
		return nil, err
	}
	return o, nil
}

// World returns the overlay's own world.
func (o *Overlay) World() *ecs.World {
	return o.world
}

// Target returns the shared window state.
func (o *Overlay) Target() *Target {
	return o.target.Get()
}

// Update renders every window. Call it between the backend's BeginFrame and EndFrame.
func (o *Overlay) Update() error {
	target := o.target.Get()
	target.DeltaTime = o.timer.GetDeltaTime()
	return o.scheduler.Once(float64(target.DeltaTime))
}

// InputState reports whether ImGui consumed input during the last Update.
func (o *Overlay) InputState() ImguiInputState {
	return *o.input.Get()
}
