package ecs

// UpdateFrame carries per-tick state to each system.
type UpdateFrame struct {
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(tick uint64, dt float64, world *World, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		Tick:      tick,
		DeltaTime: dt,
		Commands:  commands,
		World:     world,
	}
}
