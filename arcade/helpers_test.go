package arcade_test

import (
	"testing"

	"github.com/plus3/coinrush/arcade"
	"github.com/plus3/coinrush/ecs"
	"github.com/stretchr/testify/require"
)

func testConfig() arcade.Config {
	cfg := arcade.DefaultConfig()
	cfg.Seed = 42
	cfg.CheckInvariants = true
	return cfg
}

func newTestEngine(t *testing.T, cfg arcade.Config, opts ...arcade.Option) *arcade.Engine {
	t.Helper()
	engine, err := arcade.NewEngine(cfg, opts...)
	require.NoError(t, err)
	return engine
}

// newSystemWorld returns an empty arcade world driven by the given systems.
func newSystemWorld(t *testing.T, systems ...ecs.System) (*ecs.World, *ecs.Scheduler) {
	t.Helper()
	world := arcade.NewWorld()
	ecs.NewSingleton[arcade.InputState](world)
	scheduler := ecs.NewScheduler(world)
	for _, system := range systems {
		require.NoError(t, scheduler.Register(system))
	}
	return world, scheduler
}

func spawn(t *testing.T, world *ecs.World, components []any) ecs.EntityId {
	t.Helper()
	id, err := world.Spawn(components...)
	require.NoError(t, err)
	return id
}

func countRole(world *ecs.World, kind arcade.RoleKind) int {
	n := 0
	for _, role := range ecs.GetTable[arcade.Role](world).Iter() {
		if role.Kind == kind {
			n++
		}
	}
	return n
}
