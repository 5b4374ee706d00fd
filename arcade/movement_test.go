package arcade_test

import (
	"testing"

	"github.com/plus3/coinrush/arcade"
	"github.com/plus3/coinrush/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementSystem(t *testing.T) {
	tests := []struct {
		name string
		keys arcade.KeySet
		want arcade.Velocity
	}{
		{"no keys", arcade.NewKeySet(), arcade.Velocity{}},
		{"up", arcade.NewKeySet(arcade.KeyUp), arcade.Velocity{DY: -1}},
		{"down", arcade.NewKeySet(arcade.KeyDown), arcade.Velocity{DY: 1}},
		{"left", arcade.NewKeySet(arcade.KeyLeft), arcade.Velocity{DX: -1}},
		{"right", arcade.NewKeySet(arcade.KeyRight), arcade.Velocity{DX: 1}},
		{"up and down cancel", arcade.NewKeySet(arcade.KeyUp, arcade.KeyDown), arcade.Velocity{}},
		{"left and right cancel", arcade.NewKeySet(arcade.KeyLeft, arcade.KeyRight), arcade.Velocity{}},
		{"diagonal is not normalized", arcade.NewKeySet(arcade.KeyUp, arcade.KeyLeft), arcade.Velocity{DX: -1, DY: -1}},
		{"all keys", arcade.NewKeySet(arcade.KeyUp, arcade.KeyDown, arcade.KeyLeft, arcade.KeyRight), arcade.Velocity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, scheduler := newSystemWorld(t, &arcade.MovementSystem{})
			player := spawn(t, world, arcade.PlayerComponents(0, 0))
			ecs.GetTable[arcade.Velocity](world).Insert(player, arcade.Velocity{DX: 7, DY: 7})

			ecs.NewSingleton[arcade.InputState](world).Get().Keys = tt.keys
			require.NoError(t, scheduler.Once(1))

			assert.Equal(t, tt.want, *ecs.ReadComponent[arcade.Velocity](world, player))
		})
	}
}

func TestMovementIgnoresNonPlayers(t *testing.T) {
	world, scheduler := newSystemWorld(t, &arcade.MovementSystem{})
	enemy := spawn(t, world, arcade.EnemyComponents(0, 0))
	ecs.GetTable[arcade.Velocity](world).Insert(enemy, arcade.Velocity{DX: 3})

	ecs.NewSingleton[arcade.InputState](world).Get().Keys = arcade.NewKeySet(arcade.KeyUp)
	require.NoError(t, scheduler.Once(1))

	assert.Equal(t, arcade.Velocity{DX: 3}, *ecs.ReadComponent[arcade.Velocity](world, enemy))
}

func TestMovementSpeedBoost(t *testing.T) {
	world, scheduler := newSystemWorld(t, &arcade.MovementSystem{})
	player := spawn(t, world, arcade.PlayerComponents(0, 0))
	require.NoError(t, world.AddComponent(player, arcade.SpeedBoost{RemainingTicks: 2}))
	ecs.NewSingleton[arcade.InputState](world).Get().Keys = arcade.NewKeySet(arcade.KeyRight)

	require.NoError(t, scheduler.Once(1))
	assert.Equal(t, arcade.Velocity{DX: 2}, *ecs.ReadComponent[arcade.Velocity](world, player))
	assert.Equal(t, uint32(1), ecs.ReadComponent[arcade.SpeedBoost](world, player).RemainingTicks)

	require.NoError(t, scheduler.Once(1))
	assert.Equal(t, arcade.Velocity{DX: 2}, *ecs.ReadComponent[arcade.Velocity](world, player))
	assert.Nil(t, ecs.ReadComponent[arcade.SpeedBoost](world, player))

	require.NoError(t, scheduler.Once(1))
	assert.Equal(t, arcade.Velocity{DX: 1}, *ecs.ReadComponent[arcade.Velocity](world, player))
}
