package arcade_test

import (
	"testing"

	"github.com/plus3/coinrush/arcade"
	"github.com/plus3/coinrush/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate(t *testing.T) {
	pos := arcade.Position{X: 10, Y: 10}
	arcade.Integrate(&pos, arcade.Velocity{DX: 1, DY: -1})
	assert.Equal(t, arcade.Position{X: 15, Y: 5}, pos)

	arcade.Integrate(&pos, arcade.Velocity{})
	assert.Equal(t, arcade.Position{X: 15, Y: 5}, pos)
}

func TestIntegrationSystemDeterministic(t *testing.T) {
	run := func() []arcade.Position {
		world, scheduler := newSystemWorld(t, &arcade.IntegrationSystem{})
		a := spawn(t, world, arcade.PlayerComponents(0, 0))
		b := spawn(t, world, arcade.EnemyComponents(100, 100))
		still := spawn(t, world, arcade.CoinComponents(50, 50))
		ecs.GetTable[arcade.Velocity](world).Insert(a, arcade.Velocity{DX: 1, DY: 1})
		ecs.GetTable[arcade.Velocity](world).Insert(b, arcade.Velocity{DX: -1})

		for range 10 {
			require.NoError(t, scheduler.Once(1))
		}
		return []arcade.Position{
			*ecs.ReadComponent[arcade.Position](world, a),
			*ecs.ReadComponent[arcade.Position](world, b),
			*ecs.ReadComponent[arcade.Position](world, still),
		}
	}

	first := run()
	assert.Equal(t, []arcade.Position{{X: 50, Y: 50}, {X: 50, Y: 100}, {X: 50, Y: 50}}, first)
	assert.Equal(t, first, run())
}
