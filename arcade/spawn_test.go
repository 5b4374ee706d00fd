package arcade_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/coinrush/arcade"
	"github.com/plus3/coinrush/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpawnWorld(t *testing.T, opts ...ecs.WorldOption) (*ecs.World, *ecs.Scheduler, *arcade.SpawnSystem) {
	t.Helper()
	cfg := arcade.DefaultConfig()
	system := arcade.NewSpawnSystem(cfg, rand.New(rand.NewPCG(1, 2)), nil)

	world := arcade.NewWorld(opts...)
	scheduler := ecs.NewScheduler(world)
	require.NoError(t, scheduler.Register(system))
	return world, scheduler, system
}

func TestSpawnTiming(t *testing.T) {
	world, scheduler, _ := newSpawnWorld(t)

	counts := func() [3]int {
		return [3]int{
			countRole(world, arcade.RoleCoin),
			countRole(world, arcade.RoleEnemy),
			countRole(world, arcade.RolePowerUp),
		}
	}

	for range 49 {
		require.NoError(t, scheduler.Once(1))
	}
	assert.Equal(t, [3]int{0, 0, 0}, counts())

	require.NoError(t, scheduler.Once(1))
	assert.Equal(t, [3]int{1, 0, 0}, counts(), "first coin at tick 50")

	for range 49 {
		require.NoError(t, scheduler.Once(1))
	}
	assert.Equal(t, [3]int{1, 0, 0}, counts())

	require.NoError(t, scheduler.Once(1))
	assert.Equal(t, [3]int{2, 1, 0}, counts(), "coin and enemy fire together at tick 100")

	for range 50 {
		require.NoError(t, scheduler.Once(1))
	}
	assert.Equal(t, [3]int{3, 1, 1}, counts(), "first power-up at tick 150")

	for range 150 {
		require.NoError(t, scheduler.Once(1))
	}
	assert.Equal(t, [3]int{6, 3, 2}, counts())
}

func TestSpawnedEntities(t *testing.T) {
	world, scheduler, _ := newSpawnWorld(t)
	for range 1500 {
		require.NoError(t, scheduler.Once(1))
	}

	cfg := arcade.DefaultConfig()
	view := ecs.NewView[struct {
		*arcade.Position
		*arcade.BoundingBox
		*arcade.Role
		*arcade.Collidable
		PowerUp *arcade.PowerUp `ecs:"optional"`
	}](world)

	kinds := map[arcade.PowerUpKind]int{}
	total := 0
	for item := range view.Values() {
		total++
		assert.GreaterOrEqual(t, item.Position.X, 0.0)
		assert.Less(t, item.Position.X, cfg.ScreenWidth)
		assert.GreaterOrEqual(t, item.Position.Y, 0.0)
		assert.Less(t, item.Position.Y, cfg.ScreenHeight)
		assert.Equal(t, arcade.Size(item.Role.Kind), *item.BoundingBox)

		if item.Role.Kind == arcade.RolePowerUp {
			require.NotNil(t, item.PowerUp)
			kinds[item.PowerUp.Kind]++
		} else {
			assert.Nil(t, item.PowerUp)
		}
	}

	assert.Equal(t, world.EntityCount(), total)
	assert.Equal(t, 30+15+10, total)
	assert.Equal(t, 10, kinds[arcade.PowerUpSpeed]+kinds[arcade.PowerUpHealth])
	require.NoError(t, arcade.CheckInvariants(world))
}

func TestSpawnTimersReset(t *testing.T) {
	_, scheduler, system := newSpawnWorld(t)
	for range 50 {
		require.NoError(t, scheduler.Once(1))
	}

	coin, enemy, powerUp := system.Timers()
	assert.Equal(t, 0.0, coin)
	assert.InDelta(t, 5.0, enemy, 1e-9)
	assert.InDelta(t, 5.0, powerUp, 1e-9)
}

func TestSpawnExhaustionIsFatal(t *testing.T) {
	world, scheduler, _ := newSpawnWorld(t, ecs.WithEntityLimit(1))

	for range 50 {
		require.NoError(t, scheduler.Once(1))
	}
	require.Equal(t, 1, world.EntityCount())

	var err error
	for range 50 {
		if err = scheduler.Once(1); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, ecs.ErrResourceExhausted)
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	positions := func() []arcade.Position {
		world, scheduler, _ := newSpawnWorld(t)
		for range 200 {
			require.NoError(t, scheduler.Once(1))
		}
		var out []arcade.Position
		for _, pos := range ecs.GetTable[arcade.Position](world).Iter() {
			out = append(out, *pos)
		}
		return out
	}

	assert.Equal(t, positions(), positions())
}
