package arcade_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/plus3/coinrush/arcade"
	"github.com/plus3/coinrush/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineScenario(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	world := engine.World()
	player := engine.Player()

	require.Equal(t, 3, world.EntityCount())
	initial := ecs.GetTable[arcade.Position](world).Entities()
	positions := map[ecs.EntityId]arcade.Position{}
	for _, id := range initial {
		positions[id] = *ecs.ReadComponent[arcade.Position](world, id)
	}
	assert.Equal(t, arcade.Position{X: 400, Y: 300}, positions[player])

	for range 49 {
		require.NoError(t, engine.Step(0))
	}

	assert.Equal(t, 3, world.EntityCount(), "no spawns before tick 50")
	for id, want := range positions {
		assert.Equal(t, want, *ecs.ReadComponent[arcade.Position](world, id))
	}
	assert.Equal(t, uint32(0), ecs.ReadComponent[arcade.Score](world, player).Value)
	assert.Equal(t, uint32(100), ecs.ReadComponent[arcade.Health](world, player).Value)

	require.NoError(t, engine.Step(0))
	assert.Equal(t, uint64(50), engine.Tick())
	assert.Equal(t, 4, world.EntityCount())
	assert.Equal(t, 2, countRole(world, arcade.RoleCoin), "exactly one new coin at tick 50")
	assert.Equal(t, 1, countRole(world, arcade.RoleEnemy))
	assert.Equal(t, 0, countRole(world, arcade.RolePowerUp))
}

func TestEnginePlayerCollectsCoin(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	world := engine.World()
	player := engine.Player()

	// coin at (200,200) is 200 units left and 100 up; one tick moves 5 units per axis
	upLeft := arcade.NewKeySet(arcade.KeyUp, arcade.KeyLeft)
	for range 20 {
		require.NoError(t, engine.Step(upLeft))
	}
	assert.Equal(t, arcade.Position{X: 300, Y: 200}, *ecs.ReadComponent[arcade.Position](world, player))

	left := arcade.NewKeySet(arcade.KeyLeft)
	for range 18 {
		require.NoError(t, engine.Step(left))
	}
	assert.Equal(t, arcade.Position{X: 210, Y: 200}, *ecs.ReadComponent[arcade.Position](world, player))
	assert.Equal(t, uint32(0), ecs.ReadComponent[arcade.Score](world, player).Value, "touching edges is not a pickup")

	require.NoError(t, engine.Step(left))
	assert.Equal(t, uint32(10), ecs.ReadComponent[arcade.Score](world, player).Value)
	assert.Equal(t, 0, countRole(world, arcade.RoleCoin))
	assert.Equal(t, arcade.PlayerStatus{Found: true, Score: 10, Health: 100}, arcade.Status(world))
}

func TestEngineStats(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	for range 3 {
		require.NoError(t, engine.Step(0))
	}

	stats := engine.Scheduler().GetStats()
	require.Len(t, stats.Systems, 4)
	assert.Equal(t, []string{"MovementSystem", "IntegrationSystem", "CollisionSystem", "SpawnSystem"}, []string{
		stats.Systems[0].Name, stats.Systems[1].Name, stats.Systems[2].Name, stats.Systems[3].Name,
	})
	assert.Equal(t, int64(12), stats.TotalExecutions)
}

func TestEngineExhaustion(t *testing.T) {
	engine := newTestEngine(t, testConfig(), arcade.WithEntityLimit(3))

	var err error
	for range 50 {
		if err = engine.Step(0); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, ecs.ErrResourceExhausted)
	assert.Equal(t, uint64(50), engine.Tick())
}

func TestEngineSetupExhaustion(t *testing.T) {
	_, err := arcade.NewEngine(testConfig(), arcade.WithEntityLimit(2))
	assert.ErrorIs(t, err, ecs.ErrResourceExhausted)
}

type scriptedFrontend struct {
	keys     []arcade.KeySet
	ticks    int
	quitAt   int
	frames   int
	lastSeen arcade.PlayerStatus
}

func (f *scriptedFrontend) Keys() arcade.KeySet {
	if f.ticks < len(f.keys) {
		k := f.keys[f.ticks]
		f.ticks++
		return k
	}
	f.ticks++
	return 0
}

func (f *scriptedFrontend) ShouldQuit() bool {
	return f.ticks >= f.quitAt
}

func (f *scriptedFrontend) Render(sprites []arcade.Sprite, status arcade.PlayerStatus) {
	f.frames++
	f.lastSeen = status
}

func TestEngineRun(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 1000
	engine := newTestEngine(t, cfg)

	frontend := &scriptedFrontend{
		keys:   []arcade.KeySet{arcade.NewKeySet(arcade.KeyRight), arcade.NewKeySet(arcade.KeyRight)},
		quitAt: 5,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, engine.Run(ctx, frontend))
	assert.Equal(t, 5, frontend.frames)
	assert.Equal(t, uint64(5), engine.Tick())
	assert.True(t, frontend.lastSeen.Found)
	assert.Equal(t, arcade.Position{X: 410, Y: 300}, *ecs.ReadComponent[arcade.Position](engine.World(), engine.Player()))
}

func TestEngineRunCancelled(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, engine.Run(ctx, &scriptedFrontend{quitAt: 1 << 30}))
}

func TestEngineSpeedBoost(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUpEffects = true
	engine := newTestEngine(t, cfg)
	world := engine.World()
	player := engine.Player()

	// drop a speed power-up onto the player
	_, err := world.Spawn(arcade.PowerUpComponents(400, 300, arcade.PowerUpSpeed)...)
	require.NoError(t, err)

	require.NoError(t, engine.Step(0))
	require.NotNil(t, ecs.ReadComponent[arcade.SpeedBoost](world, player))
	assert.Equal(t, uint32(300), arcade.Status(world).Boost)

	require.NoError(t, engine.Step(arcade.NewKeySet(arcade.KeyDown)))
	assert.Equal(t, arcade.Position{X: 400, Y: 310}, *ecs.ReadComponent[arcade.Position](world, player))
}

func TestEngineLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine := newTestEngine(t, testConfig(), arcade.WithLogger(logger))

	_, err := engine.World().Spawn(arcade.CoinComponents(405, 305)...)
	require.NoError(t, err)
	require.NoError(t, engine.Step(0))

	assert.Contains(t, buf.String(), "coin collected")
}
