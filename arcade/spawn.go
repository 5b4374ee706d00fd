package arcade

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"reflect"

	"github.com/plus3/coinrush/ecs"
)

// spawnTimer counts ticks towards a threshold. Counting whole ticks keeps the
// firing tick exact where summing SpawnTimerStep would drift.
type spawnTimer struct {
	ticks  uint32
	period uint32
}

func newSpawnTimer(threshold float64) spawnTimer {
	return spawnTimer{period: uint32(math.Round(threshold / SpawnTimerStep))}
}

// advance moves the timer one tick and reports whether it fired.
func (t *spawnTimer) advance() bool {
	t.ticks++
	if t.ticks >= t.period {
		t.ticks = 0
		return true
	}
	return false
}

// Elapsed is the timer value in threshold units.
func (t spawnTimer) Elapsed() float64 {
	return float64(t.ticks) * SpawnTimerStep
}

// SpawnSystem periodically places coins, enemies and power-ups at random
// positions inside the play field.
type SpawnSystem struct {
	Width  float64
	Height float64
	Rand   *rand.Rand
	Logger *slog.Logger

	coin    spawnTimer
	enemy   spawnTimer
	powerUp spawnTimer
}

// NewSpawnSystem creates a spawn system for the configured play field.
func NewSpawnSystem(cfg Config, rng *rand.Rand, logger *slog.Logger) *SpawnSystem {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SpawnSystem{
		Width:   cfg.ScreenWidth,
		Height:  cfg.ScreenHeight,
		Rand:    rng,
		Logger:  logger,
		coin:    newSpawnTimer(CoinSpawnThreshold),
		enemy:   newSpawnTimer(EnemySpawnThreshold),
		powerUp: newSpawnTimer(PowerUpSpawnThreshold),
	}
}

func (s *SpawnSystem) Access() ecs.Access {
	return ecs.Access{
		Structural: []reflect.Type{
			ecs.TypeOf[Position](),
			ecs.TypeOf[BoundingBox](),
			ecs.TypeOf[Role](),
			ecs.TypeOf[Collidable](),
			ecs.TypeOf[PowerUp](),
		},
	}
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	if s.coin.advance() {
		x, y := s.randomPoint()
		frame.Commands.Spawn(CoinComponents(x, y)...)
		s.Logger.Debug("spawn", "kind", RoleCoin, "x", x, "y", y, "tick", frame.Tick)
	}
	if s.enemy.advance() {
		x, y := s.randomPoint()
		frame.Commands.Spawn(SpawnedEnemyComponents(x, y)...)
		s.Logger.Debug("spawn", "kind", RoleEnemy, "x", x, "y", y, "tick", frame.Tick)
	}
	if s.powerUp.advance() {
		x, y := s.randomPoint()
		kind := PowerUpSpeed
		if s.Rand.IntN(2) == 1 {
			kind = PowerUpHealth
		}
		frame.Commands.Spawn(PowerUpComponents(x, y, kind)...)
		s.Logger.Debug("spawn", "kind", RolePowerUp, "power_up", kind, "x", x, "y", y, "tick", frame.Tick)
	}
}

// Timers returns the coin, enemy and power-up timer values in threshold units.
func (s *SpawnSystem) Timers() (coin, enemy, powerUp float64) {
	return s.coin.Elapsed(), s.enemy.Elapsed(), s.powerUp.Elapsed()
}

func (s *SpawnSystem) randomPoint() (x, y float64) {
	return s.Rand.Float64() * s.Width, s.Rand.Float64() * s.Height
}
