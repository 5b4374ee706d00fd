package arcade

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/plus3/coinrush/ecs"
)

// Pipeline holds the systems of one simulation in execution order.
type Pipeline struct {
	Movement    *MovementSystem
	Integration *IntegrationSystem
	Collision   *CollisionSystem
	Spawn       *SpawnSystem
}

// BuildPipeline registers Movement, Integration, Collision and Spawn on the
// scheduler in that order. The InputState singleton is created if missing.
func BuildPipeline(scheduler *ecs.Scheduler, cfg Config, rng *rand.Rand, logger *slog.Logger) (*Pipeline, error) {
	ecs.NewSingleton[InputState](scheduler.World())

	p := &Pipeline{
		Movement:    &MovementSystem{},
		Integration: &IntegrationSystem{},
		Collision: &CollisionSystem{
			Policy:          cfg.ScorePolicy,
			PowerUpEffects:  cfg.PowerUpEffects,
			SpeedBoostTicks: cfg.SpeedBoostTicks(),
			Logger:          logger,
		},
		Spawn: NewSpawnSystem(cfg, rng, logger),
	}

	for _, system := range []ecs.System{p.Movement, p.Integration, p.Collision, p.Spawn} {
		if err := scheduler.Register(system); err != nil {
			return nil, fmt.Errorf("build pipeline: %w", err)
		}
	}
	return p, nil
}
