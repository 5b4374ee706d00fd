package arcade

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/plus3/coinrush/ecs"
)

// Frontend is the outer surface driving an Engine: it supplies keys, a quit
// signal and draws each frame.
type Frontend interface {
	Keys() KeySet
	ShouldQuit() bool
	Render(sprites []Sprite, status PlayerStatus)
}

// Engine owns one simulation: its world, pipeline and input resource.
type Engine struct {
	cfg       Config
	world     *ecs.World
	scheduler *ecs.Scheduler
	pipeline  *Pipeline
	input     *ecs.Singleton[InputState]
	logger    *slog.Logger
	player    ecs.EntityId

	statsEvery uint64
}

type engineOptions struct {
	logger      *slog.Logger
	rng         *rand.Rand
	entityLimit uint32
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithLogger sets the logger used by the engine and its systems.
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithRand overrides the random source used for spawn placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

// WithEntityLimit caps the number of entity slots.
func WithEntityLimit(limit uint32) Option {
	return func(o *engineOptions) {
		o.entityLimit = limit
	}
}

// NewRand returns the seeded generator used when no WithRand option is given.
// A zero seed is replaced by the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// NewEngine validates cfg and builds the initial world and pipeline.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := engineOptions{entityLimit: ecs.DefaultEntityLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.rng == nil {
		o.rng = NewRand(cfg.Seed)
	}

	world := NewWorld(ecs.WithEntityLimit(o.entityLimit))
	player, err := SetupWorld(world)
	if err != nil {
		return nil, fmt.Errorf("setup world: %w", err)
	}

	scheduler := ecs.NewScheduler(world)
	pipeline, err := BuildPipeline(scheduler, cfg, o.rng, o.logger)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:        cfg,
		world:      world,
		scheduler:  scheduler,
		pipeline:   pipeline,
		input:      ecs.NewSingleton[InputState](world),
		logger:     o.logger,
		player:     player,
		statsEvery: uint64(cfg.TickRate) * 10,
	}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// World returns the simulation world. Callers must not mutate it while a Step is running.
func (e *Engine) World() *ecs.World {
	return e.world
}

// Scheduler returns the scheduler driving the pipeline.
func (e *Engine) Scheduler() *ecs.Scheduler {
	return e.scheduler
}

// Pipeline returns the registered systems.
func (e *Engine) Pipeline() *Pipeline {
	return e.pipeline
}

// Player returns the player created at setup.
func (e *Engine) Player() ecs.EntityId {
	return e.player
}

// Tick returns the number of completed or started ticks.
func (e *Engine) Tick() uint64 {
	return e.scheduler.Tick()
}

// Step refreshes the input resource with keys and runs one tick.
func (e *Engine) Step(keys KeySet) error {
	e.input.Get().Keys = keys

	if err := e.scheduler.Once(e.cfg.TickInterval().Seconds()); err != nil {
		return fmt.Errorf("step: %w", err)
	}

	if e.cfg.CheckInvariants {
		if err := CheckInvariants(e.world); err != nil {
			return fmt.Errorf("tick %d: %w", e.Tick(), err)
		}
	}

	if e.statsEvery > 0 && e.Tick()%e.statsEvery == 0 {
		stats := e.scheduler.GetStats()
		e.logger.Debug("pipeline stats",
			"tick", stats.Ticks,
			"entities", e.world.EntityCount(),
			"skipped_commands", stats.SkippedCommands,
		)
	}
	return nil
}

// Run steps the simulation at the configured tick rate until the frontend
// asks to quit, ctx is cancelled or a tick fails. Quit and cancellation are
// observed once per tick, between frames.
func (e *Engine) Run(ctx context.Context, frontend Frontend) error {
	ticker := time.NewTicker(e.cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if frontend.ShouldQuit() {
			e.logger.Info("quit requested", "tick", e.Tick())
			return nil
		}

		if err := e.Step(frontend.Keys()); err != nil {
			return err
		}
		frontend.Render(Sprites(e.world), Status(e.world))
	}
}
