package ecs

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           uint64
	TotalExecutions int64
	SkippedCommands int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type worldInitializer interface {
	Init(world *World)
}

type queryExecutor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	name    string
	queries []queryExecutor
	stats   *systemStatsInternal
}

// Scheduler runs systems sequentially in registration order.
//
// Commands recorded by a system are flushed before the next system runs, so
// every system observes the structural changes of the ones before it.
type Scheduler struct {
	world    *World
	systems  []*registeredSystem
	writers  map[reflect.Type]string
	commands *Commands

	tick    uint64
	skipped int64
}

// NewScheduler creates a new scheduler for the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:    world,
		writers:  make(map[reflect.Type]string),
		commands: NewCommands(),
	}
}

// World returns the world the scheduler drives.
func (s *Scheduler) World() *World {
	return s.world
}

// Register validates the system's declared access, initializes its Query and
// Singleton fields and appends it to the pipeline.
func (s *Scheduler) Register(system System) error {
	name := systemName(system)
	access := system.Access()

	for _, t := range access.all() {
		if !s.world.Knows(t) {
			return fmt.Errorf("register %s: %w: %s", name, ErrUnregisteredType, t)
		}
	}

	for _, t := range access.Writes {
		if owner, taken := s.writers[t]; taken {
			return fmt.Errorf("register %s: %w: %s is already written by %s", name, ErrAccessConflict, t, owner)
		}
	}
	for _, t := range access.Writes {
		s.writers[t] = name
	}

	s.systems = append(s.systems, &registeredSystem{
		system:  system,
		name:    name,
		queries: s.initializeFields(system),
		stats: &systemStatsInternal{
			name:        name,
			minDuration: time.Duration(1<<63 - 1),
		},
	})
	return nil
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Pointer {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// initializeFields calls Init on every Query and Singleton field of the system
// and returns the queries that need a per-frame Execute.
func (s *Scheduler) initializeFields(system System) []queryExecutor {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Pointer {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []queryExecutor
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		initializer, ok := field.Addr().Interface().(worldInitializer)
		if !ok {
			continue
		}
		initializer.Init(s.world)

		if query, ok := initializer.(queryExecutor); ok {
			queries = append(queries, query)
		}
	}
	return queries
}

// Once executes all registered systems once with the given delta time.
// It returns the first fatal command error; dead-entity commands are skipped.
func (s *Scheduler) Once(dt float64) error {
	s.tick++
	frame := newUpdateFrame(s.tick, dt, s.world, s.commands)

	for _, rs := range s.systems {
		for _, query := range rs.queries {
			query.Execute()
		}

		start := time.Now()
		rs.system.Execute(frame)
		duration := time.Since(start)

		stats := rs.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		skipped, err := s.commands.Flush(s.world)
		s.skipped += int64(skipped)
		if err != nil {
			return fmt.Errorf("tick %d, %s: %w", s.tick, rs.name, err)
		}
	}

	return nil
}

// Tick returns the number of frames started so far.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Run executes all systems repeatedly at the given interval until the context
// is cancelled or a frame fails.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil {
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:     len(s.systems),
		Ticks:           s.tick,
		SkippedCommands: s.skipped,
		Systems:         make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, rs := range s.systems {
		internal := rs.stats
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
