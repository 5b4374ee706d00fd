// Command coinrush-stress runs the arcade simulation headless as fast as it
// can, with random input and an optional crowd of extra entities, and prints
// a timing report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/plus3/coinrush/arcade"
)

func main() {
	cfg := arcade.DefaultConfig()
	cfg.Seed = 1
	cfg.BindFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	maxTicks := flag.Uint64("ticks", 0, "Stop after this many ticks (0 runs for the full duration).")
	crowd := flag.Int("crowd", 1000, "Extra coins and enemies to spawn before the run.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	var level slog.Level
	flag.TextVar(&level, "log-level", slog.LevelWarn, "log level (debug, info, warn, error)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	log.Println("Starting coinrush stress test...")

	engine, err := arcade.NewEngine(cfg, arcade.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	rng := arcade.NewRand(cfg.Seed)

	log.Printf("Spawning a crowd of %d entities...\n", *crowd)
	if err := spawnCrowd(engine, rng, *crowd); err != nil {
		log.Fatalf("Failed to spawn crowd: %v", err)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Entities:       engine.World().EntityCount(),
		Crowd:          *crowd,
		Seed:           cfg.Seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	runErr := simulate(ctx, engine, newInputDriver(rng), *maxTicks, report)
	runtime.ReadMemStats(&report.MemStatsEnd)
	if runErr != nil {
		log.Fatalf("Simulation failed: %v", runErr)
	}

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// simulate steps engine until ctx is done or maxTicks ticks have run, recording
// per-tick timings and the final pipeline and world statistics into report.
func simulate(ctx context.Context, engine *arcade.Engine, input *inputDriver, maxTicks uint64, report *Report) error {
	startTime := time.Now()
	defer func() {
		report.TotalTime = time.Since(startTime)
		report.UpdateTime.Finalize()
		report.Pipeline = engine.Scheduler().GetStats()
		report.World = engine.World().CollectStats()
		report.Player = arcade.Status(engine.World())
	}()

Loop:
	for maxTicks == 0 || report.TotalUpdates < int64(maxTicks) {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		updateStart := time.Now()
		if err := engine.Step(input.Next()); err != nil {
			return err
		}
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++
	}
	return nil
}
