// Command coinrush-tui runs the arcade simulation in a terminal.
//
// Move with the arrow keys or WASD; Esc or q quits.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinrush/arcade"
)

func main() {
	cfg := arcade.DefaultConfig()
	cfg.BindFlags(flag.CommandLine)
	var (
		level   slog.Level
		logFile = flag.String("log-file", "", "write logs to this file (the terminal is taken by the game)")
	)
	flag.TextVar(&level, "log-level", slog.LevelInfo, "log level (debug, info, warn, error)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	engine, err := arcade.NewEngine(cfg, arcade.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term := newTerminal(screen, cfg)
	go term.pollEvents()

	runErr := engine.Run(ctx, term)
	screen.Fini()

	status := arcade.Status(engine.World())
	if runErr != nil {
		logger.Error("simulation failed", "error", runErr, "tick", engine.Tick())
		log.Fatalf("Simulation failed at tick %d: %v", engine.Tick(), runErr)
	}
	logger.Info("stopped", "tick", engine.Tick(), "status", status.String())
	log.Printf("Final %s after %d ticks", status, engine.Tick())
}
