// Command coinrush runs the arcade simulation in an ebiten window.
//
// Move with the arrow keys or WASD; Esc or Q quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/coinrush/arcade"
	"github.com/plus3/coinrush/ecs/debugui"
	debugui_ebiten "github.com/plus3/coinrush/ecs/debugui/ebiten"
)

const windowTitle = "Coin Rush"

func main() {
	cfg := arcade.DefaultConfig()
	cfg.BindFlags(flag.CommandLine)
	var level slog.Level
	flag.TextVar(&level, "log-level", slog.LevelInfo, "log level (debug, info, warn, error)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	engine, err := arcade.NewEngine(cfg, arcade.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	game := &Game{engine: engine, logger: logger}

	width, height := int(cfg.ScreenWidth), int(cfg.ScreenHeight)
	if cfg.DebugOverlay {
		backend := debugui_ebiten.NewImguiBackend(windowTitle, width, height)
		overlay, err := debugui.NewOverlay(engine.World(), engine.Scheduler())
		if err != nil {
			log.Fatalf("Failed to create debug overlay: %v", err)
		}
		game.backend = &backend
		game.overlay = overlay
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("starting", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight, "tps", cfg.TickRate, "seed", cfg.Seed)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
	logger.Info("stopped", "tick", engine.Tick(), "status", arcade.Status(engine.World()).String())
}
