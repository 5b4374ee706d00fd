package main

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/coinrush/arcade"
	"github.com/plus3/coinrush/ecs/debugui"
	debugui_ebiten "github.com/plus3/coinrush/ecs/debugui/ebiten"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	hudColor        = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// Game adapts the arcade engine to ebiten's update/draw loop. ebiten calls
// Update at the configured TPS, so each Update is one simulation tick.
type Game struct {
	engine *arcade.Engine
	logger *slog.Logger

	// set when the debug overlay is enabled
	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay

	pressed []ebiten.Key
}

func (g *Game) Update() error {
	g.pressed = inpututil.AppendPressedKeys(g.pressed[:0])
	if quitRequested(g.pressed) {
		g.logger.Info("quit requested", "tick", g.engine.Tick())
		return ebiten.Termination
	}

	keys := keySetFrom(g.pressed)
	if g.overlay != nil && g.overlay.InputState().WantCaptureKeyboard {
		keys = 0
	}

	if err := g.engine.Step(keys); err != nil {
		return err
	}

	if g.overlay != nil {
		return g.backend.RenderOverlay(g.overlay)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, sprite := range arcade.Sprites(g.engine.World()) {
		size := sprite.Size()
		vector.DrawFilledRect(screen,
			float32(sprite.Position.X),
			float32(sprite.Position.Y),
			float32(size.Width),
			float32(size.Height),
			sprite.Color(), false)
	}

	text.Draw(screen, arcade.Status(g.engine.World()).String(), basicfont.Face7x13, 8, 20, hudColor)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.engine.Config()
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return int(cfg.ScreenWidth), int(cfg.ScreenHeight)
}
