package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/coinrush/arcade"
)

var keyBindings = map[ebiten.Key]arcade.Key{
	ebiten.KeyArrowUp:    arcade.KeyUp,
	ebiten.KeyW:          arcade.KeyUp,
	ebiten.KeyArrowDown:  arcade.KeyDown,
	ebiten.KeyS:          arcade.KeyDown,
	ebiten.KeyArrowLeft:  arcade.KeyLeft,
	ebiten.KeyA:          arcade.KeyLeft,
	ebiten.KeyArrowRight: arcade.KeyRight,
	ebiten.KeyD:          arcade.KeyRight,
}

// keySetFrom maps the physical keys held this frame onto movement keys.
func keySetFrom(pressed []ebiten.Key) arcade.KeySet {
	var keys arcade.KeySet
	for _, k := range pressed {
		if key, ok := keyBindings[k]; ok {
			keys = keys.With(key)
		}
	}
	return keys
}

func quitRequested(pressed []ebiten.Key) bool {
	for _, k := range pressed {
		if k == ebiten.KeyEscape || k == ebiten.KeyQ {
			return true
		}
	}
	return false
}
