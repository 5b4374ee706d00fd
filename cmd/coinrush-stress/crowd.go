package main

import (
	"math/rand/v2"

	"github.com/plus3/coinrush/arcade"
)

// inputDriver holds a random key combination for a random number of ticks,
// roughly like a player mashing the arrow keys.
type inputDriver struct {
	rng       *rand.Rand
	keys      arcade.KeySet
	remaining int
}

func newInputDriver(rng *rand.Rand) *inputDriver {
	return &inputDriver{rng: rng}
}

func (d *inputDriver) Next() arcade.KeySet {
	if d.remaining == 0 {
		d.keys = 0
		for k := arcade.KeyUp; k <= arcade.KeyRight; k++ {
			if d.rng.IntN(3) == 0 {
				d.keys = d.keys.With(k)
			}
		}
		d.remaining = 10 + d.rng.IntN(50)
	}
	d.remaining--
	return d.keys
}

// spawnCrowd adds n coins and enemies, alternating, at random positions.
func spawnCrowd(engine *arcade.Engine, rng *rand.Rand, n int) error {
	cfg := engine.Config()
	world := engine.World()
	for i := range n {
		x := rng.Float64() * cfg.ScreenWidth
		y := rng.Float64() * cfg.ScreenHeight

		components := arcade.CoinComponents(x, y)
		if i%2 == 1 {
			components = arcade.SpawnedEnemyComponents(x, y)
		}
		if _, err := world.Spawn(components...); err != nil {
			return err
		}
	}
	return nil
}
