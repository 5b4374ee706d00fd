package arcade_test

import (
	"errors"
	"flag"
	"io"
	"math"
	"testing"
	"time"

	"github.com/plus3/coinrush/arcade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, arcade.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*arcade.Config)
		field  string
	}{
		{"zero width", func(c *arcade.Config) { c.ScreenWidth = 0 }, "ScreenWidth"},
		{"negative height", func(c *arcade.Config) { c.ScreenHeight = -1 }, "ScreenHeight"},
		{"nan width", func(c *arcade.Config) { c.ScreenWidth = math.NaN() }, "ScreenWidth"},
		{"infinite height", func(c *arcade.Config) { c.ScreenHeight = math.Inf(1) }, "ScreenHeight"},
		{"zero tick rate", func(c *arcade.Config) { c.TickRate = 0 }, "TickRate"},
		{"huge tick rate", func(c *arcade.Config) { c.TickRate = 100000 }, "TickRate"},
		{"unknown policy", func(c *arcade.Config) { c.ScorePolicy = 9 }, "ScorePolicy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := arcade.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, arcade.ErrInvalidConfig)

			var cfgErr *arcade.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := arcade.DefaultConfig()
	cfg.TickRate = -1

	_, err := arcade.NewEngine(cfg)
	assert.ErrorIs(t, err, arcade.ErrInvalidConfig)
}

func TestConfigBindFlags(t *testing.T) {
	cfg := arcade.DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)

	err := fs.Parse([]string{
		"-width", "320",
		"-height", "240",
		"-tps", "30",
		"-seed", "7",
		"-score-policy", "all",
		"-powerup-effects",
	})
	require.NoError(t, err)

	assert.Equal(t, 320.0, cfg.ScreenWidth)
	assert.Equal(t, 240.0, cfg.ScreenHeight)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, arcade.ScoreAll, cfg.ScorePolicy)
	assert.True(t, cfg.PowerUpEffects)
	assert.False(t, cfg.CheckInvariants)
	assert.NoError(t, cfg.Validate())
}

func TestConfigBindFlagsRejectsUnknownPolicy(t *testing.T) {
	cfg := arcade.DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"-score-policy", "nobody"}))
}

func TestConfigDerivedValues(t *testing.T) {
	cfg := arcade.DefaultConfig()
	assert.Equal(t, time.Second/60, cfg.TickInterval())
	assert.Equal(t, uint32(300), cfg.SpeedBoostTicks())
}
