package arcade

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError reports a configuration field that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// ScorePolicy decides which Score components a coin pickup credits.
type ScorePolicy uint8

const (
	// ScoreCollider credits only the player that touched the coin.
	ScoreCollider ScorePolicy = iota
	// ScoreAll credits every entity that has a Score.
	ScoreAll
)

func (p ScorePolicy) String() string {
	switch p {
	case ScoreCollider:
		return "collider"
	case ScoreAll:
		return "all"
	}
	return fmt.Sprintf("ScorePolicy(%d)", uint8(p))
}

// Set implements flag.Value.
func (p *ScorePolicy) Set(s string) error {
	switch s {
	case "collider":
		*p = ScoreCollider
	case "all":
		*p = ScoreAll
	default:
		return fmt.Errorf("unknown score policy %q (want collider or all)", s)
	}
	return nil
}

const maxTickRate = 1000

// Config holds the startup parameters of a simulation. It is not changed
// after NewEngine returns.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64
	TickRate     int

	// Seed for spawn placement; 0 picks a time based seed.
	Seed int64

	ScorePolicy     ScorePolicy
	PowerUpEffects  bool
	CheckInvariants bool
	DebugOverlay    bool
}

// DefaultConfig returns the 800x600, 60 Hz configuration.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		TickRate:     60,
		ScorePolicy:  ScoreCollider,
	}
}

// Validate checks bounds and tick rate.
func (c Config) Validate() error {
	if err := validateExtent("ScreenWidth", c.ScreenWidth); err != nil {
		return err
	}
	if err := validateExtent("ScreenHeight", c.ScreenHeight); err != nil {
		return err
	}
	if c.TickRate <= 0 || c.TickRate > maxTickRate {
		return &ConfigError{Field: "TickRate", Value: c.TickRate, Reason: fmt.Sprintf("must be in 1..%d", maxTickRate)}
	}
	if c.ScorePolicy != ScoreCollider && c.ScorePolicy != ScoreAll {
		return &ConfigError{Field: "ScorePolicy", Value: c.ScorePolicy, Reason: "unknown policy"}
	}
	return nil
}

func validateExtent(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ConfigError{Field: field, Value: v, Reason: "must be a positive finite number"}
	}
	return nil
}

// TickInterval is the wall-clock duration of one tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// SpeedBoostTicks is the number of ticks a speed power-up lasts.
func (c Config) SpeedBoostTicks() uint32 {
	return uint32(SpeedBoostSeconds * c.TickRate)
}

// BindFlags registers the configuration fields on fs, using c's current
// values as defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.ScreenWidth, "width", c.ScreenWidth, "simulation width in world units")
	fs.Float64Var(&c.ScreenHeight, "height", c.ScreenHeight, "simulation height in world units")
	fs.IntVar(&c.TickRate, "tps", c.TickRate, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "spawn placement seed (0 = time based)")
	fs.Var(&c.ScorePolicy, "score-policy", "coin reward target: collider or all")
	fs.BoolVar(&c.PowerUpEffects, "powerup-effects", c.PowerUpEffects, "apply power-up effects on pickup")
	fs.BoolVar(&c.CheckInvariants, "check-invariants", c.CheckInvariants, "verify world invariants after every tick")
	fs.BoolVar(&c.DebugOverlay, "debug", c.DebugOverlay, "show the ECS debug overlay")
}
