package arcade

import (
	"math"

	"github.com/plus3/coinrush/ecs"
)

// Position is the top-left anchor of an entity in world units.
type Position struct {
	X, Y float64
}

// Velocity is the per-tick displacement intent before SpeedScale is applied.
type Velocity struct {
	DX, DY float64
}

// BoundingBox is the axis-aligned extent of an entity anchored at its Position.
type BoundingBox struct {
	Width, Height float64
}

// Health is a hit point pool that never wraps below zero.
type Health struct {
	Value uint32
}

// Damage subtracts amount, stopping at zero.
func (h *Health) Damage(amount uint32) {
	if amount >= h.Value {
		h.Value = 0
		return
	}
	h.Value -= amount
}

// Heal adds amount, stopping at the largest representable value.
func (h *Health) Heal(amount uint32) {
	h.Value = saturatingAdd(h.Value, amount)
}

// Score only ever grows.
type Score struct {
	Value uint32
}

// Add increases the score, stopping at the largest representable value.
func (s *Score) Add(points uint32) {
	s.Value = saturatingAdd(s.Value, points)
}

func saturatingAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

// RoleKind identifies what an entity is. Every entity has at most one role.
type RoleKind uint8

const (
	RolePlayer RoleKind = iota + 1
	RoleCoin
	RoleEnemy
	RoleObstacle
	RolePowerUp
)

func (k RoleKind) String() string {
	switch k {
	case RolePlayer:
		return "player"
	case RoleCoin:
		return "coin"
	case RoleEnemy:
		return "enemy"
	case RoleObstacle:
		return "obstacle"
	case RolePowerUp:
		return "power-up"
	}
	return "unknown"
}

// Role tags an entity with its kind. Players are the entities driven by input.
type Role struct {
	Kind RoleKind
}

// Collidable marks entities that take part in overlap tests.
type Collidable struct{}

type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota + 1
	PowerUpHealth
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpHealth:
		return "health"
	}
	return "none"
}

// PowerUp is consumed when a player touches it.
type PowerUp struct {
	Kind PowerUpKind
}

// SpeedBoost multiplies a player's velocity while RemainingTicks is non-zero.
type SpeedBoost struct {
	RemainingTicks uint32
}

// NewRegistry registers every arcade component type.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[BoundingBox](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Score](registry)
	ecs.RegisterComponent[Role](registry)
	ecs.RegisterComponent[Collidable](registry)
	ecs.RegisterComponent[PowerUp](registry)
	ecs.RegisterComponent[SpeedBoost](registry)
	return registry
}
