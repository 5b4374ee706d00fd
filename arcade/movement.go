package arcade

import (
	"reflect"

	"github.com/plus3/coinrush/ecs"
)

// MovementSystem turns the held keys into velocity for player entities.
//
// Velocity is rebuilt from scratch every tick: opposite keys cancel and
// diagonals are not normalized.
type MovementSystem struct {
	Input      ecs.Singleton[InputState]
	Controlled ecs.Query[struct {
		Id ecs.EntityId
		*Velocity
		*Role
		Boost *SpeedBoost `ecs:"optional"`
	}]
}

func (s *MovementSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:      []reflect.Type{ecs.TypeOf[InputState](), ecs.TypeOf[Role]()},
		Writes:     []reflect.Type{ecs.TypeOf[Velocity](), ecs.TypeOf[SpeedBoost]()},
		Structural: []reflect.Type{ecs.TypeOf[SpeedBoost]()},
	}
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	var keys KeySet
	if input := s.Input.Get(); input != nil {
		keys = input.Keys
	}

	for item := range s.Controlled.Values() {
		if item.Role.Kind != RolePlayer {
			continue
		}

		dx, dy := keyVector(keys)

		if item.Boost != nil && item.Boost.RemainingTicks > 0 {
			dx *= SpeedBoostFactor
			dy *= SpeedBoostFactor
			item.Boost.RemainingTicks--
			if item.Boost.RemainingTicks == 0 {
				frame.Commands.RemoveComponent(item.Id, ecs.TypeOf[SpeedBoost]())
			}
		}

		item.Velocity.DX = dx
		item.Velocity.DY = dy
	}
}

func keyVector(keys KeySet) (dx, dy float64) {
	if keys.Has(KeyUp) {
		dy -= 1
	}
	if keys.Has(KeyDown) {
		dy += 1
	}
	if keys.Has(KeyLeft) {
		dx -= 1
	}
	if keys.Has(KeyRight) {
		dx += 1
	}
	return dx, dy
}
