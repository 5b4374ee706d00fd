package arcade

import (
	"reflect"

	"github.com/plus3/coinrush/ecs"
)

// IntegrationSystem moves every entity with a velocity by velocity * SpeedScale.
type IntegrationSystem struct {
	Bodies ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *IntegrationSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  []reflect.Type{ecs.TypeOf[Velocity]()},
		Writes: []reflect.Type{ecs.TypeOf[Position]()},
	}
}

func (s *IntegrationSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Bodies.Values() {
		Integrate(item.Position, *item.Velocity)
	}
}

// Integrate advances pos by one tick of vel.
func Integrate(pos *Position, vel Velocity) {
	pos.X += vel.DX * SpeedScale
	pos.Y += vel.DY * SpeedScale
}
