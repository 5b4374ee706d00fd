package ecs_test

import (
	"fmt"
	"reflect"

	"github.com/plus3/coinrush/ecs"
)

// ExampleWorld demonstrates the basic API for managing entities and components.
// Each registered component type lives in its own table; an entity is just an
// id that may have an entry in any number of tables.
func ExampleWorld() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	world := ecs.NewWorld(registry)

	player, _ := world.Spawn(
		Position{X: 10, Y: 20},
		Velocity{DX: 1, DY: 0},
		Health{Current: 100, Max: 100},
	)

	pos := ecs.ReadComponent[Position](world, player)
	fmt.Printf("Player spawned at (%.0f, %.0f)\n", pos.X, pos.Y)

	pos.X = 15
	pos.Y = 25
	fmt.Printf("Player moved to (%.0f, %.0f)\n", pos.X, pos.Y)

	world.Destroy(player)
	fmt.Println("Player destroyed:", !world.Alive(player))

	// Output:
	// Player spawned at (10, 20)
	// Player moved to (15, 25)
	// Player destroyed: true
}

// ExampleWorld_addRemoveComponents shows that adding or removing a component
// only touches that component's table; the entity id never changes.
func ExampleWorld_addRemoveComponents() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	world := ecs.NewWorld(registry)

	entity, _ := world.Spawn(Position{X: 0, Y: 0})
	fmt.Printf("Has velocity: %v\n", world.HasComponent(entity, reflect.TypeFor[Velocity]()))

	world.AddComponent(entity, Velocity{DX: 5, DY: 3})
	vel := ecs.ReadComponent[Velocity](world, entity)
	fmt.Printf("Has velocity: %v (%.0f, %.0f)\n", vel != nil, vel.DX, vel.DY)

	world.RemoveComponent(entity, reflect.TypeFor[Velocity]())
	fmt.Printf("Has velocity: %v\n", world.HasComponent(entity, reflect.TypeFor[Velocity]()))

	// Output:
	// Has velocity: false
	// Has velocity: true (5, 3)
	// Has velocity: false
}
