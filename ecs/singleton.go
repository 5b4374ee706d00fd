package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton provides efficient access to a single component instance
// that is not associated with any entity. Use this for frame-wide resources
// such as input state or configuration.
type Singleton[T any] struct {
	world         *World
	componentPtr  unsafe.Pointer
	componentType reflect.Type
}

// NewSingleton creates a new Singleton accessor for the given world.
// If the singleton doesn't exist yet it is created from initializer, or the
// zero value when no initializer is given. The singleton exists after the call.
func NewSingleton[T any](world *World, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	entry := world.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		world.AddSingleton(value)
		entry = world.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		world:         world,
		componentPtr:  entry.dataPtr,
		componentType: componentType,
	}
}

// Init initializes the Singleton with a world reference.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(world *World) {
	s.world = world
	s.componentType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns a pointer to the singleton component.
// Returns nil if the singleton has not been added to the world.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	if s.componentPtr == nil {
		return nil
	}
	return (*T)(s.componentPtr)
}

// Exists returns true if the singleton component has been added to the world
func (s *Singleton[T]) Exists() bool {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return s.componentPtr != nil
}

// updateCache refreshes the cached pointer from the world
func (s *Singleton[T]) updateCache() {
	if s.world == nil {
		return
	}
	if entry := s.world.getSingletonEntry(s.componentType); entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}
