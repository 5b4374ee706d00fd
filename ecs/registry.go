package ecs

import (
	"fmt"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each World has its own ComponentRegistry, allowing multiple independent ECS
// instances to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentTable
	order     []reflect.Type
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentTable),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic(fmt.Sprintf("ecs: component %s must be a value type", t))
	}
	if _, exists := r.factories[t]; exists {
		return
	}
	r.factories[t] = func() componentTable {
		return NewTable[T]()
	}
	r.order = append(r.order, t)
}

// Registered reports whether t has been registered as a component type.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

// Types returns the registered component types in registration order.
func (r *ComponentRegistry) Types() []reflect.Type {
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentTable {
	return r.factories[t]
}
