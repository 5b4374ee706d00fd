package ecs

import "reflect"

// System represents a behavior that operates on entities with specific components.
// User-defined systems implement this interface and can include Query and Singleton
// fields, which the Scheduler initializes, as well as custom state that persists
// between frames.
type System interface {
	Execute(frame *UpdateFrame)
	Access() Access
}

// Access declares which component and singleton types a system touches.
//
// Reads may be shared freely. Each type may appear in the Writes of at most one
// registered system. Structural lists the tables the system adds to or removes
// from through Commands.
type Access struct {
	Reads      []reflect.Type
	Writes     []reflect.Type
	Structural []reflect.Type
}

// TypeOf returns the reflect.Type of T, for building Access declarations.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

func (a Access) all() []reflect.Type {
	out := make([]reflect.Type, 0, len(a.Reads)+len(a.Writes)+len(a.Structural))
	out = append(out, a.Reads...)
	out = append(out, a.Writes...)
	out = append(out, a.Structural...)
	return out
}
