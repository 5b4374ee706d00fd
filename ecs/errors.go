package ecs

import "errors"

var (
	// ErrInvalidEntity is returned when an operation names an entity that is not alive.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrResourceExhausted is returned when the entity identifier space is used up.
	ErrResourceExhausted = errors.New("entity identifiers exhausted")

	// ErrAccessConflict is returned by Scheduler.Register when a system's declared
	// access cannot coexist with the systems already registered.
	ErrAccessConflict = errors.New("conflicting system access")

	// ErrUnregisteredType is returned by Scheduler.Register when a system declares
	// access to a type that is neither a registered component nor a singleton.
	ErrUnregisteredType = errors.New("unregistered component type")
)
