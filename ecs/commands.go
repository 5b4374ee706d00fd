package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

type commandKind uint8

const (
	commandSpawn commandKind = iota
	commandDestroy
	commandAdd
	commandRemove
	commandDefer
)

type command struct {
	kind       commandKind
	entity     EntityId
	components []any
	compType   reflect.Type
	fn         func(*World) error
}

// Commands buffers deferred world mutations. Operations are applied by Flush
// in the order they were recorded, so systems never change the set of live
// entities while they iterate.
type Commands struct {
	ops []command
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.ops = append(c.ops, command{kind: commandSpawn, components: components})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(entity EntityId) {
	c.ops = append(c.ops, command{kind: commandDestroy, entity: entity})
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.ops = append(c.ops, command{kind: commandAdd, entity: entity, components: []any{component}})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.ops = append(c.ops, command{kind: commandRemove, entity: entity, compType: compType})
}

// Defer queues a function that runs against the world during Flush.
// Returning an error wrapping ErrInvalidEntity skips the operation; any other
// error aborts the flush.
func (c *Commands) Defer(fn func(w *World) error) {
	c.ops = append(c.ops, command{kind: commandDefer, fn: fn})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.ops)
}

// Flush applies all queued operations to the world in recording order and resets the buffer.
//
// Operations that name a dead entity are skipped and counted. Any other failure,
// such as ErrResourceExhausted from a spawn, stops the flush and is returned; the
// remaining operations are discarded.
func (c *Commands) Flush(world *World) (skipped int, err error) {
	defer func() {
		clear(c.ops)
		c.ops = c.ops[:0]
	}()

	for i := range c.ops {
		opErr := c.apply(world, &c.ops[i])
		switch {
		case opErr == nil:
		case errors.Is(opErr, ErrInvalidEntity):
			skipped++
		default:
			return skipped, fmt.Errorf("flush command %d: %w", i, opErr)
		}
	}
	return skipped, nil
}

func (c *Commands) apply(world *World, op *command) error {
	switch op.kind {
	case commandSpawn:
		_, err := world.Spawn(op.components...)
		return err
	case commandDestroy:
		return world.Destroy(op.entity)
	case commandAdd:
		return world.AddComponent(op.entity, op.components[0])
	case commandRemove:
		if !world.Alive(op.entity) {
			return fmt.Errorf("remove %s from %s: %w", op.compType, op.entity, ErrInvalidEntity)
		}
		world.RemoveComponent(op.entity, op.compType)
		return nil
	case commandDefer:
		return op.fn(world)
	}
	return nil
}
