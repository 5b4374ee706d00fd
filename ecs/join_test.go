package ecs_test

import (
	"testing"

	"github.com/plus3/coinrush/ecs"
	"github.com/stretchr/testify/assert"
)

type countingMembership struct {
	ecs.Membership
	probes int
}

func (c *countingMembership) Has(id ecs.EntityId) bool {
	c.probes++
	return c.Membership.Has(id)
}

func TestJoin(t *testing.T) {
	t.Run("returns entities present in every set", func(t *testing.T) {
		world := newTestWorld()
		a, _ := world.Spawn(Position{}, Velocity{})
		world.Spawn(Position{})
		c, _ := world.Spawn(Position{}, Velocity{}, Tag("x"))
		world.Spawn(Velocity{})

		got := ecs.Join(ecs.GetTable[Position](world), ecs.GetTable[Velocity](world))
		assert.ElementsMatch(t, []ecs.EntityId{a, c}, got)

		got = ecs.Join(ecs.GetTable[Position](world), ecs.GetTable[Velocity](world), ecs.GetTable[Tag](world))
		assert.Equal(t, []ecs.EntityId{c}, got)
	})

	t.Run("smallest set drives the join", func(t *testing.T) {
		world := newTestWorld()
		for range 100 {
			world.Spawn(Position{})
		}
		tagged, _ := world.Spawn(Position{}, Tag("only"))

		large := &countingMembership{Membership: ecs.GetTable[Position](world)}
		small := &countingMembership{Membership: ecs.GetTable[Tag](world)}

		got := ecs.Join(large, small)
		assert.Equal(t, []ecs.EntityId{tagged}, got)
		assert.Equal(t, 1, large.probes)
		assert.Equal(t, 0, small.probes)
	})

	t.Run("empty inputs", func(t *testing.T) {
		world := newTestWorld()
		world.Spawn(Position{})

		assert.Nil(t, ecs.Join())
		assert.Empty(t, ecs.Join(ecs.GetTable[Position](world), ecs.GetTable[Velocity](world)))
	})
}
