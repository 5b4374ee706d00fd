package ecs

import "iter"

// Query wraps a View with a per-frame snapshot of its matches.
// Execute captures the matching entities once; iteration afterwards does not
// observe structural changes made later in the frame.
type Query[T any] struct {
	view  *View[T]
	world *World

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query over the given world.
func NewQuery[T any](world *World) *Query[T] {
	q := &Query[T]{}
	q.Init(world)
	return q
}

// Init initializes or re-initializes the Query with a world.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(world *World) {
	q.view = NewView[T](world)
	q.world = world
	q.cacheValid = false
}

// Execute builds the entity and component snapshot for this frame.
// Called automatically by the Scheduler before the owning system runs.
func (q *Query[T]) Execute() {
	q.cachedEntities = q.cachedEntities[:0]
	clear(q.cachedComponents)
	q.cachedComponents = q.cachedComponents[:0]

	for id, item := range q.view.Iter() {
		q.cachedEntities = append(q.cachedEntities, id)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cacheValid = true
}

// Len returns the number of entities captured by the last Execute.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}

// Iter returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}
