package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

const (
	tableBlockSize = 64
)

// Membership is the read-only view of a component table used for joins.
type Membership interface {
	Has(id EntityId) bool
	Len() int
	Entities() []EntityId
}

// componentTable is the type-erased side of Table used by World.
type componentTable interface {
	Membership
	Type() reflect.Type
	delete(id EntityId) bool
	insertAny(id EntityId, value any) bool
	pointer(id EntityId) any
	reset()
}

// Table stores components of type T in fixed-size blocks.
//
// A component keeps its slot for as long as it is attached, so pointers
// returned by GetPtr stay valid until the component is removed. Blocks are
// allocated individually and never moved when the table grows.
type Table[T any] struct {
	blocks    []*[tableBlockSize]T
	owners    []EntityId
	freeSlots []int
	nextSlot  int
	index     *intmap.Map[EntityId, int]
	count     int
}

// NewTable creates an empty component table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		index: intmap.New[EntityId, int](256),
	}
}

// Type returns the component type stored in this table.
func (t *Table[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// Insert attaches value to id, replacing any existing component.
// The previous value is returned when one was replaced.
func (t *Table[T]) Insert(id EntityId, value T) (prev T, replaced bool) {
	if slot, ok := t.index.Get(id); ok {
		ptr := t.slotPtr(slot)
		prev = *ptr
		*ptr = value
		return prev, true
	}

	var slot int
	if n := len(t.freeSlots); n > 0 {
		slot = t.freeSlots[n-1]
		t.freeSlots = t.freeSlots[:n-1]
	} else {
		slot = t.nextSlot
		t.nextSlot++
		if slot/tableBlockSize >= len(t.blocks) {
			t.blocks = append(t.blocks, new([tableBlockSize]T))
		}
		t.owners = append(t.owners, 0)
	}

	*t.slotPtr(slot) = value
	t.owners[slot] = id
	t.index.Put(id, slot)
	t.count++
	return prev, false
}

// Remove detaches the component from id and returns it.
func (t *Table[T]) Remove(id EntityId) (T, bool) {
	var zero T
	slot, ok := t.index.Get(id)
	if !ok {
		return zero, false
	}

	ptr := t.slotPtr(slot)
	value := *ptr
	*ptr = zero
	t.owners[slot] = 0
	t.freeSlots = append(t.freeSlots, slot)
	t.index.Del(id)
	t.count--
	return value, true
}

// Get returns a copy of the component attached to id.
func (t *Table[T]) Get(id EntityId) (T, bool) {
	if ptr := t.GetPtr(id); ptr != nil {
		return *ptr, true
	}
	var zero T
	return zero, false
}

// GetPtr returns a pointer to the component attached to id, or nil.
func (t *Table[T]) GetPtr(id EntityId) *T {
	slot, ok := t.index.Get(id)
	if !ok {
		return nil
	}
	return t.slotPtr(slot)
}

// Has reports whether id has a component in this table.
func (t *Table[T]) Has(id EntityId) bool {
	_, ok := t.index.Get(id)
	return ok
}

// Len returns the number of attached components.
func (t *Table[T]) Len() int {
	return t.count
}

// Entities returns the owners of all attached components in slot order.
func (t *Table[T]) Entities() []EntityId {
	out := make([]EntityId, 0, t.count)
	for _, owner := range t.owners {
		if owner != 0 {
			out = append(out, owner)
		}
	}
	return out
}

// Iter yields every attached component together with its owner.
func (t *Table[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for slot, owner := range t.owners {
			if owner == 0 {
				continue
			}
			if !yield(owner, t.slotPtr(slot)) {
				return
			}
		}
	}
}

func (t *Table[T]) slotPtr(slot int) *T {
	return &t.blocks[slot/tableBlockSize][slot%tableBlockSize]
}

func (t *Table[T]) delete(id EntityId) bool {
	_, ok := t.Remove(id)
	return ok
}

func (t *Table[T]) insertAny(id EntityId, value any) bool {
	switch v := value.(type) {
	case T:
		t.Insert(id, v)
	case *T:
		if v == nil {
			return false
		}
		t.Insert(id, *v)
	default:
		return false
	}
	return true
}

func (t *Table[T]) pointer(id EntityId) any {
	if ptr := t.GetPtr(id); ptr != nil {
		return ptr
	}
	return nil
}

func (t *Table[T]) reset() {
	t.blocks = nil
	t.owners = nil
	t.freeSlots = nil
	t.nextSlot = 0
	t.index.Clear()
	t.count = 0
}
