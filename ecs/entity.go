package ecs

import (
	"fmt"
	"iter"
	"math"
)

// EntityId encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits).
// The zero value never names a live entity.
type EntityId uint64

// NewEntityId creates an EntityId from a slot generation and slot index
func NewEntityId(generation uint32, index uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

func (e EntityId) String() string {
	return fmt.Sprintf("%d:%d", e.Index(), e.Generation())
}

// DefaultEntityLimit is the number of slots an EntityStore hands out before
// Create reports ErrResourceExhausted.
const DefaultEntityLimit = math.MaxUint32

// EntityStore allocates and releases entity identifiers.
//
// Released slots are recycled with a bumped generation, so an identifier value
// is never handed out twice. A slot whose generation is exhausted is retired.
type EntityStore struct {
	generations []uint32
	alive       []bool
	free        []uint32
	limit       uint32
	live        int

	// creation order; may still hold released ids until the next compaction
	order []EntityId
	stale int
}

// NewEntityStore creates an entity store with the default slot limit.
func NewEntityStore() *EntityStore {
	return NewEntityStoreWithLimit(DefaultEntityLimit)
}

// NewEntityStoreWithLimit creates an entity store that hands out at most limit slots.
func NewEntityStoreWithLimit(limit uint32) *EntityStore {
	return &EntityStore{limit: limit}
}

// Create allocates a fresh entity identifier.
func (s *EntityStore) Create() (EntityId, error) {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		if uint64(len(s.generations)) >= uint64(s.limit) {
			return 0, fmt.Errorf("%w: all %d slots in use", ErrResourceExhausted, s.limit)
		}
		index = uint32(len(s.generations))
		s.generations = append(s.generations, 0)
		s.alive = append(s.alive, false)
	}

	s.generations[index]++
	s.alive[index] = true
	s.live++

	id := NewEntityId(s.generations[index], index)
	s.order = append(s.order, id)
	return id, nil
}

// Destroy releases an entity identifier. Releasing an identifier that is not
// alive returns ErrInvalidEntity.
func (s *EntityStore) Destroy(id EntityId) error {
	if !s.Alive(id) {
		return fmt.Errorf("%w: %s", ErrInvalidEntity, id)
	}

	index := id.Index()
	s.alive[index] = false
	s.live--
	if s.generations[index] != math.MaxUint32 {
		s.free = append(s.free, index)
	}

	s.stale++
	if s.stale > 64 && s.stale*2 > len(s.order) {
		s.compact()
	}
	return nil
}

// Alive reports whether id names a live entity.
func (s *EntityStore) Alive(id EntityId) bool {
	index := id.Index()
	if id == 0 || int(index) >= len(s.generations) {
		return false
	}
	return s.alive[index] && s.generations[index] == id.Generation()
}

// Len returns the number of live entities.
func (s *EntityStore) Len() int {
	return s.live
}

// Iter yields all live entities in creation order.
func (s *EntityStore) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range s.order {
			if !s.Alive(id) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

func (s *EntityStore) compact() {
	writePos := 0
	for _, id := range s.order {
		if s.Alive(id) {
			s.order[writePos] = id
			writePos++
		}
	}
	clear(s.order[writePos:])
	s.order = s.order[:writePos]
	s.stale = 0
}
