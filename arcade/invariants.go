package arcade

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/plus3/coinrush/ecs"
)

// ErrInvariant is wrapped by every violation CheckInvariants reports.
var ErrInvariant = errors.New("world invariant violated")

// CheckInvariants verifies the structural rules of an arcade world:
// positioned components imply Position, Collidable implies BoundingBox, and no
// table holds an entry for a dead entity.
func CheckInvariants(w *ecs.World) error {
	var errs []error

	positions := ecs.GetTable[Position](w)
	boxes := ecs.GetTable[BoundingBox](w)

	needPosition := []ecs.Membership{
		ecs.GetTable[Velocity](w),
		boxes,
		ecs.GetTable[Role](w),
		ecs.GetTable[Collidable](w),
	}
	for _, table := range needPosition {
		for _, id := range table.Entities() {
			if !positions.Has(id) {
				errs = append(errs, fmt.Errorf("%w: %s has %s without Position", ErrInvariant, id, tableName(table)))
			}
		}
	}

	for _, id := range ecs.GetTable[Collidable](w).Entities() {
		if !boxes.Has(id) {
			errs = append(errs, fmt.Errorf("%w: %s is Collidable without BoundingBox", ErrInvariant, id))
		}
	}

	for _, t := range w.Registry().Types() {
		table := w.Membership(t)
		for _, id := range table.Entities() {
			if !w.Alive(id) {
				errs = append(errs, fmt.Errorf("%w: %s table holds dead entity %s", ErrInvariant, t, id))
			}
		}
	}

	return errors.Join(errs...)
}

func tableName(m ecs.Membership) string {
	if typed, ok := m.(interface{ Type() reflect.Type }); ok {
		return typed.Type().Name()
	}
	return fmt.Sprintf("%T", m)
}
