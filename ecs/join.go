package ecs

import (
	"cmp"
	"slices"
)

// Join returns the entities present in every given set.
//
// The smallest set drives the join and the others are probed, so the cost is
// proportional to the smallest set. Results follow the driving set's slot order.
func Join(sets ...Membership) []EntityId {
	if len(sets) == 0 {
		return nil
	}

	ordered := slices.Clone(sets)
	slices.SortStableFunc(ordered, func(a, b Membership) int {
		return cmp.Compare(a.Len(), b.Len())
	})

	candidates := ordered[0].Entities()
	result := candidates[:0]
	for _, id := range candidates {
		if hasAll(ordered[1:], id) {
			result = append(result, id)
		}
	}
	return result
}

func hasAll(sets []Membership, id EntityId) bool {
	for _, set := range sets {
		if !set.Has(id) {
			return false
		}
	}
	return true
}
