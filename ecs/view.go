package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components.
// The type T should be a struct with embedded or named pointer fields for each component type.
// Named fields can be marked as optional using the `ecs:"optional"` struct tag, and a
// field of type EntityId receives the id of the matched entity.
type View[T any] struct {
	world    *World
	fields   []viewField
	idFields []uintptr
}

type viewField struct {
	table    componentTable
	offset   uintptr
	optional bool
}

// NewView creates a new view for the given struct type.
// Embedded fields are always required.
func NewView[T any](world *World) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{world: world}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idFields = append(v.idFields, field.Offset)
			continue
		}

		if field.Type.Kind() != reflect.Pointer {
			panic("View struct fields must be pointer types or EntityId: " + field.Name)
		}

		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}

		v.fields = append(v.fields, viewField{
			table:    world.mustTable(field.Type.Elem()),
			offset:   field.Offset,
			optional: isOptional,
		})
	}

	return v
}

// Fill populates the provided struct pointer with component data for the given entity.
// Returns false if the entity is dead or missing any required components.
// Optional components are set to nil if not present.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.world.Alive(id) {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), id)
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Matches returns the live entities carrying every required component.
func (v *View[T]) Matches() []EntityId {
	required := make([]Membership, 0, len(v.fields))
	for _, f := range v.fields {
		if !f.optional {
			required = append(required, f.table)
		}
	}
	if len(required) == 0 {
		return v.world.Entities()
	}
	return Join(required...)
}

// Iter returns an iterator over all entities that have all the required components for this view.
// Optional components are set to nil if not present.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)

		for _, id := range v.Matches() {
			if !v.populate(resultPtr, id) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn creates a new entity with components copied from the non-nil fields of data.
func (v *View[T]) Spawn(data T) (EntityId, error) {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.fields))
	for _, f := range v.fields {
		componentPtr := *(*unsafe.Pointer)(unsafe.Add(structPtr, f.offset))
		if componentPtr == nil {
			if !f.optional {
				panic("required component is nil in View.Spawn")
			}
			continue
		}
		component := reflect.NewAt(f.table.Type(), componentPtr).Elem().Interface()
		components = append(components, component)
	}

	return v.world.Spawn(components...)
}

func (v *View[T]) populate(resultPtr unsafe.Pointer, id EntityId) bool {
	for _, f := range v.fields {
		fieldPtr := unsafe.Add(resultPtr, f.offset)

		component := f.table.pointer(id)
		if component == nil {
			if !f.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// extract the pointer word from the interface value
		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}

	for _, offset := range v.idFields {
		*(*EntityId)(unsafe.Add(resultPtr, offset)) = id
	}
	return true
}
