package ecs

import (
	"fmt"
	"reflect"
	"unsafe"
)

// World owns the entity store, one component table per registered type and
// the singleton components.
type World struct {
	registry *ComponentRegistry
	entities *EntityStore

	tables     map[reflect.Type]componentTable
	tableOrder []componentTable

	singletons     map[reflect.Type]*singletonEntry
	singletonOrder []reflect.Type
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// WorldOption configures a World.
type WorldOption func(*World)

// WithEntityLimit caps the number of entity slots the world hands out.
func WithEntityLimit(limit uint32) WorldOption {
	return func(w *World) {
		w.entities = NewEntityStoreWithLimit(limit)
	}
}

// NewWorld creates a new world with the given component registry
func NewWorld(registry *ComponentRegistry, opts ...WorldOption) *World {
	w := &World{
		registry:   registry,
		entities:   NewEntityStore(),
		tables:     make(map[reflect.Type]componentTable),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
	for _, opt := range opts {
		opt(w)
	}
	for _, t := range registry.Types() {
		w.table(t)
	}
	return w
}

// Registry returns the component registry backing this world.
func (w *World) Registry() *ComponentRegistry {
	return w.registry
}

// Spawn creates a new entity with the provided components.
func (w *World) Spawn(components ...any) (EntityId, error) {
	tables := make([]componentTable, len(components))
	for i, comp := range components {
		tables[i] = w.mustTable(componentType(comp))
	}

	id, err := w.entities.Create()
	if err != nil {
		return 0, err
	}

	for i, comp := range components {
		if !tables[i].insertAny(id, comp) {
			panic(fmt.Sprintf("ecs: cannot store %T in %s table", comp, tables[i].Type()))
		}
	}
	return id, nil
}

// Destroy removes every component attached to id and releases the identifier.
func (w *World) Destroy(id EntityId) error {
	if !w.entities.Alive(id) {
		return fmt.Errorf("destroy %s: %w", id, ErrInvalidEntity)
	}
	for _, table := range w.tableOrder {
		table.delete(id)
	}
	return w.entities.Destroy(id)
}

// Alive reports whether id names a live entity.
func (w *World) Alive(id EntityId) bool {
	return w.entities.Alive(id)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.Len()
}

// Entities returns all live entities in creation order.
func (w *World) Entities() []EntityId {
	out := make([]EntityId, 0, w.entities.Len())
	for id := range w.entities.Iter() {
		out = append(out, id)
	}
	return out
}

// AddComponent attaches component to id, replacing an existing component of the same type.
func (w *World) AddComponent(id EntityId, component any) error {
	if !w.entities.Alive(id) {
		return fmt.Errorf("add %T to %s: %w", component, id, ErrInvalidEntity)
	}
	table := w.mustTable(componentType(component))
	if !table.insertAny(id, component) {
		panic(fmt.Sprintf("ecs: cannot store %T in %s table", component, table.Type()))
	}
	return nil
}

// RemoveComponent detaches the component of the given type from id.
// It reports whether a component was removed.
func (w *World) RemoveComponent(id EntityId, compType reflect.Type) bool {
	table, ok := w.tables[compType]
	if !ok {
		return false
	}
	return table.delete(id)
}

// GetComponent returns a pointer to the component of the given type attached to id, or nil.
func (w *World) GetComponent(id EntityId, compType reflect.Type) any {
	table, ok := w.tables[compType]
	if !ok {
		return nil
	}
	return table.pointer(id)
}

// HasComponent checks if an entity has a specific component type
func (w *World) HasComponent(id EntityId, compType reflect.Type) bool {
	table, ok := w.tables[compType]
	if !ok {
		return false
	}
	return table.Has(id)
}

// ComponentTypes returns the types of all components attached to id in registration order.
func (w *World) ComponentTypes(id EntityId) []reflect.Type {
	var types []reflect.Type
	for _, table := range w.tableOrder {
		if table.Has(id) {
			types = append(types, table.Type())
		}
	}
	return types
}

// Membership returns the table for compType as a join input, or nil if the type is not registered.
func (w *World) Membership(compType reflect.Type) Membership {
	table, ok := w.tables[compType]
	if !ok {
		return nil
	}
	return table
}

// Knows reports whether t is a registered component type or an existing singleton.
func (w *World) Knows(t reflect.Type) bool {
	if w.registry.Registered(t) {
		return true
	}
	_, ok := w.singletons[t]
	return ok
}

// AddSingleton stores value as the singleton of its type. An existing singleton
// of the same type is overwritten in place, so cached pointers remain valid.
func (w *World) AddSingleton(value any) {
	t := componentType(value)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if entry, ok := w.singletons[t]; ok {
		entry.value.Elem().Set(v)
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	w.singletons[t] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
	w.singletonOrder = append(w.singletonOrder, t)
}

// GetSingleton returns a pointer to the singleton of the given type, or nil.
func (w *World) GetSingleton(t reflect.Type) any {
	entry := w.getSingletonEntry(t)
	if entry == nil {
		return nil
	}
	return entry.value.Interface()
}

// SingletonTypes returns the types of all singletons in insertion order.
func (w *World) SingletonTypes() []reflect.Type {
	out := make([]reflect.Type, len(w.singletonOrder))
	copy(out, w.singletonOrder)
	return out
}

func (w *World) getSingletonEntry(t reflect.Type) *singletonEntry {
	return w.singletons[t]
}

func (w *World) table(t reflect.Type) componentTable {
	if table, ok := w.tables[t]; ok {
		return table
	}
	factory := w.registry.getFactory(t)
	if factory == nil {
		return nil
	}
	table := factory()
	w.tables[t] = table
	w.tableOrder = append(w.tableOrder, table)
	return table
}

func (w *World) mustTable(t reflect.Type) componentTable {
	table := w.table(t)
	if table == nil {
		panic(fmt.Sprintf("ecs: component type %s is not registered", t))
	}
	return table
}

// GetTable returns the typed table for T. It panics if T is not registered.
func GetTable[T any](w *World) *Table[T] {
	return w.mustTable(reflect.TypeFor[T]()).(*Table[T])
}

// componentType returns the value type of a component, dereferencing pointers.
func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("ecs: nil component")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to the component attached to entityId, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	ptr, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return ptr
}
