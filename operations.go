package necs

import "reflect"

// Add attaches value to the entity if the entity exists and does not already
// own a component of type T, creating T's pool on first use. When the entity
// already owns a T the call is an idempotent no-op and the existing value is
// preserved; use Replace to overwrite. Returns true only when a value was
// inserted.
func Add[T any](r Registry, entity Entity, value T) bool {
	reg := r.(*registry)
	if !reg.entities.exists(entity) {
		return false
	}
	rt := reflect.TypeFor[T]()
	bit := reg.schema.register(rt)
	if reg.entities.owns(entity, bit) {
		return false
	}
	poolOf[T](reg, true).insert(entity, value)
	reg.entities.mark(entity, bit)
	reg.logger.Debug().
		Uint64("entity_id", uint64(entity)).
		Str("component", rt.String()).
		Msg("component added")
	return true
}

// Remove detaches the entity's T value if present, dropping T's pool when the
// entity was its last holder. Returns true only when a value was removed.
func Remove[T any](r Registry, entity Entity) bool {
	reg := r.(*registry)
	rt := reflect.TypeFor[T]()
	bit, known := reg.schema.lookup(rt)
	if !known || !reg.entities.owns(entity, bit) {
		return false
	}
	concrete := poolOf[T](reg, false)
	if concrete == nil || !concrete.Remove(entity) {
		fatal(RecordDesyncError{Entity: entity, Component: rt})
	}
	reg.directory.dropIfEmpty(rt)
	reg.entities.unmark(entity, bit)
	reg.logger.Debug().
		Uint64("entity_id", uint64(entity)).
		Str("component", rt.String()).
		Msg("component removed")
	return true
}

// Replace overwrites the entity's existing T value. Unlike Add it never
// inserts: when the entity lacks a T the call is a no-op and returns false.
func Replace[T any](r Registry, entity Entity, value T) bool {
	return Patch[T](r, entity).Apply(func(current *T) {
		*current = value
	})
}

// Get returns a pointer to the entity's T value, or nil when the entity does
// not exist or does not own a T. Read-only in effect; the pointer should be
// treated as stale after any later mutating call.
func Get[T any](r Registry, entity Entity) *T {
	reg := r.(*registry)
	if !reg.entities.exists(entity) {
		return nil
	}
	concrete := poolOf[T](reg, false)
	if concrete == nil {
		return nil
	}
	return concrete.values[entity]
}
