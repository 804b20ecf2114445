package necs

// Scope is a short-lived exclusive handle over one component value, produced
// by Patch. It is the sole entry point for in-place mutation; Replace is
// defined in terms of it. While a scope is live no other access to the same
// registry should be made — a caller discipline, not an enforced lock.
type Scope[T any] struct {
	reg    *registry
	entity Entity
	value  *T
}

// Patch locates the entity's T value and wraps it in a Scope. The scope is
// empty when the entity does not exist or lacks a T, in which case Apply
// degrades to a no-op.
func Patch[T any](r Registry, entity Entity) Scope[T] {
	reg := r.(*registry)
	scope := Scope[T]{reg: reg, entity: entity}
	if !reg.entities.exists(entity) {
		return scope
	}
	if concrete := poolOf[T](reg, false); concrete != nil {
		scope.value = concrete.values[entity]
	}
	return scope
}

// Apply invokes mutate with exclusive access to the component value if the
// scope holds one, returning whether the mutator ran. A successful apply is
// where a change-notification mechanism would record the mutation; until a
// subscriber model exists it is only surfaced as a debug event.
func (s Scope[T]) Apply(mutate func(*T)) bool {
	if s.value == nil || mutate == nil {
		return false
	}
	mutate(s.value)
	s.reg.logger.Debug().
		Uint64("entity_id", uint64(s.entity)).
		Str("component", typeName[T]()).
		Msg("component patched")
	return true
}
