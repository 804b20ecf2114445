package necs

// Registry is the façade over the entity table and the component pool
// directory. It owns every entity record and every pool; all component
// access goes through the package-level generic operations.
type Registry interface {
	Create() Entity
	Destroy(Entity)
	Exists(Entity) bool
	EntityCount() int
	Handle(Entity) Handle
}

// Pool is the type-erased contract every per-type component table satisfies.
// The directory stores heterogeneous pools behind this interface and recovers
// the concrete table when a caller supplies the matching static type.
type Pool interface {
	Remove(Entity) bool
	Contains(Entity) bool
	Len() int
	Empty() bool
}
