/*
Package necs provides a minimal in-memory entity-component registry for games
and simulations.

The registry associates opaque integer entity identifiers with arbitrarily
typed component values. Each component type gets its own associative pool,
created on first use and discarded when its last value is removed. Multi-type
queries intersect pools to enumerate every entity holding a given combination
of components.

Core Concepts:

  - Entity: A unique identifier that represents a simulation object.
  - Component: A plain Go value attached to at most one entity per type.
  - Pool: The per-type table mapping entities to component values.
  - View: A materialized list of entities owning a fixed set of component types.

Basic Usage:

	// Create a registry
	registry := necs.Factory.NewRegistry()

	// Spawn an entity with components
	player := necs.Create2(registry, Position{X: 10, Y: 20}, Velocity{X: 1, Y: 2})

	// Read and mutate single components
	pos := necs.Get[Position](registry, player)
	necs.Patch[Velocity](registry, player).Apply(func(v *Velocity) {
		v.Y -= 2
	})

	// Enumerate every entity holding both components
	for _, row := range necs.View2[Position, Velocity](registry) {
		row.A.X += row.B.X
		row.A.Y += row.B.Y
	}

The registry is single-threaded: every operation runs to completion before
returning and no internal locking is performed. Pointers returned by Get,
Patch, and views remain valid Go memory, but callers should treat them as
stale after any subsequent mutating call against the same registry.
*/
package necs
