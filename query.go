package necs

// Multi-component operations come as a fixed family of generic functions, one
// per arity. Go has no variadic type parameters, so the family mirrors the
// bounded tuple expansion such registries use elsewhere; compose calls or use
// the single-component operations past arity four.

// Row1 through Row4 pair an entity with pointers to each requested component.
type Row1[A any] struct {
	Entity Entity
	A      *A
}

type Row2[A, B any] struct {
	Entity Entity
	A      *A
	B      *B
}

type Row3[A, B, C any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
}

type Row4[A, B, C, D any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
	D      *D
}

// Create2 spawns one entity carrying both component values, added in argument
// order. Equivalent to Create followed by one Add per component, as a single
// logical operation.
func Create2[A, B any](r Registry, a A, b B) Entity {
	entity := r.Create()
	Add(r, entity, a)
	Add(r, entity, b)
	return entity
}

// Create3 spawns one entity carrying all three component values.
func Create3[A, B, C any](r Registry, a A, b B, c C) Entity {
	entity := r.Create()
	Add(r, entity, a)
	Add(r, entity, b)
	Add(r, entity, c)
	return entity
}

// Create4 spawns one entity carrying all four component values.
func Create4[A, B, C, D any](r Registry, a A, b B, c C, d D) Entity {
	entity := r.Create()
	Add(r, entity, a)
	Add(r, entity, b)
	Add(r, entity, c)
	Add(r, entity, d)
	return entity
}

// Get2 fetches two components for one entity. Each slot is independently nil
// or present; there is no join semantic, only parallel lookups.
func Get2[A, B any](r Registry, entity Entity) (*A, *B) {
	return Get[A](r, entity), Get[B](r, entity)
}

// Get3 fetches three components for one entity.
func Get3[A, B, C any](r Registry, entity Entity) (*A, *B, *C) {
	return Get[A](r, entity), Get[B](r, entity), Get[C](r, entity)
}

// Get4 fetches four components for one entity.
func Get4[A, B, C, D any](r Registry, entity Entity) (*A, *B, *C, *D) {
	return Get[A](r, entity), Get[B](r, entity), Get[C](r, entity), Get[D](r, entity)
}

// View1 returns every entity holding an A, with a pointer to its value. The
// result is a snapshot: later registry mutation does not affect it, and a
// fresh enumeration requires a new call.
func View1[A any](r Registry) []Row1[A] {
	reg := r.(*registry)
	pa := poolOf[A](reg, false)
	if pa == nil {
		return nil
	}
	rows := make([]Row1[A], 0, pa.Len())
	for entity, a := range pa.values {
		rows = append(rows, Row1[A]{Entity: entity, A: a})
	}
	return rows
}

// View2 returns every entity holding both an A and a B. Enumeration is
// driven by A's pool and membership-tested against B's, so listing the most
// selective type first keeps the scan short. If either pool does not exist
// the result is empty: no entity can satisfy a type with zero instances.
func View2[A, B any](r Registry) []Row2[A, B] {
	reg := r.(*registry)
	pa := poolOf[A](reg, false)
	pb := poolOf[B](reg, false)
	if pa == nil || pb == nil {
		return nil
	}
	rows := make([]Row2[A, B], 0, pa.Len())
	for entity, a := range pa.values {
		b, ok := pb.values[entity]
		if !ok {
			continue
		}
		rows = append(rows, Row2[A, B]{Entity: entity, A: a, B: b})
	}
	return rows
}

// View3 returns every entity holding an A, a B, and a C, driven by A's pool.
func View3[A, B, C any](r Registry) []Row3[A, B, C] {
	reg := r.(*registry)
	pa := poolOf[A](reg, false)
	pb := poolOf[B](reg, false)
	pc := poolOf[C](reg, false)
	if pa == nil || pb == nil || pc == nil {
		return nil
	}
	rows := make([]Row3[A, B, C], 0, pa.Len())
	for entity, a := range pa.values {
		b, ok := pb.values[entity]
		if !ok {
			continue
		}
		c, ok := pc.values[entity]
		if !ok {
			continue
		}
		rows = append(rows, Row3[A, B, C]{Entity: entity, A: a, B: b, C: c})
	}
	return rows
}

// View4 returns every entity holding all four component types, driven by A's
// pool.
func View4[A, B, C, D any](r Registry) []Row4[A, B, C, D] {
	reg := r.(*registry)
	pa := poolOf[A](reg, false)
	pb := poolOf[B](reg, false)
	pc := poolOf[C](reg, false)
	pd := poolOf[D](reg, false)
	if pa == nil || pb == nil || pc == nil || pd == nil {
		return nil
	}
	rows := make([]Row4[A, B, C, D], 0, pa.Len())
	for entity, a := range pa.values {
		b, ok := pb.values[entity]
		if !ok {
			continue
		}
		c, ok := pc.values[entity]
		if !ok {
			continue
		}
		d, ok := pd.values[entity]
		if !ok {
			continue
		}
		rows = append(rows, Row4[A, B, C, D]{Entity: entity, A: a, B: b, C: c, D: d})
	}
	return rows
}
