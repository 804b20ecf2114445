package necs

import "reflect"

var _ Pool = &pool[any]{}

// pool is the concrete per-type component table: an associative mapping from
// entity to a stable pointer holding that type's value. Pointer storage keeps
// component addresses valid across unrelated map growth, so Get, Patch, and
// view rows can hand out direct references.
type pool[T any] struct {
	values map[Entity]*T
}

func newPool[T any]() *pool[T] {
	return &pool[T]{
		values: make(map[Entity]*T),
	}
}

func (p *pool[T]) Remove(entity Entity) bool {
	if _, ok := p.values[entity]; !ok {
		return false
	}
	delete(p.values, entity)
	return true
}

func (p *pool[T]) Contains(entity Entity) bool {
	_, ok := p.values[entity]
	return ok
}

func (p *pool[T]) Len() int {
	return len(p.values)
}

func (p *pool[T]) Empty() bool {
	return len(p.values) == 0
}

func (p *pool[T]) insert(entity Entity, value T) *T {
	stored := value
	p.values[entity] = &stored
	return &stored
}

// poolOf recovers the concrete pool for T from the directory. With create
// set, a missing pool is built and registered on the spot (the add path);
// otherwise absence is a normal condition and nil is returned. The directory
// keys pools by their element type, so the downcast cannot fail unless that
// invariant has been corrupted, in which case the operation aborts.
func poolOf[T any](reg *registry, create bool) *pool[T] {
	rt := reflect.TypeFor[T]()
	erased, ok := reg.directory.lookup(rt)
	if !ok {
		if !create {
			return nil
		}
		created := newPool[T]()
		reg.directory.insert(rt, created)
		return created
	}
	concrete, ok := erased.(*pool[T])
	if !ok {
		fatal(PoolTypeMismatchError{Component: rt, Stored: erased})
	}
	return concrete
}
