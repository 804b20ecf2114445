package necs

import "reflect"

// directory owns the mapping from component type to its type-erased pool.
// An entry exists iff the pool is non-empty; empty pools are dropped
// immediately after the removal that drained them.
type directory struct {
	pools map[reflect.Type]Pool
}

func newDirectory() *directory {
	return &directory{
		pools: make(map[reflect.Type]Pool),
	}
}

func (d *directory) lookup(rt reflect.Type) (Pool, bool) {
	p, ok := d.pools[rt]
	return p, ok
}

func (d *directory) insert(rt reflect.Type, p Pool) {
	d.pools[rt] = p
}

func (d *directory) dropIfEmpty(rt reflect.Type) bool {
	p, ok := d.pools[rt]
	if !ok || !p.Empty() {
		return false
	}
	delete(d.pools, rt)
	return true
}

func (d *directory) len() int {
	return len(d.pools)
}
