package necs

import (
	"github.com/TheBitDrifter/mask"
)

// Entity is an opaque identifier used as a key into component pools. Entities
// carry no data themselves.
type Entity uint64

// Null is the reserved invalid entity. It is never issued by a registry and
// never present in the entity table.
const Null Entity = 0

// entityTable maps each live entity to the bitmask of component types it
// owns. Set membership in the mask, not the pools, answers "does entity E
// have component T"; the two are kept in sync by the registry.
type entityTable struct {
	records map[Entity]mask.Mask
}

func newEntityTable(capacity int) *entityTable {
	return &entityTable{
		records: make(map[Entity]mask.Mask, capacity),
	}
}

func (t *entityTable) create(entity Entity) {
	t.records[entity] = mask.Mask{}
}

func (t *entityTable) destroy(entity Entity) {
	delete(t.records, entity)
}

func (t *entityTable) exists(entity Entity) bool {
	_, ok := t.records[entity]
	return ok
}

func (t *entityTable) record(entity Entity) (mask.Mask, bool) {
	record, ok := t.records[entity]
	return record, ok
}

func (t *entityTable) owns(entity Entity, bit uint32) bool {
	record, ok := t.records[entity]
	if !ok {
		return false
	}
	return record.ContainsAll(bitMask(bit))
}

// mark and unmark assume the entity exists; callers check first.
func (t *entityTable) mark(entity Entity, bit uint32) {
	record := t.records[entity]
	record.Mark(bit)
	t.records[entity] = record
}

func (t *entityTable) unmark(entity Entity, bit uint32) {
	record := t.records[entity]
	record.Unmark(bit)
	t.records[entity] = record
}

func bitMask(bit uint32) mask.Mask {
	var m mask.Mask
	m.Mark(bit)
	return m
}
