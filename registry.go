package necs

import (
	"github.com/rs/zerolog"
)

var _ Registry = &registry{}

type registry struct {
	next      Entity
	entities  *entityTable
	directory *directory
	schema    *schema
	logger    zerolog.Logger
}

func newRegistry(opts ...Option) *registry {
	reg := &registry{
		next:      1,
		entities:  newEntityTable(0),
		directory: newDirectory(),
		schema:    newSchema(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Create allocates the next entity id and inserts an empty record. Ids are
// strictly increasing for the lifetime of the registry and never reused, so
// Null (0) is never issued.
func (reg *registry) Create() Entity {
	entity := reg.next
	reg.next++
	reg.entities.create(entity)
	reg.logger.Debug().Uint64("entity_id", uint64(entity)).Msg("entity created")
	return entity
}

// Destroy removes the entity from every pool listed in its record, drops any
// pool that ends up empty, then removes the record itself. Destroying an
// unknown entity is a silent no-op.
func (reg *registry) Destroy(entity Entity) {
	record, ok := reg.entities.record(entity)
	if !ok {
		return
	}
	removed := 0
	for rt, erased := range reg.directory.pools {
		bit, known := reg.schema.lookup(rt)
		if !known || !record.ContainsAll(bitMask(bit)) {
			continue
		}
		if !erased.Remove(entity) {
			fatal(RecordDesyncError{Entity: entity, Component: rt})
		}
		reg.directory.dropIfEmpty(rt)
		removed++
	}
	reg.entities.destroy(entity)
	reg.logger.Debug().
		Uint64("entity_id", uint64(entity)).
		Int("components_removed", removed).
		Msg("entity destroyed")
}

// Exists reports membership in the entity table only.
func (reg *registry) Exists(entity Entity) bool {
	return reg.entities.exists(entity)
}

// EntityCount returns the number of live entities.
func (reg *registry) EntityCount() int {
	return len(reg.entities.records)
}

// Handle binds an entity id to this registry for id-centric call sites.
func (reg *registry) Handle(entity Entity) Handle {
	return Handle{registry: reg, entity: entity}
}
