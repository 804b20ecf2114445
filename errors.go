package necs

import (
	"fmt"
	"reflect"

	"github.com/rotisserie/eris"
)

// The registry has no recoverable error paths: absent entities and components
// degrade to no-ops and nil results. The errors below describe corrupted
// internal invariants, which are unreachable through the public API and fatal
// if they ever occur.

type PoolTypeMismatchError struct {
	Component reflect.Type
	Stored    Pool
}

func (e PoolTypeMismatchError) Error() string {
	return fmt.Sprintf("pool stored under %v holds a different element type (%T)", e.Component, e.Stored)
}

type RecordDesyncError struct {
	Entity    Entity
	Component reflect.Type
}

func (e RecordDesyncError) Error() string {
	return fmt.Sprintf("entity %d record lists component %v but its pool has no entry", e.Entity, e.Component)
}

type SchemaOverflowError struct {
	Limit     int
	Component reflect.Type
}

func (e SchemaOverflowError) Error() string {
	return fmt.Sprintf("cannot register %v: component type limit (%d) reached", e.Component, e.Limit)
}

func fatal(err error) {
	panic(eris.ToString(eris.Wrap(err, "registry invariant violated"), true))
}
