package necs

import "reflect"

// maxComponentTypes bounds how many distinct component types one registry can
// track, matching the width of the record masks.
const maxComponentTypes = 64

// schema assigns each component type a small stable bit index on first use.
// The reflect.Type itself is the process-wide component type identifier; the
// bit index only exists so entity records can be masks.
type schema struct {
	bits  map[reflect.Type]uint32
	types []reflect.Type
}

func newSchema() *schema {
	return &schema{
		bits: make(map[reflect.Type]uint32),
	}
}

// register returns the bit index for rt, assigning the next free one if rt
// has not been seen before.
func (s *schema) register(rt reflect.Type) uint32 {
	if bit, ok := s.bits[rt]; ok {
		return bit
	}
	if len(s.types) >= maxComponentTypes {
		fatal(SchemaOverflowError{Limit: maxComponentTypes, Component: rt})
	}
	bit := uint32(len(s.types))
	s.bits[rt] = bit
	s.types = append(s.types, rt)
	return bit
}

// lookup is the presence-checked form used by read paths; absence means the
// component type has never been added anywhere.
func (s *schema) lookup(rt reflect.Type) (uint32, bool) {
	bit, ok := s.bits[rt]
	return bit, ok
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
