package necs

import "github.com/rs/zerolog"

// Option configures a registry at construction time.
type Option func(*registry)

// WithLogger attaches a structured logger. Lifecycle and mutation events are
// emitted at debug level; the default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(reg *registry) {
		reg.logger = logger
	}
}

// WithEntityCapacity pre-sizes the entity table for an expected population.
func WithEntityCapacity(capacity int) Option {
	return func(reg *registry) {
		if capacity > 0 && len(reg.entities.records) == 0 {
			reg.entities = newEntityTable(capacity)
		}
	}
}
