package necs

// Handle binds an entity id to the registry that issued it. Component access
// stays on the package-level generic operations (methods cannot take type
// parameters); the handle covers the id-centric calls.
type Handle struct {
	registry Registry
	entity   Entity
}

func (h Handle) ID() Entity {
	return h.entity
}

func (h Handle) Valid() bool {
	return h.registry != nil && h.registry.Exists(h.entity)
}

func (h Handle) Destroy() {
	if h.registry != nil {
		h.registry.Destroy(h.entity)
	}
}
