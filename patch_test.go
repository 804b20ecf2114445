package necs

import "testing"

func TestPatchMutatesInPlace(t *testing.T) {
	registry := Factory.NewRegistry()
	entity := registry.Create()
	Add(registry, entity, Velocity{DX: -50, DY: -100})

	applied := Patch[Velocity](registry, entity).Apply(func(vel *Velocity) {
		vel.DY -= 20
	})
	if !applied {
		t.Fatal("Apply() = false for an owned component")
	}
	if got := Get[Velocity](registry, entity); got == nil || *got != (Velocity{DX: -50, DY: -120}) {
		t.Errorf("Velocity after patch = %v, want {-50 -120}", got)
	}
}

func TestPatchAbsentComponent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(Registry) Entity
	}{
		{
			name:  "Missing entity",
			setup: func(r Registry) Entity { return 42 },
		},
		{
			name:  "Entity without the component",
			setup: func(r Registry) Entity { return r.Create() },
		},
		{
			name: "Component removed before patch",
			setup: func(r Registry) Entity {
				entity := r.Create()
				Add(r, entity, Velocity{DX: 1})
				Remove[Velocity](r, entity)
				return entity
			},
		},
		{
			name: "Entity destroyed before patch",
			setup: func(r Registry) Entity {
				entity := r.Create()
				Add(r, entity, Velocity{DX: 1})
				r.Destroy(entity)
				return entity
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := Factory.NewRegistry()
			entity := tt.setup(registry)

			ran := false
			applied := Patch[Velocity](registry, entity).Apply(func(*Velocity) {
				ran = true
			})
			if applied {
				t.Error("Apply() = true for an absent component")
			}
			if ran {
				t.Error("mutator ran for an absent component")
			}
		})
	}
}

func TestPatchNilMutator(t *testing.T) {
	registry := Factory.NewRegistry()
	entity := registry.Create()
	Add(registry, entity, Velocity{DX: 1})

	if Patch[Velocity](registry, entity).Apply(nil) {
		t.Error("Apply(nil) = true")
	}
	if got := Get[Velocity](registry, entity); got == nil || *got != (Velocity{DX: 1}) {
		t.Errorf("Velocity changed by Apply(nil): %v", got)
	}
}

// Replace is defined through the patch mechanism; the two must agree on
// presence semantics.
func TestReplaceAgreesWithPatch(t *testing.T) {
	registry := Factory.NewRegistry()
	entity := registry.Create()

	if Replace(registry, entity, Velocity{DX: 9}) != Patch[Velocity](registry, entity).Apply(func(*Velocity) {}) {
		t.Error("Replace and Patch disagree on an absent component")
	}

	Add(registry, entity, Velocity{DX: 1})
	if !Replace(registry, entity, Velocity{DX: 9}) {
		t.Error("Replace() = false for an owned component")
	}
	if got := Get[Velocity](registry, entity); got == nil || *got != (Velocity{DX: 9}) {
		t.Errorf("Velocity after Replace = %v, want {9 0}", got)
	}
}
