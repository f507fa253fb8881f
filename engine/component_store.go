package engine

import (
	"github.com/lixenwraith/tower-defense/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once per world; pointers remain valid for the world lifetime
type ComponentStore struct {
	// Scene
	Transform *Store[component.TransformComponent]
	Visual    *Store[component.VisualComponent]

	// Combat
	Target   *Store[component.TargetComponent]
	Health   *Store[component.HealthComponent]
	Tower    *Store[component.TowerComponent]
	Bullet   *Store[component.BulletComponent]
	Lifetime *Store[component.LifetimeComponent]

	// Interaction
	BuildSite  *Store[component.BuildSiteComponent]
	Selectable *Store[component.SelectableComponent]
	Button     *Store[component.ButtonComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Visual:    NewStore[component.VisualComponent](),

		Target:   NewStore[component.TargetComponent](),
		Health:   NewStore[component.HealthComponent](),
		Tower:    NewStore[component.TowerComponent](),
		Bullet:   NewStore[component.BulletComponent](),
		Lifetime: NewStore[component.LifetimeComponent](),

		BuildSite:  NewStore[component.BuildSiteComponent](),
		Selectable: NewStore[component.SelectableComponent](),
		Button:     NewStore[component.ButtonComponent](),
	}
}

// all returns every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Transform,
		cs.Visual,
		cs.Target,
		cs.Health,
		cs.Tower,
		cs.Bullet,
		cs.Lifetime,
		cs.BuildSite,
		cs.Selectable,
		cs.Button,
	}
}
