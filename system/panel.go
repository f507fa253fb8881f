package system

import (
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/parameter"
)

// PanelSystem shows one purchase button per tower kind while any build site is selected
// Buttons are spawned not affordable; ButtonSystem fills the flag in the same tick
type PanelSystem struct {
	world   *engine.World
	spawner *Spawner
}

func NewPanelSystem(world *engine.World) engine.System {
	return &PanelSystem{
		world:   world,
		spawner: NewSpawner(world),
	}
}

func (s *PanelSystem) Name() string  { return "panel" }
func (s *PanelSystem) Priority() int { return parameter.PriorityPanel }

func (s *PanelSystem) Update() {
	selected := s.anySelected()
	buttons := s.world.Components.Button

	switch {
	case selected && buttons.CountEntities() == 0:
		for slot, kind := range core.AllTowerKinds() {
			s.spawner.SpawnButton(kind, slot)
		}
	case !selected && buttons.CountEntities() > 0:
		for _, b := range buttons.GetAllEntities() {
			s.world.DestroyEntity(b)
		}
	}
}

func (s *PanelSystem) anySelected() bool {
	for _, marker := range s.world.Components.BuildSite.GetAllEntities() {
		if sel, ok := s.world.Components.Selectable.GetComponent(marker); ok && sel.Selected {
			return true
		}
	}
	return false
}
