package system

import (
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/parameter"
)

// ButtonSystem recomputes button affordability after every currency change of the tick
// Drives visuals only; PurchaseSystem re-checks money at click time
type ButtonSystem struct {
	world  *engine.World
	player *engine.PlayerResource
}

func NewButtonSystem(world *engine.World) engine.System {
	return &ButtonSystem{
		world:  world,
		player: engine.MustGetResource[*engine.PlayerResource](world.ResourceStore),
	}
}

func (s *ButtonSystem) Name() string  { return "button" }
func (s *ButtonSystem) Priority() int { return parameter.PriorityButton }

func (s *ButtonSystem) Update() {
	buttons := s.world.Components.Button
	for _, b := range buttons.GetAllEntities() {
		btn, ok := buttons.GetComponent(b)
		if !ok {
			continue
		}
		affordable := s.player.CanAfford(btn.Cost)
		if btn.Affordable != affordable {
			btn.Affordable = affordable
			buttons.SetComponent(b, btn)
		}
	}
}
