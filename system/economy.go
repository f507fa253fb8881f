package system

import (
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
)

// EconomySystem credits the kill reward for each death event
// Runs inside the router slot, before purchases and affordability
type EconomySystem struct {
	world  *engine.World
	player *engine.PlayerResource
}

func NewEconomySystem(world *engine.World) engine.System {
	return &EconomySystem{
		world:  world,
		player: engine.MustGetResource[*engine.PlayerResource](world.ResourceStore),
	}
}

func (s *EconomySystem) Name() string  { return "economy" }
func (s *EconomySystem) Priority() int { return parameter.PriorityDispatch }

func (s *EconomySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTargetDeath}
}

func (s *EconomySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventTargetDeath {
		s.player.Credit(ev.Frame, engine.ReasonKill, parameter.KillReward)
	}
}

// Update implements System interface (event-driven only)
func (s *EconomySystem) Update() {}
