package system

import (
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
)

// HealthSystem is the death pass: every entity at or below zero health is destroyed
// and exactly one EventTargetDeath is pushed for it
type HealthSystem struct {
	world *engine.World
}

func NewHealthSystem(world *engine.World) engine.System {
	return &HealthSystem{world: world}
}

func (s *HealthSystem) Name() string  { return "health" }
func (s *HealthSystem) Priority() int { return parameter.PriorityHealth }

func (s *HealthSystem) Update() {
	health := s.world.Components.Health

	for _, e := range health.GetAllEntities() {
		hp, ok := health.GetComponent(e)
		if !ok || hp.Value > 0 {
			continue
		}

		pos, _ := s.world.Scene.WorldPosition(e)
		if !s.world.DestroyEntity(e) {
			continue
		}
		s.world.PushEvent(event.EventTargetDeath, &event.TargetDeathPayload{
			Entity:   e,
			Position: pos,
		})
	}
}
