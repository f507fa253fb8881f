package system

import (
	"sync/atomic"

	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/status"
)

// LifetimeSystem destroys entities whose Once timer expired
// Bullets already destroyed by impact this tick no longer carry the component
type LifetimeSystem struct {
	world *engine.World

	statExpired *atomic.Int64
}

func NewLifetimeSystem(world *engine.World) engine.System {
	return &LifetimeSystem{
		world:       world,
		statExpired: world.Resources.Status.Ints.Get(status.BulletExpired),
	}
}

func (s *LifetimeSystem) Name() string  { return "lifetime" }
func (s *LifetimeSystem) Priority() int { return parameter.PriorityLifetime }

func (s *LifetimeSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	lifetimes := s.world.Components.Lifetime

	for _, e := range lifetimes.GetAllEntities() {
		lt, ok := lifetimes.GetComponent(e)
		if !ok {
			continue
		}
		if !lt.Timer.Tick(dt) {
			lifetimes.SetComponent(e, lt)
			continue
		}

		isBullet := s.world.Components.Bullet.HasComponent(e)
		if s.world.DestroyEntity(e) && isBullet {
			s.statExpired.Add(1)
		}
	}
}
