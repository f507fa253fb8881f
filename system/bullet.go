package system

import (
	"sync/atomic"

	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/status"
	"github.com/lixenwraith/tower-defense/vmath"
)

// BulletSystem moves bullets and applies contact damage
// Damage lands here; deaths resolve later in HealthSystem, so several hits on one target still kill once
type BulletSystem struct {
	world *engine.World

	statHit *atomic.Int64
}

func NewBulletSystem(world *engine.World) engine.System {
	return &BulletSystem{
		world:   world,
		statHit: world.Resources.Status.Ints.Get(status.BulletHit),
	}
}

func (s *BulletSystem) Name() string  { return "bullet" }
func (s *BulletSystem) Priority() int { return parameter.PriorityBullet }

func (s *BulletSystem) Update() {
	dt := s.world.Resources.Time.Delta()
	bullets := s.world.Components.Bullet

	for _, e := range bullets.GetAllEntities() {
		bullet, ok := bullets.GetComponent(e)
		if !ok {
			continue
		}

		step := vmath.V3FScale(vmath.V3FNormalize(bullet.Direction), bullet.Speed*dt)
		s.world.Scene.Translate(e, step)

		pos, ok := s.world.Scene.WorldPosition(e)
		if !ok {
			continue
		}
		if s.impact(pos) {
			s.world.DestroyEntity(e)
			s.statHit.Add(1)
		}
	}
}

// impact damages the first damageable target within contact radius of pos
// At most one target per bullet per tick
func (s *BulletSystem) impact(pos vmath.Vec3F) bool {
	health := s.world.Components.Health
	for _, t := range s.world.Components.Target.GetAllEntities() {
		tpos, ok := s.world.Scene.WorldPosition(t)
		if !ok {
			continue
		}
		if vmath.V3FDistance(pos, tpos) >= parameter.BulletContactRadius {
			continue
		}
		hp, ok := health.GetComponent(t)
		if !ok {
			continue
		}
		hp.Value -= parameter.BulletDamage
		health.SetComponent(t, hp)
		return true
	}
	return false
}
