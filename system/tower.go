package system

import (
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/vmath"
)

// TowerSystem ticks tower cadence and fires at the nearest target in range
// A cadence expiry with no candidate is a skipped shot, the timer keeps repeating
type TowerSystem struct {
	world   *engine.World
	spawner *Spawner
}

func NewTowerSystem(world *engine.World) engine.System {
	return &TowerSystem{
		world:   world,
		spawner: NewSpawner(world),
	}
}

func (s *TowerSystem) Name() string  { return "tower" }
func (s *TowerSystem) Priority() int { return parameter.PriorityTower }

func (s *TowerSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	towers := s.world.Components.Tower

	for _, e := range towers.GetAllEntities() {
		tower, ok := towers.GetComponent(e)
		if !ok {
			continue
		}
		tower.Cadence.Tick(dt)
		towers.SetComponent(e, tower)

		if !tower.Cadence.JustFinished() {
			continue
		}

		towerPos, ok := s.world.Scene.WorldPosition(e)
		if !ok {
			continue
		}
		muzzle := vmath.V3FAdd(towerPos, tower.MuzzleOffset)

		target, targetPos, found := s.nearestTarget(muzzle, tower.Range)
		if !found {
			continue
		}

		bullet := s.spawner.SpawnBullet(e, tower, vmath.V3FSub(targetPos, muzzle))
		s.world.PushEvent(event.EventBulletFired, &event.BulletFiredPayload{
			Tower:  e,
			Bullet: bullet,
			Target: target,
			Kind:   tower.Kind,
		})
	}
}

// nearestTarget returns the closest target strictly inside radius of origin
// Ties keep the first in iteration order
func (s *TowerSystem) nearestTarget(origin vmath.Vec3F, radius float64) (core.Entity, vmath.Vec3F, bool) {
	best := core.NoEntity
	var bestPos vmath.Vec3F
	bestDist := radius

	for _, e := range s.world.Components.Target.GetAllEntities() {
		pos, ok := s.world.Scene.WorldPosition(e)
		if !ok {
			continue
		}
		if d := vmath.V3FDistance(pos, origin); d < bestDist {
			best, bestPos, bestDist = e, pos, d
		}
	}
	return best, bestPos, !best.IsZero()
}
