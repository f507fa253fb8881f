package system

import (
	"github.com/lixenwraith/tower-defense/asset"
	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/vmath"
)

// Render layers, higher draws on top
const (
	LayerSite = iota
	LayerTarget
	LayerTower
	LayerBullet
)

// Spawner creates fully-formed game entities
// Asset handles are resolved here, once, so simulation systems never touch the catalog
type Spawner struct {
	world   *engine.World
	catalog *asset.Catalog
}

// NewSpawner resolves the asset catalog from the world
// Panics when the catalog resource is missing (startup ordering)
func NewSpawner(world *engine.World) *Spawner {
	return &Spawner{
		world:   world,
		catalog: engine.MustGetResource[*engine.AssetResource](world.ResourceStore).Catalog,
	}
}

func (sp *Spawner) visual(e core.Entity, name string, layer int) {
	sp.world.Components.Visual.SetComponent(e, component.VisualComponent{
		Handle: sp.catalog.Resolve(name),
		Layer:  layer,
	})
}

// SpawnTarget places a path-walking target
func (sp *Spawner) SpawnTarget(pos vmath.Vec3F, speed float64, health int) core.Entity {
	e := sp.world.CreateEntity()
	sp.world.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	sp.world.Components.Target.SetComponent(e, component.TargetComponent{Speed: speed})
	sp.world.Components.Health.SetComponent(e, component.HealthComponent{Value: health})
	sp.visual(e, asset.NameTarget, LayerTarget)
	return e
}

// SpawnBuildSite places an unselected build-site marker
func (sp *Spawner) SpawnBuildSite(pos vmath.Vec3F) core.Entity {
	e := sp.world.CreateEntity()
	sp.world.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	sp.world.Components.BuildSite.SetComponent(e, component.BuildSiteComponent{})
	sp.world.Components.Selectable.SetComponent(e, component.SelectableComponent{})
	sp.visual(e, asset.NameBuildSite, LayerSite)
	return e
}

// SpawnTower places a tower of kind at a world position with stats from the kind table
func (sp *Spawner) SpawnTower(kind core.TowerKind, pos vmath.Vec3F) core.Entity {
	stats := parameter.TowerStatsFor(kind)

	e := sp.world.CreateEntity()
	sp.world.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	sp.world.Components.Tower.SetComponent(e, component.TowerComponent{
		Kind:         kind,
		Cadence:      core.NewTimer(stats.FireInterval, core.TimerRepeating),
		MuzzleOffset: stats.MuzzleOffset,
		Range:        stats.Range,
		BulletSpeed:  stats.BulletSpeed,
	})
	sp.visual(e, stats.TowerAsset, LayerTower)
	return e
}

// SpawnBullet creates a bullet as a transform child of tower at the muzzle
// direction is stored as given; motion normalizes it
func (sp *Spawner) SpawnBullet(tower core.Entity, tc component.TowerComponent, direction vmath.Vec3F) core.Entity {
	stats := parameter.TowerStatsFor(tc.Kind)

	e := sp.world.CreateEntity()
	sp.world.Scene.SpawnChild(e, tower, tc.MuzzleOffset)
	sp.world.Components.Bullet.SetComponent(e, component.BulletComponent{
		Direction: direction,
		Speed:     tc.BulletSpeed,
		Kind:      tc.Kind,
		Owner:     tower,
	})
	sp.world.Components.Lifetime.SetComponent(e, component.LifetimeComponent{
		Timer: core.NewTimer(parameter.BulletLifetime, core.TimerOnce),
	})
	sp.visual(e, stats.BulletAsset, LayerBullet)
	return e
}

// SpawnButton creates a tower purchase button in panel slot
func (sp *Spawner) SpawnButton(kind core.TowerKind, slot int) core.Entity {
	stats := parameter.TowerStatsFor(kind)

	e := sp.world.CreateEntity()
	sp.world.Components.Button.SetComponent(e, component.ButtonComponent{
		Kind: kind,
		Cost: stats.Cost,
		Slot: slot,
	})
	sp.visual(e, stats.ButtonAsset, 0)
	return e
}
