package event

import (
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/vmath"
)

// TargetDeathPayload carries the destroyed target and its last world position
type TargetDeathPayload struct {
	Entity   core.Entity
	Position vmath.Vec3F
}

// TargetLeakedPayload carries the leaked target and player health after the hit
type TargetLeakedPayload struct {
	Entity       core.Entity
	HealthRemain uint32
}

// BulletFiredPayload carries the firing tower, the spawned bullet and the aimed target
type BulletFiredPayload struct {
	Tower  core.Entity
	Bullet core.Entity
	Target core.Entity
	Kind   core.TowerKind
}

// TowerPurchasedPayload carries the new tower and the consumed build-site marker
type TowerPurchasedPayload struct {
	Tower    core.Entity
	Marker   core.Entity
	Kind     core.TowerKind
	Cost     uint32
	Position vmath.Vec3F
}

// SoundRequestPayload contains the sound to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}
