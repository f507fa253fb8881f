package component

import (
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/vmath"
)

// BulletComponent marks a linear projectile
// Direction is stored as aimed (unnormalized), normalized on each motion step
type BulletComponent struct {
	Direction vmath.Vec3F
	Speed     float64
	Kind      core.TowerKind
	Owner     core.Entity // Firing tower (telemetry only)
}

// LifetimeComponent destroys its entity when Timer finishes
type LifetimeComponent struct {
	Timer core.Timer // Once
}
