package component

import (
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/vmath"
)

// TowerComponent holds a placed tower's firing state
// Stats are copied from the kind table at spawn
type TowerComponent struct {
	Kind         core.TowerKind
	Cadence      core.Timer // Repeating
	MuzzleOffset vmath.Vec3F
	Range        float64
	BulletSpeed  float64
}
