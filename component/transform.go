package component

import (
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/vmath"
)

// TransformComponent is the scene-graph node of an entity
// Position and Yaw are local to Parent; with no parent they are world-space
// Yaw is rotation about the vertical axis, 0 faces -Z
type TransformComponent struct {
	Position vmath.Vec3F
	Yaw      float64
	Parent   core.Entity // NoEntity for roots
}
