package engine

import (
	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/vmath"
)

// maxSceneDepth bounds parent-chain walks; deeper chains are treated as cyclic and cut
const maxSceneDepth = 32

// Scene composes transforms through parent chains
// Simulation math always goes through world-space accessors here
type Scene struct {
	world *World
}

// WorldTransform returns the world-space position and yaw of e
// A parent without a transform ends the chain
func (sc *Scene) WorldTransform(e core.Entity) (vmath.Vec3F, float64, bool) {
	store := sc.world.Components.Transform
	t, ok := store.GetComponent(e)
	if !ok {
		return vmath.Vec3F{}, 0, false
	}

	pos, yaw := t.Position, t.Yaw
	parent := t.Parent
	for depth := 0; !parent.IsZero() && depth < maxSceneDepth; depth++ {
		pt, ok := store.GetComponent(parent)
		if !ok {
			break
		}
		pos = vmath.V3FAdd(pt.Position, vmath.RotateY(pos, pt.Yaw))
		yaw += pt.Yaw
		parent = pt.Parent
	}
	return pos, yaw, true
}

// WorldPosition returns the world-space position of e
func (sc *Scene) WorldPosition(e core.Entity) (vmath.Vec3F, bool) {
	pos, _, ok := sc.WorldTransform(e)
	return pos, ok
}

// parentFrame returns the world transform children of parent are expressed in
func (sc *Scene) parentFrame(parent core.Entity) (vmath.Vec3F, float64) {
	if parent.IsZero() {
		return vmath.Vec3F{}, 0
	}
	pos, yaw, ok := sc.WorldTransform(parent)
	if !ok {
		return vmath.Vec3F{}, 0
	}
	return pos, yaw
}

// SpawnChild attaches a transform to child, local to parent
func (sc *Scene) SpawnChild(child, parent core.Entity, local vmath.Vec3F) {
	sc.world.Components.Transform.SetComponent(child, component.TransformComponent{
		Position: local,
		Parent:   parent,
	})
}

// SetWorldPosition places e at pos in world space, converting into its parent's frame
func (sc *Scene) SetWorldPosition(e core.Entity, pos vmath.Vec3F) bool {
	store := sc.world.Components.Transform
	t, ok := store.GetComponent(e)
	if !ok {
		return false
	}
	origin, yaw := sc.parentFrame(t.Parent)
	t.Position = vmath.RotateY(vmath.V3FSub(pos, origin), -yaw)
	store.SetComponent(e, t)
	return true
}

// Translate moves e by a world-space delta
func (sc *Scene) Translate(e core.Entity, delta vmath.Vec3F) bool {
	store := sc.world.Components.Transform
	t, ok := store.GetComponent(e)
	if !ok {
		return false
	}
	_, yaw := sc.parentFrame(t.Parent)
	t.Position = vmath.V3FAdd(t.Position, vmath.RotateY(delta, -yaw))
	store.SetComponent(e, t)
	return true
}

// SetWorldYaw orients e to a world-space yaw
func (sc *Scene) SetWorldYaw(e core.Entity, yaw float64) bool {
	store := sc.world.Components.Transform
	t, ok := store.GetComponent(e)
	if !ok {
		return false
	}
	_, parentYaw := sc.parentFrame(t.Parent)
	t.Yaw = yaw - parentYaw
	store.SetComponent(e, t)
	return true
}

// Detach makes e a root, preserving its world transform
func (sc *Scene) Detach(e core.Entity) bool {
	pos, yaw, ok := sc.WorldTransform(e)
	if !ok {
		return false
	}
	sc.world.Components.Transform.SetComponent(e, component.TransformComponent{
		Position: pos,
		Yaw:      yaw,
	})
	return true
}

// Children returns the direct children of parent
func (sc *Scene) Children(parent core.Entity) []core.Entity {
	var out []core.Entity
	store := sc.world.Components.Transform
	for _, e := range store.GetAllEntities() {
		if t, ok := store.GetComponent(e); ok && t.Parent == parent {
			out = append(out, e)
		}
	}
	return out
}

func (sc *Scene) detachChildren(parent core.Entity) {
	for _, child := range sc.Children(parent) {
		sc.Detach(child)
	}
}
