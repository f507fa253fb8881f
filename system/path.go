package system

import (
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/vmath"
)

// PathSystem walks targets along the shared waypoint path in the X/Z plane
// A step that would reach or pass the current waypoint advances PathIndex without moving;
// the leftover distance of that tick is dropped
type PathSystem struct {
	world *engine.World
	path  *engine.PathResource
}

func NewPathSystem(world *engine.World) engine.System {
	return &PathSystem{
		world: world,
		path:  engine.MustGetResource[*engine.PathResource](world.ResourceStore),
	}
}

func (s *PathSystem) Name() string  { return "path" }
func (s *PathSystem) Priority() int { return parameter.PriorityPath }

func (s *PathSystem) Update() {
	dt := s.world.Resources.Time.Delta()
	targets := s.world.Components.Target

	for _, e := range targets.GetAllEntities() {
		target, ok := targets.GetComponent(e)
		if !ok {
			continue
		}
		// Out-of-range index is arrival, handled by LeakSystem
		waypoint, ok := s.path.At(target.PathIndex)
		if !ok {
			continue
		}
		pos, ok := s.world.Scene.WorldPosition(e)
		if !ok {
			continue
		}

		delta := vmath.V2FSub(waypoint, pos.XZ())
		step := target.Speed * dt

		if vmath.V2FMag(delta) > step {
			move := vmath.V2FScale(vmath.V2FNormalize(delta), step)
			s.world.Scene.Translate(e, vmath.Vec3F{X: move.X, Z: move.Y})
			s.world.Scene.SetWorldYaw(e, vmath.YawTowards(delta))
			continue
		}

		target.PathIndex++
		targets.SetComponent(e, target)
	}
}
