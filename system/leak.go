package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
)

// LeakSystem removes targets that walked off the path end and hurts the player
// A leak is not a kill: no death event, no reward
type LeakSystem struct {
	world  *engine.World
	path   *engine.PathResource
	player *engine.PlayerResource
	log    zerolog.Logger
}

func NewLeakSystem(world *engine.World) engine.System {
	return &LeakSystem{
		world:  world,
		path:   engine.MustGetResource[*engine.PathResource](world.ResourceStore),
		player: engine.MustGetResource[*engine.PlayerResource](world.ResourceStore),
		log:    engine.MustGetResource[*engine.LogResource](world.ResourceStore).Logger.With().Str("system", "leak").Logger(),
	}
}

func (s *LeakSystem) Name() string  { return "leak" }
func (s *LeakSystem) Priority() int { return parameter.PriorityLeak }

func (s *LeakSystem) Update() {
	targets := s.world.Components.Target
	end := s.path.Len()

	for _, e := range targets.GetAllEntities() {
		target, ok := targets.GetComponent(e)
		if !ok || target.PathIndex < end {
			continue
		}
		if !s.world.DestroyEntity(e) {
			continue
		}

		remaining, died := s.player.Hurt(parameter.LeakPenalty)
		s.log.Warn().
			Stringer("entity", e).
			Uint32("health", remaining).
			Int64("tick", s.world.Resources.Time.FrameNumber).
			Msg("target reached path end")

		s.world.PushEvent(event.EventTargetLeaked, &event.TargetLeakedPayload{
			Entity:       e,
			HealthRemain: remaining,
		})
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundDamage})

		if died && s.world.Resources.Game.MarkOver() {
			s.log.Info().Int64("tick", s.world.Resources.Time.FrameNumber).Msg("GAME OVER")
			s.world.PushEvent(event.EventGameOver, nil)
		}
	}
}
