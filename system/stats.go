package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/status"
)

// StatsSystem mirrors gameplay events into telemetry counters and the debug log
type StatsSystem struct {
	log zerolog.Logger

	statFired  *atomic.Int64
	statKilled *atomic.Int64
	statLeaked *atomic.Int64
	statBuilt  *atomic.Int64
	statOver   *atomic.Bool
}

func NewStatsSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &StatsSystem{
		log:        engine.MustGetResource[*engine.LogResource](world.ResourceStore).Logger.With().Str("system", "stats").Logger(),
		statFired:  reg.Ints.Get(status.BulletFired),
		statKilled: reg.Ints.Get(status.TargetKilled),
		statLeaked: reg.Ints.Get(status.TargetLeaked),
		statBuilt:  reg.Ints.Get(status.TowerBuilt),
		statOver:   reg.Bools.Get(status.GameOver),
	}
}

func (s *StatsSystem) Name() string  { return "stats" }
func (s *StatsSystem) Priority() int { return parameter.PriorityDispatch }

func (s *StatsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTargetDeath,
		event.EventTargetLeaked,
		event.EventBulletFired,
		event.EventTowerPurchased,
		event.EventGameOver,
	}
}

func (s *StatsSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTargetDeath:
		s.statKilled.Add(1)
		if p, ok := ev.Payload.(*event.TargetDeathPayload); ok {
			s.log.Debug().Int64("tick", ev.Frame).Stringer("entity", p.Entity).Msg("target killed")
		}
	case event.EventTargetLeaked:
		s.statLeaked.Add(1)
	case event.EventBulletFired:
		s.statFired.Add(1)
	case event.EventTowerPurchased:
		s.statBuilt.Add(1)
	case event.EventGameOver:
		s.statOver.Store(true)
	}
}

// Update implements System interface (event-driven only)
func (s *StatsSystem) Update() {}
