package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tower-defense/status"
)

// Scheduler drives one world tick: time update, systems in priority order, final dispatch, queue clear
// Not safe for concurrent Tick calls; the host owns a single tick goroutine
type Scheduler struct {
	world   *World
	router  *EventRouter
	ticks   *atomic.Int64
	dropped *atomic.Int64
	cost    *status.AtomicFloat // Wall-clock seconds spent in the last Tick
}

// NewScheduler creates a scheduler and installs its router as a system
func NewScheduler(world *World) *Scheduler {
	s := &Scheduler{
		world:   world,
		router:  NewEventRouter(world.Resources.Event.Queue),
		ticks:   world.Resources.Status.Ints.Get(status.EngineTicks),
		dropped: world.Resources.Status.Ints.Get(status.EventsDropped),
		cost:    world.Resources.Status.Floats.Get(status.TickSeconds),
	}
	world.AddSystem(s.router)
	return s
}

// Router returns the event router
func (s *Scheduler) Router() *EventRouter {
	return s.router
}

// AddSystem adds a system to the world and registers it with the router if it handles events
func (s *Scheduler) AddSystem(sys System) {
	s.world.AddSystem(sys)
	if h, ok := sys.(EventHandler); ok {
		s.router.Register(h)
	}
}

// Tick advances the simulation by dt
// Negative dt is treated as zero so elapsed time never decreases
func (s *Scheduler) Tick(dt time.Duration) {
	start := time.Now()
	if dt < 0 {
		dt = 0
	}

	tr := s.world.Resources.Time
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++

	for _, sys := range s.world.Systems() {
		sys.Update()
	}

	// Events pushed after the router slot are still delivered this tick
	s.router.DispatchAll()

	// Anything left exceeded the dispatch bound; no carry-over into the next tick
	if n := s.world.Resources.Event.Queue.Clear(); n > 0 {
		s.dropped.Add(int64(n))
	}
	s.ticks.Add(1)
	s.cost.Set(time.Since(start).Seconds())
}
