package status

import "sync/atomic"

// Counter keys written by the simulation systems
const (
	BulletFired   = "bullet.fired"
	BulletHit     = "bullet.hit"
	BulletExpired = "bullet.expired"
	TargetKilled  = "target.killed"
	TargetLeaked  = "target.leaked"
	TowerBuilt    = "tower.built"
	EngineTicks   = "engine.ticks"
	EventsDropped = "engine.events_dropped"
	GameOver      = "game.over"
	TickSeconds   = "engine.tick_seconds"
)

// Registry is the central metrics facade
// Systems cache pointers in their constructor; Update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// IntSnapshot copies every integer counter into a plain map
func (r *Registry) IntSnapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
