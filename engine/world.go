package engine

import (
	"sync"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
)

// World contains all entities and their components using typed stores
// Entity handles are generation-checked: a destroyed handle never aliases a later entity
type World struct {
	mu          sync.RWMutex
	generations []uint32 // Current generation per slot, index 0 reserved
	alive       []bool
	free        []uint32
	liveCount   int

	// Engine-owned resources, always present
	Resources *Resource

	// Host-provided singletons (Player, Path, Log, Assets, Audio)
	ResourceStore *ResourceStore

	Components ComponentStore
	stores     []AnyStore

	Scene *Scene

	systems []System
}

// NewWorld creates an empty world with engine resources attached
func NewWorld() *World {
	w := &World{
		generations:   make([]uint32, 1, parameter.EntityInitialCapacity),
		alive:         make([]bool, 1, parameter.EntityInitialCapacity),
		Resources:     newResource(),
		ResourceStore: NewResourceStore(),
		Components:    newComponentStore(),
	}
	w.stores = w.Components.all()
	w.Scene = &Scene{world: w}
	return w
}

// CreateEntity allocates a handle, reusing a freed slot under a bumped generation
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}
	w.alive[idx] = true
	w.liveCount++
	return core.NewEntity(idx, w.generations[idx])
}

// IsAlive reports whether e refers to a live entity of the current generation
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.isAliveLocked(e)
}

func (w *World) isAliveLocked(e core.Entity) bool {
	idx := e.Index()
	if idx == 0 || int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == e.Generation()
}

// DestroyEntity removes an entity and all its components
// Stale, zero and already-destroyed handles are a silent no-op; returns whether anything was destroyed
// Transform children are detached in place, keeping their world position
func (w *World) DestroyEntity(e core.Entity) bool {
	if !w.IsAlive(e) {
		return false
	}

	w.Scene.detachChildren(e)
	for _, s := range w.stores {
		s.RemoveComponent(e)
	}

	w.mu.Lock()
	idx := e.Index()
	w.alive[idx] = false
	w.generations[idx]++
	w.free = append(w.free, idx)
	w.liveCount--
	w.mu.Unlock()
	return true
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.liveCount
}

// Clear removes all entities and components, invalidating every outstanding handle
func (w *World) Clear() {
	for _, s := range w.stores {
		s.ClearAllComponents()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.free = w.free[:0]
	for idx := len(w.generations) - 1; idx >= 1; idx-- {
		if w.alive[idx] {
			w.alive[idx] = false
			w.generations[idx]++
		}
		w.free = append(w.free, uint32(idx))
	}
	w.liveCount = 0
}

// AddSystem adds a system to the world and sorts by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable insertion sort, small N
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// PushEvent appends an event stamped with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}
