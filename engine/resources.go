package engine

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-defense/asset"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/status"
	"github.com/lixenwraith/tower-defense/vmath"
)

// ResourceStore is a thread-safe container for host-provided singletons
// Systems resolve what they need once, in their constructor
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces the resource keyed by its static type T
// Pointer types are recommended so systems share one mutable instance
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Missing singletons are a startup-ordering bug, never a per-tick condition
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// Resource holds engine-owned resources, created with the world
type Resource struct {
	Time   *TimeResource
	Event  *EventQueueResource
	Game   *GameStateResource
	Status *status.Registry
}

func newResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Game:   &GameStateResource{},
		Status: status.NewRegistry(),
	}
}

// TimeResource wraps time data for systems
// Updated by the Scheduler at the start of each tick
type TimeResource struct {
	// DeltaTime is the simulated duration of the current tick
	DeltaTime time.Duration

	// Elapsed is total simulated time including the current tick
	Elapsed time.Duration

	// FrameNumber is the current tick count, starting at 1 on the first tick
	FrameNumber int64
}

// Delta returns DeltaTime in seconds, the unit of all gameplay speeds
func (tr *TimeResource) Delta() float64 {
	return tr.DeltaTime.Seconds()
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// GameStateResource holds session flags shared by systems and the host loop
type GameStateResource struct {
	over atomic.Bool
}

// MarkOver sets the game-over flag, returning true only on the first call
func (gs *GameStateResource) MarkOver() bool {
	return gs.over.CompareAndSwap(false, true)
}

// IsOver reports whether player health reached zero
func (gs *GameStateResource) IsOver() bool {
	return gs.over.Load()
}

// PathResource is the shared waypoint polyline in the X/Z plane
// Read-only after initialization
type PathResource struct {
	Waypoints []vmath.Vec2F
}

// Len returns the number of waypoints
func (p *PathResource) Len() int {
	return len(p.Waypoints)
}

// At returns waypoint i, or false for an out-of-range index
func (p *PathResource) At(i int) (vmath.Vec2F, bool) {
	if i < 0 || i >= len(p.Waypoints) {
		return vmath.Vec2F{}, false
	}
	return p.Waypoints[i], true
}

// LogResource carries the session logger
type LogResource struct {
	Logger zerolog.Logger
}

// AssetResource carries the asset catalog used at spawn time
type AssetResource struct {
	Catalog *asset.Catalog
}

// AudioPlayer is the sound sink consumed by the audio handler
type AudioPlayer interface {
	Play(sound core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
// Player is nil when audio is disabled
type AudioResource struct {
	Player AudioPlayer
}
