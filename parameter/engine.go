package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the default simulation tick interval
	GameUpdateInterval = 50 * time.Millisecond

	// MaxTickDelta caps the delta fed to systems after a stall (suspend, debugger)
	MaxTickDelta = 250 * time.Millisecond

	// FrameUpdateInterval is the rendering frame interval (~30 FPS is plenty for a terminal)
	FrameUpdateInterval = 33 * time.Millisecond
)

// Event Queue
const (
	// EventQueueInitialCapacity is the preallocated queue size per tick
	EventQueueInitialCapacity = 64

	// EventDispatchIterations bounds handler-pushes-event cascades within one dispatch
	EventDispatchIterations = 16
)

// Entity Arena
const (
	// EntityInitialCapacity preallocates arena slots
	EntityInitialCapacity = 256
)
