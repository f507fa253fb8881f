package engine

import "github.com/lixenwraith/tower-defense/event"

// System is a per-tick update step
// Lower Priority runs first; systems read delta time from World.Resources.Time
type System interface {
	Name() string
	Priority() int
	Update()
}

// EventHandler processes specific event types
// Systems implementing it are registered with the router when added to the scheduler
type EventHandler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
