package engine

import (
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
)

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the tick goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed by handlers are dispatched in the same call, bounded by EventDispatchIterations rounds
//
// The router is itself a System so dispatch has a fixed slot in the tick order
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
	priority int
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
		priority: parameter.PriorityDispatch,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes each to its handlers in FIFO order
// All handlers for an event are called before moving to the next event
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll() int {
	dispatched := 0
	for round := 0; round < parameter.EventDispatchIterations; round++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		dispatched += len(events)
	}
	return dispatched
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *EventRouter) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}

func (r *EventRouter) Name() string  { return "router" }
func (r *EventRouter) Priority() int { return r.priority }

// Update dispatches everything queued by the systems that ran before it
func (r *EventRouter) Update() {
	r.DispatchAll()
}
