package event

import (
	"sync"

	"github.com/lixenwraith/tower-defense/parameter"
)

// EventQueue is a same-tick FIFO of game events
// Push is safe for concurrent producers; Consume and Clear belong to the tick loop
// Unbounded: a dropped death event would lose a reward, so there is no overwrite on overflow
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
	pushed uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueInitialCapacity),
	}
}

// Push appends an event at the tail
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, ev)
	eq.pushed++
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
// Returns nil when nothing is pending
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	eq.events = make([]GameEvent, 0, max(cap(result), parameter.EventQueueInitialCapacity))
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Clear discards pending events and returns how many were dropped
func (eq *EventQueue) Clear() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	n := len(eq.events)
	eq.events = eq.events[:0]
	return n
}

// Pushed returns the lifetime push count
func (eq *EventQueue) Pushed() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.pushed
}
