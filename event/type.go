package event

import "github.com/lixenwraith/tower-defense/core"

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never pushed
	EventNone EventType = iota

	// === Combat Event ===

	// EventTargetDeath signals a target destroyed by damage
	// Trigger: HealthSystem | Consumer: EconomyHandler, AudioHandler, StatsHandler
	// Payload: *TargetDeathPayload
	EventTargetDeath

	// EventTargetLeaked signals a target that walked off the path end
	// Trigger: LeakSystem | Consumer: StatsHandler | Payload: *TargetLeakedPayload
	EventTargetLeaked

	// EventBulletFired signals a bullet spawn
	// Trigger: TowerSystem | Consumer: AudioHandler, StatsHandler | Payload: *BulletFiredPayload
	EventBulletFired

	// === Economy Event ===

	// EventTowerPurchased signals a successful build on a marker
	// Trigger: PurchaseSystem | Consumer: AudioHandler, StatsHandler | Payload: *TowerPurchasedPayload
	EventTowerPurchased

	// EventGameOver signals player health reaching zero, pushed once per session
	// Trigger: LeakSystem | Consumer: GameStateHandler, AudioHandler | Payload: nil
	EventGameOver

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback | Consumer: AudioHandler
	// Payload: *SoundRequestPayload
	EventSoundRequest
)

var eventNames = map[EventType]string{
	EventNone:           "EventNone",
	EventTargetDeath:    "EventTargetDeath",
	EventTargetLeaked:   "EventTargetLeaked",
	EventBulletFired:    "EventBulletFired",
	EventTowerPurchased: "EventTowerPurchased",
	EventGameOver:       "EventGameOver",
	EventSoundRequest:   "EventSoundRequest",
}

// String returns the registry name of the event type
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "EventUnknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick number the event was pushed on
}

// SoundRequest builds an EventSoundRequest event
func SoundRequest(sound core.SoundType, frame int64) GameEvent {
	return GameEvent{
		Type:    EventSoundRequest,
		Payload: &SoundRequestPayload{SoundType: sound},
		Frame:   frame,
	}
}
