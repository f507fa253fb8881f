package system

import (
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
)

// AudioSystem consumes sound requests and gameplay events and plays audio
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system
// Without an audio resource every event is dropped
func NewAudioSystem(world *engine.World) engine.System {
	var player engine.AudioPlayer
	if res, ok := engine.GetResource[*engine.AudioResource](world.ResourceStore); ok && res != nil {
		player = res.Player
	}
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Name() string  { return "audio" }
func (s *AudioSystem) Priority() int { return parameter.PriorityDispatch }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventTargetDeath,
		event.EventBulletFired,
		event.EventTowerPurchased,
		event.EventGameOver,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.player.Play(payload.SoundType)
		}
	case event.EventTargetDeath:
		s.player.Play(core.SoundKill)
	case event.EventBulletFired:
		s.player.Play(core.SoundShot)
	case event.EventTowerPurchased:
		s.player.Play(core.SoundBuild)
	case event.EventGameOver:
		s.player.Play(core.SoundGameOver)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
