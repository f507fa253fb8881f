package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
)

type fakePlayer struct {
	played []core.SoundType
	muted  bool
}

func (f *fakePlayer) Play(s core.SoundType) bool {
	if f.muted {
		return false
	}
	f.played = append(f.played, s)
	return true
}

func (f *fakePlayer) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func (f *fakePlayer) IsMuted() bool { return f.muted }

func TestAudioSystem_MapsEvents(t *testing.T) {
	h := newHarness(nil, 0, 1)
	fake := &fakePlayer{}
	engine.AddResource(h.w.ResourceStore, &engine.AudioResource{Player: fake})
	h.sched.AddSystem(NewAudioSystem(h.w))

	h.w.PushEvent(event.EventTargetDeath, &event.TargetDeathPayload{})
	h.w.PushEvent(event.EventBulletFired, &event.BulletFiredPayload{})
	h.w.PushEvent(event.EventTowerPurchased, &event.TowerPurchasedPayload{})
	h.w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundDamage})
	h.w.PushEvent(event.EventGameOver, nil)
	h.w.PushEvent(event.EventTargetLeaked, &event.TargetLeakedPayload{})
	h.run(1)

	assert.Equal(t, []core.SoundType{
		core.SoundKill,
		core.SoundShot,
		core.SoundBuild,
		core.SoundDamage,
		core.SoundGameOver,
	}, fake.played, "leaks sound through their explicit request only")
}

func TestAudioSystem_WithoutPlayer(t *testing.T) {
	h := newHarness(nil, 0, 1)
	h.sched.AddSystem(NewAudioSystem(h.w))
	h.w.PushEvent(event.EventTargetDeath, &event.TargetDeathPayload{})
	assert.NotPanics(t, func() { h.run(1) })
}
